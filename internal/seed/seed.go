// Package seed populates the database with generated posts for development.
package seed

import (
	"fmt"
	"log/slog"
	"strings"

	"scribe/internal/middleware"
	"scribe/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder generates fake posts.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder over the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes every post.
func (s *Seeder) ClearAll() error {
	return s.db.Exec("DELETE FROM posts").Error
}

// SeedPosts inserts n generated posts. Titles are made unique with a
// numeric suffix so the title-key index never rejects a batch; roughly one
// post in five is left as a draft.
func (s *Seeder) SeedPosts(n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		status := models.PostStatusPublished
		if gofakeit.Number(1, 5) == 1 {
			status = models.PostStatusDraft
		}

		tags := make(models.TagList, 0, 3)
		for j := 0; j < gofakeit.Number(0, 3); j++ {
			tags = append(tags, strings.ToLower(gofakeit.BuzzWord()))
		}

		post := &models.Post{
			Title:   fmt.Sprintf("%s #%d", gofakeit.Sentence(4), i+1),
			Content: gofakeit.Paragraph(2, 4, 12, "\n\n"),
			Author:  gofakeit.Name(),
			Tags:    tags,
			Status:  status,
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("failed to seed post %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}

	middleware.Logger.Info("Seeded posts", slog.Int("count", len(posts)))
	return posts, nil
}
