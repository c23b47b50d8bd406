// Package models contains data structures for the application's domain models.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// PostStatusPublished marks a post as publicly visible.
	PostStatusPublished PostStatus = "published"
	// PostStatusDraft marks a post as not yet published.
	PostStatusDraft PostStatus = "draft"
)

// ValidPostStatus reports whether s is a recognized publication state.
func ValidPostStatus(s PostStatus) bool {
	return s == PostStatusPublished || s == PostStatusDraft
}

// TagList is an ordered list of tags stored as a JSON-encoded text column so
// the same model works against PostgreSQL and SQLite.
type TagList []string

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tag list column type %T", value)
	}
}

// Clean trims every tag and drops empty entries, preserving order.
func (t TagList) Clean() TagList {
	cleaned := make(TagList, 0, len(t))
	for _, tag := range t {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

// Post represents a blog post. TitleKey is the lowercased title backing the
// case-insensitive uniqueness constraint; it is internal bookkeeping and is
// never serialized into responses.
type Post struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	TitleKey  string     `gorm:"uniqueIndex;not null" json:"-"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Author    string     `gorm:"not null" json:"author"`
	Tags      TagList    `gorm:"type:text" json:"tags"`
	Status    PostStatus `gorm:"not null;default:published;index" json:"status"`
	CreatedAt time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the post identifier and defaults.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PostStatusPublished
	}
	return nil
}

// BeforeSave keeps the uniqueness key in sync with the title on every write.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	p.TitleKey = TitleKey(p.Title)
	return nil
}

// TitleKey returns the canonical form of a title used for case-insensitive
// uniqueness comparisons.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
