// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	FindByTitle(ctx context.Context, title string) (*models.Post, error)
	List(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error)
	CountByStatus(ctx context.Context, status models.PostStatus) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartRepositorySpan(ctx, "Create")
	defer span.End()
	defer observability.TrackQuery("create")()

	err := r.db.WithContext(ctx).Create(post).Error
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	observability.PostWrites.WithLabelValues("create").Inc()
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByID")
	defer span.End()
	defer observability.TrackQuery("get_by_id")()

	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByTitle looks up a post by its case-insensitive title key.
func (r *postRepository) FindByTitle(ctx context.Context, title string) (*models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "FindByTitle")
	defer span.End()
	defer observability.TrackQuery("find_by_title")()

	var post models.Post
	err := r.db.WithContext(ctx).
		Where("title_key = ?", models.TitleKey(title)).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "List")
	defer span.End()
	defer observability.TrackQuery("list")()

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountByStatus(ctx context.Context, status models.PostStatus) (int64, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "CountByStatus")
	defer span.End()
	defer observability.TrackQuery("count_by_status")()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartRepositorySpan(ctx, "Update")
	defer span.End()
	defer observability.TrackQuery("update")()

	err := r.db.WithContext(ctx).Save(post).Error
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	observability.PostWrites.WithLabelValues("update").Inc()
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	ctx, span := observability.StartRepositorySpan(ctx, "Delete")
	defer span.End()
	defer observability.TrackQuery("delete")()

	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{}).Error
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	observability.PostWrites.WithLabelValues("delete").Inc()
	return nil
}
