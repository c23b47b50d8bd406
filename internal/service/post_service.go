// Package service implements the post operations: validation, duplicate
// handling, partial updates, and list envelope computation.
package service

import (
	"context"
	"errors"
	"strings"

	"scribe/internal/models"
	"scribe/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService coordinates validation and persistence for posts.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a PostService over the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput carries the create request payload.
type CreatePostInput struct {
	Title   string
	Content string
	Author  string
	Tags    []string
}

// UpdatePostInput carries the update request payload. Nil pointers mean the
// field was absent from the request; a present-but-blank value is a
// validation error rather than a no-op.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Author  *string
	Tags    *[]string
	Status  *string
}

// ListPostsInput carries validated pagination and filter parameters.
type ListPostsInput struct {
	Page   int
	Limit  int
	Status models.PostStatus
}

// ListPostsResult is the pagination envelope for post listings.
type ListPostsResult struct {
	Posts       []*models.Post `json:"posts"`
	TotalPages  int64          `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

// ListPosts returns one page of posts filtered by status, newest first,
// together with the total count for that status.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*ListPostsResult, error) {
	if in.Page < 1 || in.Limit < 1 {
		return nil, models.NewValidationError("page and limit must be positive integers")
	}
	if !models.ValidPostStatus(in.Status) {
		return nil, models.NewValidationError("status must be one of: published, draft")
	}

	offset := (in.Page - 1) * in.Limit
	posts, err := s.postRepo.List(ctx, in.Status, in.Limit, offset)
	if err != nil {
		return nil, models.NewInternalError("Error fetching posts", err)
	}

	total, err := s.postRepo.CountByStatus(ctx, in.Status)
	if err != nil {
		return nil, models.NewInternalError("Error fetching posts", err)
	}

	if posts == nil {
		posts = []*models.Post{}
	}

	return &ListPostsResult{
		Posts:       posts,
		TotalPages:  (total + int64(in.Limit) - 1) / int64(in.Limit),
		CurrentPage: in.Page,
		Total:       total,
	}, nil
}

// GetPost fetches a single post by its identifier.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError()
		}
		return nil, models.NewInternalError("Error fetching post", err)
	}
	return post, nil
}

// CreatePost validates, trims, and persists a new post with default
// published status. Duplicate titles are rejected case-insensitively: a
// pre-check gives the friendly early failure, and the store's unique index
// on the title key is the authoritative guard under concurrent creates.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	author := strings.TrimSpace(in.Author)

	if title == "" || content == "" || author == "" {
		return nil, models.NewMissingFieldError("Title, content, and author are required")
	}

	if _, err := s.postRepo.FindByTitle(ctx, title); err == nil {
		return nil, models.NewDuplicatePostError()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError("Error creating post", err)
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		Author:  author,
		Tags:    models.TagList(in.Tags).Clean(),
		Status:  models.PostStatusPublished,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the check-then-act race; the index is the backstop.
			return nil, models.NewDuplicatePostError()
		}
		return nil, models.NewInternalError("Error creating post", err)
	}

	return post, nil
}

// UpdatePost applies the supplied fields to an existing post. Absent fields
// are left untouched.
func (s *PostService) UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError()
		}
		return nil, models.NewInternalError("Error updating post", err)
	}

	var fieldErrors []string
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			fieldErrors = append(fieldErrors, "Title must not be empty")
		} else {
			post.Title = title
		}
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			fieldErrors = append(fieldErrors, "Content must not be empty")
		} else {
			post.Content = content
		}
	}
	if in.Author != nil {
		author := strings.TrimSpace(*in.Author)
		if author == "" {
			fieldErrors = append(fieldErrors, "Author must not be empty")
		} else {
			post.Author = author
		}
	}
	if in.Status != nil {
		status := models.PostStatus(strings.TrimSpace(*in.Status))
		if !models.ValidPostStatus(status) {
			fieldErrors = append(fieldErrors, "Status must be one of: published, draft")
		} else {
			post.Status = status
		}
	}
	if len(fieldErrors) > 0 {
		return nil, models.NewValidationError(fieldErrors...)
	}

	if in.Tags != nil {
		post.Tags = models.TagList(*in.Tags).Clean()
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicatePostError()
		}
		return nil, models.NewInternalError("Error updating post", err)
	}

	return post, nil
}

// DeletePost verifies existence and removes the post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError()
		}
		return models.NewInternalError("Error deleting post", err)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError("Error deleting post", err)
	}
	return nil
}

// validateID rejects identifiers the store could never have issued.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.NewInvalidIDError()
	}
	return nil
}
