package service

import (
	"context"
	"testing"

	"scribe/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, string) (*models.Post, error)
	findByTitleFn   func(context.Context, string) (*models.Post, error)
	listFn          func(context.Context, models.PostStatus, int, int) ([]*models.Post, error)
	countByStatusFn func(context.Context, models.PostStatus) (int64, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) FindByTitle(ctx context.Context, title string) (*models.Post, error) {
	return s.findByTitleFn(ctx, title)
}
func (s *postRepoStub) List(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, status, limit, offset)
}
func (s *postRepoStub) CountByStatus(ctx context.Context, status models.PostStatus) (int64, error) {
	return s.countByStatusFn(ctx, status)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		findByTitleFn: func(_ context.Context, _ string) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listFn: func(_ context.Context, _ models.PostStatus, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		countByStatusFn: func(_ context.Context, _ models.PostStatus) (int64, error) { return 0, nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:        func(_ context.Context, _ string) error { return nil },
	}
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T: %v", err, err)
	return appErr.Code
}

func TestCreatePost_TrimsAndDefaults(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) error {
		created = p
		return nil
	}

	svc := NewPostService(repo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title:   "  My First Post ",
		Content: " hello ",
		Author:  "  jo ",
		Tags:    []string{" go ", "", "web"},
	})
	require.NoError(t, err)
	require.Same(t, created, post)

	assert.Equal(t, "My First Post", post.Title)
	assert.Equal(t, "hello", post.Content)
	assert.Equal(t, "jo", post.Author)
	assert.Equal(t, models.TagList{"go", "web"}, post.Tags)
	assert.Equal(t, models.PostStatusPublished, post.Status)
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	tests := []struct {
		name string
		in   CreatePostInput
	}{
		{"empty title", CreatePostInput{Content: "c", Author: "a"}},
		{"whitespace title", CreatePostInput{Title: "   ", Content: "c", Author: "a"}},
		{"empty content", CreatePostInput{Title: "t", Author: "a"}},
		{"empty author", CreatePostInput{Title: "t", Content: "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tt.in)
			assert.Equal(t, models.CodeMissingField, appErrCode(t, err))
		})
	}
}

func TestCreatePost_DuplicateTitlePreCheck(t *testing.T) {
	repo := noopPostRepo()
	repo.findByTitleFn = func(_ context.Context, title string) (*models.Post, error) {
		assert.Equal(t, "A", title)
		return &models.Post{Title: "a"}, nil
	}

	svc := NewPostService(repo)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "A", Content: "c", Author: "x"})
	assert.Equal(t, models.CodeDuplicatePost, appErrCode(t, err))
}

func TestCreatePost_DuplicateRaceBackstop(t *testing.T) {
	// The pre-check passes but the store's unique index rejects the insert,
	// as happens when two creates with the same title race.
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, _ *models.Post) error {
		return gorm.ErrDuplicatedKey
	}

	svc := NewPostService(repo)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "A", Content: "c", Author: "x"})
	assert.Equal(t, models.CodeDuplicatePost, appErrCode(t, err))
}

func TestGetPost_InvalidID(t *testing.T) {
	svc := NewPostService(noopPostRepo())
	_, err := svc.GetPost(context.Background(), "not-a-valid-id")
	assert.Equal(t, models.CodeInvalidID, appErrCode(t, err))
}

func TestGetPost_NotFound(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewPostService(repo)
	_, err := svc.GetPost(context.Background(), uuid.NewString())
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}

func TestListPosts_Envelope(t *testing.T) {
	repo := noopPostRepo()
	repo.listFn = func(_ context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
		assert.Equal(t, models.PostStatusPublished, status)
		assert.Equal(t, 1, limit)
		assert.Equal(t, 1, offset)
		return []*models.Post{{Title: "second"}}, nil
	}
	repo.countByStatusFn = func(_ context.Context, _ models.PostStatus) (int64, error) { return 3, nil }

	svc := NewPostService(repo)
	result, err := svc.ListPosts(context.Background(), ListPostsInput{
		Page: 2, Limit: 1, Status: models.PostStatusPublished,
	})
	require.NoError(t, err)
	assert.Len(t, result.Posts, 1)
	assert.Equal(t, int64(3), result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, int64(3), result.Total)
}

func TestListPosts_EmptyIsNotAnError(t *testing.T) {
	svc := NewPostService(noopPostRepo())
	result, err := svc.ListPosts(context.Background(), ListPostsInput{
		Page: 1, Limit: 60, Status: models.PostStatusDraft,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
	assert.Equal(t, int64(0), result.TotalPages)
	assert.Equal(t, int64(0), result.Total)
}

func TestListPosts_RejectsBadInput(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	_, err := svc.ListPosts(context.Background(), ListPostsInput{Page: 0, Limit: 10, Status: models.PostStatusPublished})
	assert.Equal(t, models.CodeValidationError, appErrCode(t, err))

	_, err = svc.ListPosts(context.Background(), ListPostsInput{Page: 1, Limit: 10, Status: "archived"})
	assert.Equal(t, models.CodeValidationError, appErrCode(t, err))
}

func TestUpdatePost_PartialFields(t *testing.T) {
	existing := &models.Post{
		ID:      uuid.NewString(),
		Title:   "Original",
		Content: "body",
		Author:  "jo",
		Tags:    models.TagList{"go"},
		Status:  models.PostStatusPublished,
	}
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) { return existing, nil }

	svc := NewPostService(repo)
	draft := string(models.PostStatusDraft)
	post, err := svc.UpdatePost(context.Background(), existing.ID, UpdatePostInput{Status: &draft})
	require.NoError(t, err)

	// Only status changes; everything else is untouched.
	assert.Equal(t, "Original", post.Title)
	assert.Equal(t, "body", post.Content)
	assert.Equal(t, "jo", post.Author)
	assert.Equal(t, models.TagList{"go"}, post.Tags)
	assert.Equal(t, models.PostStatusDraft, post.Status)
}

func TestUpdatePost_BlankFieldIsValidationError(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return &models.Post{ID: uuid.NewString()}, nil
	}

	svc := NewPostService(repo)
	blank := "   "
	_, err := svc.UpdatePost(context.Background(), uuid.NewString(), UpdatePostInput{Title: &blank})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidationError, appErr.Code)
	assert.Contains(t, appErr.Fields, "Title must not be empty")
}

func TestUpdatePost_UnknownStatus(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return &models.Post{ID: uuid.NewString()}, nil
	}

	svc := NewPostService(repo)
	status := "archived"
	_, err := svc.UpdatePost(context.Background(), uuid.NewString(), UpdatePostInput{Status: &status})
	assert.Equal(t, models.CodeValidationError, appErrCode(t, err))
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewPostService(repo)
	title := "new"
	_, err := svc.UpdatePost(context.Background(), uuid.NewString(), UpdatePostInput{Title: &title})
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}

func TestUpdatePost_DuplicateTitle(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return &models.Post{ID: uuid.NewString(), Title: "mine"}, nil
	}
	repo.updateFn = func(_ context.Context, _ *models.Post) error {
		return gorm.ErrDuplicatedKey
	}

	svc := NewPostService(repo)
	title := "Taken"
	_, err := svc.UpdatePost(context.Background(), uuid.NewString(), UpdatePostInput{Title: &title})
	assert.Equal(t, models.CodeDuplicatePost, appErrCode(t, err))
}

func TestDeletePost_NotFound(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewPostService(repo)
	err := svc.DeletePost(context.Background(), uuid.NewString())
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}

func TestDeletePost_InvalidID(t *testing.T) {
	svc := NewPostService(noopPostRepo())
	err := svc.DeletePost(context.Background(), "123-not-a-uuid")
	assert.Equal(t, models.CodeInvalidID, appErrCode(t, err))
}
