package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scribe/internal/models"
	"scribe/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) FindByTitle(ctx context.Context, title string) (*models.Post, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) CountByStatus(ctx context.Context, status models.PostStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMockServer(repo *MockPostRepository) (*fiber.App, *Server) {
	s := &Server{
		postRepo:    repo,
		postService: service.NewPostService(repo),
	}
	app := fiber.New()
	return app, s
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(*MockPostRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{
				"title":   "New Post",
				"content": "Hello world",
				"author":  "jo",
			},
			mockSetup: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "New Post").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Fields",
			body: map[string]interface{}{
				"title": "",
			},
			mockSetup:      func(m *MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate Title",
			body: map[string]interface{}{
				"title":   "Taken",
				"content": "Hello world",
				"author":  "jo",
			},
			mockSetup: func(m *MockPostRepository) {
				m.On("FindByTitle", mock.Anything, "Taken").Return(&models.Post{Title: "taken"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.mockSetup(mockRepo)
			app, s := newMockServer(mockRepo)
			app.Post("/posts", s.CreatePost)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetPost_MalformedID(t *testing.T) {
	mockRepo := new(MockPostRepository)
	app, s := newMockServer(mockRepo)
	app.Get("/posts/:id", s.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-valid-id", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	// The repository is never consulted for a malformed identifier.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetPosts_StoreFailure(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("List", mock.Anything, models.PostStatusPublished, 60, 0).
		Return(nil, assert.AnError)

	app, s := newMockServer(mockRepo)
	app.Get("/posts", s.GetPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Error fetching posts", body.Message)
	assert.NotEmpty(t, body.Error)
}
