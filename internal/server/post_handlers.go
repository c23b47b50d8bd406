package server

import (
	"scribe/internal/models"
	"scribe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
//
//	@Summary		List blog posts
//	@Description	Returns one page of posts filtered by status, newest first
//	@Tags			posts
//	@Produce		json
//	@Param			page	query		int		false	"Page number"				default(1)
//	@Param			limit	query		int		false	"Number of posts per page"	default(60)
//	@Param			status	query		string	false	"Filter by status (published, draft)"
//	@Success		200		{object}	service.ListPostsResult
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, err := parsePositiveInt(c, "page", defaultPage)
	if err != nil {
		return nil
	}
	limit, err := parsePositiveInt(c, "limit", defaultLimit)
	if err != nil {
		return nil
	}
	status := c.Query("status", string(models.PostStatusPublished))

	result, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Page:   page,
		Limit:  limit,
		Status: models.PostStatus(status),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(result)
}

// GetPost handles GET /api/posts/:id
//
//	@Summary		Get a blog post by ID
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	models.Post
//	@Failure		400	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
//
//	@Summary		Create a new blog post
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object{title=string,content=string,author=string,tags=[]string}	true	"Post payload"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Author  string   `json:"author"`
		Tags    []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Tags:    req.Tags,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// UpdatePost handles PUT /api/posts/:id
//
//	@Summary		Update a blog post by ID
//	@Description	Partial update: only fields present in the body change
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string															true	"Post ID"
//	@Param			request	body		object{title=string,content=string,author=string,tags=[]string,status=string}	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	// Pointer fields distinguish "absent" from "present but blank".
	var req struct {
		Title   *string   `json:"title"`
		Content *string   `json:"content"`
		Author  *string   `json:"author"`
		Tags    *[]string `json:"tags"`
		Status  *string   `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), c.Params("id"), service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Tags:    req.Tags,
		Status:  req.Status,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/posts/:id
//
//	@Summary		Delete a blog post by ID
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.Context(), c.Params("id")); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
