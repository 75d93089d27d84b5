package handler

import (
	"rackline/internal/usecase"
	"rackline/pkg/response"

	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{blogUseCase: blogUseCase}
}

type blogPostRequest struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Body      string   `json:"body"`
	Image     string   `json:"image"`
	Author    string   `json:"author"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

func (r *blogPostRequest) toInput() usecase.CreateBlogPostInput {
	return usecase.CreateBlogPostInput{
		Title:     r.Title,
		Slug:      r.Slug,
		Excerpt:   r.Excerpt,
		Body:      r.Body,
		Image:     r.Image,
		Author:    r.Author,
		Published: r.Published,
		Tags:      r.Tags,
	}
}

func (h *BlogHandler) ListPosts(c echo.Context) error {
	return response.Success(c, h.blogUseCase.List())
}

func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.blogUseCase.Get(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, post)
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	if err := h.blogUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Blog post deleted successfully",
	})
}
