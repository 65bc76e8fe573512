package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/darabcement/portal/internal/db"
)

// BlogStore is the persistence surface of the admin blog editor.
type BlogStore interface {
	BlogPosts(ctx context.Context, filter db.BlogFilter) ([]db.BlogPost, error)
	BlogPostByID(ctx context.Context, id string) (*db.BlogPost, error)
	CreateBlogPost(ctx context.Context, post *db.BlogPost) error
	UpdateBlogPost(ctx context.Context, post *db.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) error
}

// BlogHandler serves the /api/blog CRUD consumed by the admin console.
// Rich-text content is sanitized on every write, never trusted from the
// editor as-is.
type BlogHandler struct {
	store     BlogStore
	sanitizer *bluemonday.Policy
	log       *slog.Logger
}

func NewBlogHandler(store BlogStore, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		store:     store,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log,
	}
}

// RegisterRoutes mounts the blog API on the given group. The original admin
// routes multiplex single-resource operations through an ?id= parameter
// rather than a path segment; that shape is kept.
func (h *BlogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/blog", h.Blog)
	g.POST("/blog", h.CreateBlog)
	g.PUT("/blog", h.UpdateBlog)
	g.DELETE("/blog", h.DeleteBlog)
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Blog handles GET /api/blog. With ?id= it returns a single post,
// otherwise the filtered listing.
func (h *BlogHandler) Blog(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("id"); id != "" {
		post, err := h.store.BlogPostByID(ctx, id)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		if post == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "blog post not found"})
		}
		return c.JSON(http.StatusOK, NewBlogPost(*post))
	}

	filter, err := db.ParseBlogFilter(ctx, c.QueryParams())
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.store.BlogPosts(ctx, filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewBlogPosts(posts))
}

// CreateBlog handles POST /api/blog.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}

	post := h.toBlogPost(req)
	if err := h.store.CreateBlogPost(c.Request().Context(), post); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, NewBlogPost(*post))
}

// UpdateBlog handles PUT /api/blog; last write wins.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}

	post := h.toBlogPost(req)
	err := h.store.UpdateBlogPost(c.Request().Context(), post)
	if errors.Is(err, db.ErrBlogPostNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "blog post not found"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewBlogPost(*post))
}

// DeleteBlog handles DELETE /api/blog?id=.
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	err := h.store.DeleteBlogPost(c.Request().Context(), id)
	if errors.Is(err, db.ErrBlogPostNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "blog post not found"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BlogHandler) toBlogPost(req BlogPostRequest) *db.BlogPost {
	return &db.BlogPost{
		ID:               req.ID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          h.sanitizer.Sanitize(req.Content),
		Tags:             req.Tags,
		ImageURL:         req.ImageURL,
	}
}
