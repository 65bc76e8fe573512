package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/darabcement/portal/internal/db"
	"github.com/darabcement/portal/internal/rest"
)

// AdminHandler renders the admin console pages. The pages submit plain HTML
// forms; the rich-text editor talks to the /api/blog JSON routes instead.
type AdminHandler struct {
	store     rest.BlogStore
	sanitizer *bluemonday.Policy
	log       *slog.Logger
}

func NewAdminHandler(store rest.BlogStore, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:     store,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log,
	}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Dashboard)
	g.GET("/blog", h.BlogList)
	g.GET("/blog/create", h.CreateForm)
	g.POST("/blog/create", h.Create)
	g.GET("/blog/edit/:id", h.EditForm)
	g.POST("/blog/edit/:id", h.Edit)
	g.POST("/blog/delete/:id", h.Delete)
}

type adminDashboardPage struct {
	Title string
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_dashboard.html", adminDashboardPage{Title: "پیشخوان مدیریت"})
}

type adminBlogPage struct {
	Title  string
	Posts  []db.BlogPost
	Search string
}

func (h *AdminHandler) BlogList(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := db.ParseBlogFilter(ctx, c.QueryParams())
	if err != nil {
		filter = db.BlogFilter{Page: 1, Limit: 50}
	}

	posts, err := h.store.BlogPosts(ctx, filter)
	if err != nil {
		h.log.Error("list admin blog posts", "error", err)
	}

	return c.Render(http.StatusOK, "admin_blog.html", adminBlogPage{
		Title:  "مدیریت بلاگ",
		Posts:  posts,
		Search: filter.Search,
	})
}

type adminBlogFormPage struct {
	Title string
	Post  db.BlogPost
	Edit  bool
	Error string
}

func (h *AdminHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_blog_form.html", adminBlogFormPage{Title: "نوشته جدید"})
}

func (h *AdminHandler) Create(c echo.Context) error {
	post := h.postFromForm(c)
	if post.Title == "" {
		return c.Render(http.StatusOK, "admin_blog_form.html", adminBlogFormPage{
			Title: "نوشته جدید",
			Post:  *post,
			Error: "عنوان نوشته الزامی است.",
		})
	}

	if err := h.store.CreateBlogPost(c.Request().Context(), post); err != nil {
		h.log.Error("create blog post", "error", err)
		return c.Render(http.StatusOK, "admin_blog_form.html", adminBlogFormPage{
			Title: "نوشته جدید",
			Post:  *post,
			Error: "خطا در ذخیره نوشته. لطفا دوباره تلاش کنید.",
		})
	}

	return c.Redirect(http.StatusSeeOther, "/admin/blog")
}

func (h *AdminHandler) EditForm(c echo.Context) error {
	post, err := h.store.BlogPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.log.Error("fetch blog post for edit", "error", err)
	}
	if post == nil {
		return c.Render(http.StatusNotFound, "not_found.html", staticPage{Title: "صفحه پیدا نشد"})
	}

	return c.Render(http.StatusOK, "admin_blog_form.html", adminBlogFormPage{
		Title: "ویرایش نوشته",
		Post:  *post,
		Edit:  true,
	})
}

func (h *AdminHandler) Edit(c echo.Context) error {
	post := h.postFromForm(c)
	post.ID = c.Param("id")

	err := h.store.UpdateBlogPost(c.Request().Context(), post)
	if errors.Is(err, db.ErrBlogPostNotFound) {
		return c.Render(http.StatusNotFound, "not_found.html", staticPage{Title: "صفحه پیدا نشد"})
	} else if err != nil {
		h.log.Error("update blog post", "error", err)
		return c.Render(http.StatusOK, "admin_blog_form.html", adminBlogFormPage{
			Title: "ویرایش نوشته",
			Post:  *post,
			Edit:  true,
			Error: "خطا در ذخیره نوشته. لطفا دوباره تلاش کنید.",
		})
	}

	return c.Redirect(http.StatusSeeOther, "/admin/blog")
}

func (h *AdminHandler) Delete(c echo.Context) error {
	err := h.store.DeleteBlogPost(c.Request().Context(), c.Param("id"))
	if err != nil && !errors.Is(err, db.ErrBlogPostNotFound) {
		h.log.Error("delete blog post", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, "/admin/blog")
}

func (h *AdminHandler) postFromForm(c echo.Context) *db.BlogPost {
	return &db.BlogPost{
		Title:            c.FormValue("title"),
		ShortDescription: c.FormValue("shortDescription"),
		Content:          h.sanitizer.Sanitize(c.FormValue("content")),
		Tags:             c.FormValue("tags"),
		ImageURL:         c.FormValue("imageUrl"),
	}
}
