package web

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/darabcement/portal/internal/content"
)

// home page rail sizes, one per section
const (
	homeNewsCount          = 4
	homeAnnouncementsCount = 7
	homeAchievementsCount  = 5
	homeOccasionsCount     = 5
)

// SiteHandler renders the public pages. Every page is one request-scoped
// resolve against the content API; upstream failures surface as empty
// sections, never as a broken page.
type SiteHandler struct {
	resolver *content.Resolver
	log      *slog.Logger
}

func NewSiteHandler(resolver *content.Resolver, log *slog.Logger) *SiteHandler {
	return &SiteHandler{
		resolver: resolver,
		log:      log,
	}
}

func (h *SiteHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/blog", h.BlogList)
	e.GET("/blog/:id", h.BlogPost)
	e.POST("/blog/:id/comments", h.SubmitComment)
	e.GET("/product", h.ProductList)
	e.GET("/product/:id", h.ProductDetail)
	e.GET("/about-us", h.About)
	e.GET("/contact-us", h.Contact)
	e.GET("/health", h.Health)
	e.RouteNotFound("/*", h.NotFound)
}

type homePage struct {
	Title         string
	News          []content.Post
	Announcements []content.Post
	Achievements  []content.Post
	Occasions     []content.Post
}

func (h *SiteHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	page := homePage{
		Title:         "سیمان داراب",
		News:          h.resolver.Section(ctx, content.SectionNews, homeNewsCount),
		Announcements: h.resolver.Section(ctx, content.SectionAnnouncements, homeAnnouncementsCount),
		Achievements:  h.resolver.Section(ctx, content.SectionAchievements, homeAchievementsCount),
		Occasions:     h.resolver.Section(ctx, content.SectionOccasions, homeOccasionsCount),
	}

	return c.Render(http.StatusOK, "home.html", page)
}

type blogListPage struct {
	Title   string
	Listing content.Listing
}

func (h *SiteHandler) BlogList(c echo.Context) error {
	listing := h.resolver.Listing(c.Request().Context(), c.QueryParams())

	return c.Render(http.StatusOK, "blog.html", blogListPage{
		Title:   "بلاگ سیمان داراب",
		Listing: listing,
	})
}

type blogPostPage struct {
	Title          string
	Post           *content.Post
	Related        []content.Post
	CommentForm    CommentForm
	CommentError   string
	CommentSuccess string
}

func (h *SiteHandler) BlogPost(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	post, err := h.resolver.Post(ctx, id)
	if err != nil {
		h.log.Error("fetch blog post", "id", id, "error", err)
	}
	if post == nil {
		return h.NotFound(c)
	}

	page := blogPostPage{
		Title:   post.Title,
		Post:    post,
		Related: h.resolver.Related(ctx, post),
	}
	if c.QueryParam("comment") == "sent" {
		page.CommentSuccess = msgCommentSubmitted
	}

	return c.Render(http.StatusOK, "blog_post.html", page)
}

type productListPage struct {
	Title      string
	Products   []content.Product
	Filter     content.Filter
	Pagination content.Pagination
}

func (h *SiteHandler) ProductList(c echo.Context) error {
	products, filter, pagination := h.resolver.Products(c.Request().Context(), c.QueryParams())

	return c.Render(http.StatusOK, "products.html", productListPage{
		Title:      "محصولات",
		Products:   products,
		Filter:     filter,
		Pagination: pagination,
	})
}

type productPage struct {
	Title   string
	Product *content.Product
}

func (h *SiteHandler) ProductDetail(c echo.Context) error {
	id := c.Param("id")

	product, err := h.resolver.Product(c.Request().Context(), id)
	if err != nil {
		h.log.Error("fetch product", "id", id, "error", err)
	}
	if product == nil {
		return h.NotFound(c)
	}

	return c.Render(http.StatusOK, "product.html", productPage{
		Title:   product.Name,
		Product: product,
	})
}

type staticPage struct {
	Title string
}

func (h *SiteHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", staticPage{Title: "درباره ما"})
}

func (h *SiteHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", staticPage{Title: "تماس با ما"})
}

func (h *SiteHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "not_found.html", staticPage{Title: "صفحه پیدا نشد"})
}

func (h *SiteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
