package web

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/darabcement/portal/internal/content"
)

// user-facing comment form messages
const (
	msgCommentFieldsRequired = "لطفا تمام فیلدها را پر کنید و امتیاز خود را ثبت نمایید."
	msgCommentInvalidEmail   = "لطفا یک ایمیل معتبر وارد کنید."
	msgCommentSubmitFailed   = "خطا در ارسال دیدگاه. لطفا دوباره تلاش کنید."
	msgCommentSubmitted      = "دیدگاه شما با موفقیت ارسال شد."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CommentForm carries the raw comment form fields.
type CommentForm struct {
	Name    string
	Email   string
	Content string
	Rating  int
}

// Validate returns a user-facing Persian message for the first failed rule,
// or the empty string when the form may be submitted. Validation runs before
// any upstream call.
func (f CommentForm) Validate() string {
	if f.Name == "" || f.Email == "" || f.Content == "" || f.Rating < 1 || f.Rating > 5 {
		return msgCommentFieldsRequired
	}
	if !emailPattern.MatchString(f.Email) {
		return msgCommentInvalidEmail
	}
	return ""
}

func parseCommentForm(c echo.Context) CommentForm {
	rating, _ := strconv.Atoi(c.FormValue("rating"))
	return CommentForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Content: c.FormValue("comment"),
		Rating:  rating,
	}
}

// SubmitComment handles the comment form POST. Invalid input re-renders the
// post page with an inline message and no upstream call; upstream failure is
// reported the same way; success redirects back with a confirmation flag.
func (h *SiteHandler) SubmitComment(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	form := parseCommentForm(c)

	if msg := form.Validate(); msg != "" {
		return h.renderCommentError(c, id, form, msg)
	}

	comment := content.NewComment{
		Author:  content.CommentAuthor{Name: form.Name, Email: form.Email},
		Content: form.Content,
		Rating:  form.Rating,
	}
	if err := h.resolver.SubmitComment(ctx, id, comment); err != nil {
		h.log.Error("submit comment", "post", id, "error", err)
		return h.renderCommentError(c, id, form, msgCommentSubmitFailed)
	}

	return c.Redirect(http.StatusSeeOther, "/blog/"+id+"?comment=sent")
}

func (h *SiteHandler) renderCommentError(c echo.Context, id string, form CommentForm, msg string) error {
	ctx := c.Request().Context()

	post, err := h.resolver.Post(ctx, id)
	if err != nil {
		h.log.Error("fetch blog post", "id", id, "error", err)
	}
	if post == nil {
		return h.NotFound(c)
	}

	return c.Render(http.StatusOK, "blog_post.html", blogPostPage{
		Title:        post.Title,
		Post:         post,
		Related:      h.resolver.Related(ctx, post),
		CommentForm:  form,
		CommentError: msg,
	})
}
