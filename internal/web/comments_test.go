package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darabcement/portal/config"
	"github.com/darabcement/portal/internal/content"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommentFormValidate(t *testing.T) {
	valid := CommentForm{Name: "علی", Email: "ali@example.com", Content: "عالی بود", Rating: 5}

	tests := []struct {
		name   string
		mutate func(*CommentForm)
		want   string
	}{
		{
			name:   "Valid",
			mutate: func(f *CommentForm) {},
			want:   "",
		},
		{
			name:   "MissingName",
			mutate: func(f *CommentForm) { f.Name = "" },
			want:   msgCommentFieldsRequired,
		},
		{
			name:   "MissingContent",
			mutate: func(f *CommentForm) { f.Content = "" },
			want:   msgCommentFieldsRequired,
		},
		{
			name:   "NoRating",
			mutate: func(f *CommentForm) { f.Rating = 0 },
			want:   msgCommentFieldsRequired,
		},
		{
			name:   "RatingOutOfRange",
			mutate: func(f *CommentForm) { f.Rating = 6 },
			want:   msgCommentFieldsRequired,
		},
		{
			name:   "BadEmail",
			mutate: func(f *CommentForm) { f.Email = "not-an-email" },
			want:   msgCommentInvalidEmail,
		},
		{
			name:   "EmailWithSpace",
			mutate: func(f *CommentForm) { f.Email = "a b@example.com" },
			want:   msgCommentInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.Equal(t, tt.want, form.Validate())
		})
	}
}

// upstreamStub fakes the content API for comment submission tests and
// records how many comment writes reached it.
type upstreamStub struct {
	commentCalls int
	failComments bool
}

func (s *upstreamStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(content.EmptyPostList())
	})
	mux.HandleFunc("/posts/p1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(content.Post{ID: "p1", Title: "افتتاح خط تولید"})
	})
	mux.HandleFunc("/posts/p1/comments", func(w http.ResponseWriter, r *http.Request) {
		s.commentCalls++
		if s.failComments {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func newTestSite(t *testing.T, stub *upstreamStub) *echo.Echo {
	t.Helper()

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	renderer, err := NewRenderer("http://localhost:3001", bluemonday.UGCPolicy())
	require.NoError(t, err)

	client := content.NewClient(config.ContentAPI{BaseURL: srv.URL}, noOpLogger())
	handler := NewSiteHandler(content.NewResolver(client, 9), noOpLogger())

	e := echo.New()
	e.Renderer = renderer
	handler.RegisterRoutes(e)

	return e
}

func postComment(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/blog/p1/comments", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitComment(t *testing.T) {
	stub := &upstreamStub{}
	e := newTestSite(t, stub)

	rec := postComment(e, url.Values{
		"name":    {"علی"},
		"email":   {"ali@example.com"},
		"comment": {"بسیار عالی"},
		"rating":  {"4"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/blog/p1?comment=sent", rec.Header().Get("Location"))
	assert.Equal(t, 1, stub.commentCalls)
}

func TestSubmitComment_InvalidForm(t *testing.T) {
	stub := &upstreamStub{}
	e := newTestSite(t, stub)

	rec := postComment(e, url.Values{
		"name":    {"علی"},
		"email":   {"ali@example.com"},
		"comment": {"بدون امتیاز"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCommentFieldsRequired)
	assert.Contains(t, rec.Body.String(), "بدون امتیاز")
	assert.Zero(t, stub.commentCalls)
}

func TestSubmitComment_InvalidEmail(t *testing.T) {
	stub := &upstreamStub{}
	e := newTestSite(t, stub)

	rec := postComment(e, url.Values{
		"name":    {"علی"},
		"email":   {"nope"},
		"comment": {"بسیار عالی"},
		"rating":  {"5"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCommentInvalidEmail)
	assert.Zero(t, stub.commentCalls)
}

func TestSubmitComment_UpstreamError(t *testing.T) {
	stub := &upstreamStub{failComments: true}
	e := newTestSite(t, stub)

	rec := postComment(e, url.Values{
		"name":    {"علی"},
		"email":   {"ali@example.com"},
		"comment": {"بسیار عالی"},
		"rating":  {"4"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCommentSubmitFailed)
	assert.Equal(t, 1, stub.commentCalls)
}

func TestBlogPost_ConfirmationFlag(t *testing.T) {
	stub := &upstreamStub{}
	e := newTestSite(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/blog/p1?comment=sent", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCommentSubmitted)
}
