package content

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darabcement/portal/config"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.ContentAPI{BaseURL: srv.URL, Timeout: config.Duration(2 * time.Second)}, noOpLogger())
}

func TestClient_Posts(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(PostList{
			Data: []Post{{ID: "p1", Title: "افتتاح خط تولید"}},
			Meta: Meta{TotalItems: 1, TotalPages: 1, CurrentPage: 1},
		})
	}))

	f := Filter{Page: 2, PageSize: 9, Section: SectionNews, Tags: []string{"سیمان"}}
	list := client.Posts(context.Background(), f)

	require.Len(t, list.Data, 1)
	assert.Equal(t, "p1", list.Data[0].ID)
	assert.Equal(t, 1, list.Meta.TotalPages)
	assert.Equal(t, f.Encode(), gotQuery)
}

func TestClient_Posts_FailOpen(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "NotFound",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "MalformedBody",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			list := client.Posts(context.Background(), Filter{Page: 1, PageSize: 9})

			assert.Equal(t, EmptyPostList(), list)
		})
	}
}

func TestClient_Posts_FailOpenOnConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	client := NewClient(config.ContentAPI{BaseURL: srv.URL}, noOpLogger())
	list := client.Posts(context.Background(), Filter{Page: 1, PageSize: 9})

	assert.Equal(t, EmptyPostList(), list)
}

func TestClient_PostByID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts/p1":
			_ = json.NewEncoder(w).Encode(Post{ID: "p1", Title: "گزارش سالانه", Tags: []string{"گزارش"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Run("Found", func(t *testing.T) {
		post, err := client.PostByID(context.Background(), "p1")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "گزارش سالانه", post.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		post, err := client.PostByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestClient_PostByID_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	post, err := client.PostByID(context.Background(), "p1")

	assert.Error(t, err)
	assert.Nil(t, post)
}

func TestClient_SubmitComment(t *testing.T) {
	var got NewComment
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/posts/p1/comments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	comment := NewComment{
		Author:  CommentAuthor{Name: "علی", Email: "ali@example.com"},
		Content: "بسیار عالی",
		Rating:  5,
	}
	err := client.SubmitComment(context.Background(), "p1", comment)

	require.NoError(t, err)
	assert.Equal(t, comment, got)
}

func TestClient_SubmitComment_Failure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.SubmitComment(context.Background(), "p1", NewComment{Rating: 4})

	assert.Error(t, err)
}
