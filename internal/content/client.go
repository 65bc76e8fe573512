package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/darabcement/portal/config"
)

const defaultTimeout = 10 * time.Second

// Client talks to the upstream content API. Read paths fail open: on any
// transport or backend failure the caller gets a valid empty result, the
// condition is logged and never reaches the render path.
type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

func NewClient(cfg config.ContentAPI, log *slog.Logger) *Client {
	timeout := cfg.Timeout.Std()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		base: cfg.URL(),
		hc:   &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Posts fetches one page of posts matching the filter. It never returns an
// error: failures degrade to EmptyPostList.
func (c *Client) Posts(ctx context.Context, f Filter) PostList {
	u := c.base + "/posts?" + f.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.log.Error("build posts request", "url", u, "error", err)
		return EmptyPostList()
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("fetch posts", "url", u, "error", err)
		return EmptyPostList()
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.log.Error("fetch posts", "url", u, "status", resp.StatusCode)
		return EmptyPostList()
	}

	var list PostList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.log.Error("decode posts response", "url", u, "error", err)
		return EmptyPostList()
	}
	if list.Data == nil {
		list.Data = []Post{}
	}

	return list
}

// PostByID fetches a single post. A missing post is (nil, nil); transport and
// backend failures are returned to the caller, which renders not-found.
func (c *Client) PostByID(ctx context.Context, id string) (*Post, error) {
	u := c.base + "/posts/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build post request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	defer drainClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch post %s: status %d", id, resp.StatusCode)
	}

	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("decode post %s: %w", id, err)
	}

	return &post, nil
}

// SubmitComment posts a new comment. Write-path failures surface to the form.
func (c *Client) SubmitComment(ctx context.Context, postID string, comment NewComment) error {
	body, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("encode comment: %w", err)
	}

	u := c.base + "/posts/" + url.PathEscape(postID) + "/comments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build comment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("submit comment: status %d", resp.StatusCode)
	}

	return nil
}

// drainClose reads the rest of the body so the connection can be reused.
func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
