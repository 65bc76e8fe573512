package content

import (
	"context"
	"net/url"
)

const relatedLimit = 3

// Resolver is the single listing-and-filter pipeline behind every content
// page: it normalizes raw query parameters, fetches the matching page from
// the upstream API and derives the display aggregates (tag set, pagination
// window, related items).
type Resolver struct {
	client   *Client
	pageSize int
}

func NewResolver(client *Client, pageSize int) *Resolver {
	return &Resolver{client: client, pageSize: pageSize}
}

// Listing is everything a listing page renders.
type Listing struct {
	Posts      []Post
	Meta       Meta
	Filter     Filter
	Tags       []string
	Pagination Pagination
}

// Listing resolves one page of the blog listing from raw query parameters.
// Pagination is computed from the upstream metadata, taken as-is. Active tags
// are passed upstream and re-applied locally; the chip set still reflects the
// whole loaded page.
func (r *Resolver) Listing(ctx context.Context, values url.Values) Listing {
	f := ParseFilter(values, r.pageSize)
	list := r.client.Posts(ctx, f)

	return Listing{
		Posts:      FilterByTags(list.Data, f.Tags),
		Meta:       list.Meta,
		Filter:     f,
		Tags:       UniqueTags(list.Data),
		Pagination: Paginate(list.Meta.CurrentPage, list.Meta.TotalPages),
	}
}

// Section fetches the newest posts of one section, for the home page rails.
func (r *Resolver) Section(ctx context.Context, section Section, limit int) []Post {
	list := r.client.Posts(ctx, Filter{Page: 1, PageSize: limit, Section: section})
	return list.Data
}

// Post fetches a single post; (nil, nil) means not found.
func (r *Resolver) Post(ctx context.Context, id string) (*Post, error) {
	return r.client.PostByID(ctx, id)
}

// Related finds up to three posts sharing a tag with the given one,
// excluding the post itself. No tags, no related posts.
func (r *Resolver) Related(ctx context.Context, post *Post) []Post {
	if post == nil || len(post.Tags) == 0 {
		return nil
	}

	// fetch one extra in case the post itself comes back
	f := Filter{Page: 1, PageSize: relatedLimit + 1, Section: post.Section, Tags: post.Tags}
	list := r.client.Posts(ctx, f)

	return RelatedPosts(list.Data, post.ID, relatedLimit)
}

// Products resolves the product listing through the Post→Product adapter.
func (r *Resolver) Products(ctx context.Context, values url.Values) ([]Product, Filter, Pagination) {
	f := ParseFilter(values, r.pageSize)
	f.Section = SectionProduct
	f.Tags = nil
	f.Search = ""

	list := r.client.Posts(ctx, f)
	return NewProducts(list.Data), f, Paginate(list.Meta.CurrentPage, list.Meta.TotalPages)
}

// Product fetches a single product; (nil, nil) means not found.
func (r *Resolver) Product(ctx context.Context, id string) (*Product, error) {
	post, err := r.client.PostByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	product := NewProduct(*post)
	return &product, nil
}

// SubmitComment forwards a validated comment to the upstream API.
func (r *Resolver) SubmitComment(ctx context.Context, postID string, comment NewComment) error {
	return r.client.SubmitComment(ctx, postID, comment)
}
