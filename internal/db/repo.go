package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/urlstruct"
	"github.com/google/uuid"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

const defaultListLimit = 50

// BlogFilter narrows the admin listing. It is decoded straight from query
// parameters with urlstruct; malformed values are a 400 at the handler,
// unlike the permissive public listing.
type BlogFilter struct {
	Search string
	Page   int
	Limit  int
}

func ParseBlogFilter(ctx context.Context, values url.Values) (BlogFilter, error) {
	var f BlogFilter
	if err := urlstruct.Unmarshal(ctx, values, &f); err != nil {
		return f, fmt.Errorf("decode blog filter: %w", err)
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultListLimit
	}

	return f, nil
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}

// BlogPosts lists drafts, newest first.
func (r *Repository) BlogPosts(ctx context.Context, filter BlogFilter) ([]BlogPost, error) {
	var posts []BlogPost
	query := r.db.ModelContext(ctx, &posts)

	if filter.Search != "" {
		query = query.Where(`"t"."title" ILIKE ?`, "%"+filter.Search+"%")
	}

	err := query.
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) BlogPostByID(ctx context.Context, id string) (*BlogPost, error) {
	post := &BlogPost{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}

	return post, nil
}

// CreateBlogPost inserts a new draft, assigning its ID and timestamps.
func (r *Repository) CreateBlogPost(ctx context.Context, post *BlogPost) error {
	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	return nil
}

// UpdateBlogPost overwrites a draft in place; last write wins.
func (r *Repository) UpdateBlogPost(ctx context.Context, post *BlogPost) error {
	post.UpdatedAt = time.Now()

	result, err := r.db.ModelContext(ctx, post).
		Column("title", "shortDescription", "content", "tags", "imageUrl", "updatedAt").
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrBlogPostNotFound
	}

	return nil
}

func (r *Repository) DeleteBlogPost(ctx context.Context, id string) error {
	result, err := r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrBlogPostNotFound
	}

	return nil
}
