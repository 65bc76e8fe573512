package content

import (
	"strings"
	"time"

	strip "github.com/grokify/html-strip-tags-go"
)

// Section is one of the fixed editorial categories the upstream API
// partitions posts by. Values are the Persian labels used on the wire.
type Section string

const (
	SectionOccasions     Section = "مناسبت ها"
	SectionAnnouncements Section = "اطلاعیه ها"
	SectionNews          Section = "اخبار ها"
	SectionAchievements  Section = "افتخارات"

	// SectionProduct is not user-selectable; the product pages query it
	// directly, the listing normalizer never produces it.
	SectionProduct Section = "product"
)

// DefaultSection is used when a request carries an unknown section value.
const DefaultSection = SectionNews

// ParseSection maps a raw query value to a known section,
// falling back to DefaultSection.
func ParseSection(s string) Section {
	switch Section(s) {
	case SectionOccasions, SectionAnnouncements, SectionNews, SectionAchievements:
		return Section(s)
	}
	return DefaultSection
}

type Author struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Post is the canonical content item. The upstream API historically served
// two shapes (title/content/leadPicture and name/description/image); this is
// the canonical one, products are adapted from it, see NewProduct.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	Content       string    `json:"content,omitempty"`
	LeadPicture   string    `json:"leadPicture,omitempty"`
	Section       Section   `json:"section,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
	Author        *Author   `json:"author,omitempty"`
	ReadingTime   int       `json:"readingTime,omitempty"`
	AverageRating float64   `json:"averageRating,omitempty"`
	TotalRatings  int       `json:"totalRatings,omitempty"`
	Comments      []Comment `json:"comments,omitempty"`
}

// Meta is the pagination metadata returned by the upstream API,
// trusted as-is.
type Meta struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// PostList is the upstream listing response envelope.
type PostList struct {
	Data []Post `json:"data"`
	Meta Meta   `json:"meta"`
}

// EmptyPostList is what read paths degrade to on upstream failure:
// a valid, empty, single-page result.
func EmptyPostList() PostList {
	return PostList{Data: []Post{}, Meta: Meta{TotalItems: 0, TotalPages: 1, CurrentPage: 1}}
}

type CommentAuthor struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Comment struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Author    CommentAuthor `json:"author"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewComment is the payload for POST /posts/:id/comments.
type NewComment struct {
	Author  CommentAuthor `json:"author"`
	Content string        `json:"content"`
	Rating  int           `json:"rating"`
}

// Product is the view type for product pages. Upstream stores products as
// posts under SectionProduct; the adapter renames the divergent fields once,
// at the API boundary.
type Product struct {
	ID          string
	Name        string
	Description string
	Image       string
	Content     string
	CreatedAt   time.Time
}

func NewProduct(p Post) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Title,
		Description: p.Summary,
		Image:       p.LeadPicture,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
	}
}

func NewProducts(posts []Post) []Product {
	products := make([]Product, len(posts))
	for i := range posts {
		products[i] = NewProduct(posts[i])
	}
	return products
}

// Excerpt returns a plain-text preview of HTML content, at most max runes.
func Excerpt(html string, max int) string {
	text := strings.Join(strings.Fields(strip.StripTags(html)), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
