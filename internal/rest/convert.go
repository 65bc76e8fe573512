package rest

import "github.com/darabcement/portal/internal/db"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewBlogPost(p db.BlogPost) BlogPost {
	return BlogPost{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		Tags:             p.Tags,
		ImageURL:         p.ImageURL,
		Views:            p.Views,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewBlogPosts(list []db.BlogPost) []BlogPost {
	return Map(list, NewBlogPost)
}
