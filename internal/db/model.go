package db

import (
	"time"
)

// BlogPost is a draft authored in the admin console's rich-text editor.
// Published content lives in the upstream content API; this table backs
// only the /api/blog admin routes.
type BlogPost struct {
	tableName struct{} `pg:"blog_posts,alias:t,discard_unknown_columns"`

	ID               string    `pg:"id,pk" json:"id"`
	Title            string    `pg:"title,use_zero" json:"title"`
	ShortDescription string    `pg:"shortDescription,use_zero" json:"shortDescription"`
	Content          string    `pg:"content,use_zero" json:"content"`
	Tags             string    `pg:"tags,use_zero" json:"tags"`
	ImageURL         string    `pg:"imageUrl,use_zero" json:"imageUrl"`
	Views            int       `pg:"views,use_zero" json:"views"`
	CreatedAt        time.Time `pg:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `pg:"updatedAt" json:"updatedAt"`
}
