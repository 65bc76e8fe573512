package rest

import "time"

type BlogPost struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	Tags             string    `json:"tags"`
	ImageURL         string    `json:"imageUrl"`
	Views            int       `json:"views"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BlogPostRequest is the create/update payload sent by the admin editor.
// Update carries the ID, create leaves it empty.
type BlogPostRequest struct {
	ID               string `json:"id,omitempty"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	Tags             string `json:"tags"`
	ImageURL         string `json:"imageUrl"`
}
