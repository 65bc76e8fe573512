package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSection(t *testing.T) {
	assert.Equal(t, SectionOccasions, ParseSection("مناسبت ها"))
	assert.Equal(t, SectionNews, ParseSection(""))
	assert.Equal(t, SectionNews, ParseSection("whatever"))
}

func TestExcerpt(t *testing.T) {
	html := "<p>شرکت سیمان داراب   <strong>خط تولید</strong> جدید را افتتاح کرد.</p>"

	assert.Equal(t, "شرکت سیمان داراب خط تولید جدید را افتتاح کرد.", Excerpt(html, 200))
}

func TestExcerpt_Truncates(t *testing.T) {
	got := Excerpt("<p>اول دوم سوم چهارم</p>", 8)

	assert.Equal(t, "اول دوم…", got)
}

func TestNewProduct(t *testing.T) {
	post := Post{
		ID:          "c1",
		Title:       "سیمان پرتلند تیپ ۵",
		Summary:     "مناسب محیط های سولفاته",
		Content:     "<p>مشخصات فنی</p>",
		LeadPicture: "uploads/type5.jpg",
		Section:     SectionProduct,
	}

	product := NewProduct(post)

	assert.Equal(t, "c1", product.ID)
	assert.Equal(t, post.Title, product.Name)
	assert.Equal(t, post.Summary, product.Description)
	assert.Equal(t, post.LeadPicture, product.Image)
	assert.Equal(t, post.Content, product.Content)
}
