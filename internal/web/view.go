package web

import (
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/darabcement/portal/internal/content"
)

const unknownDate = "تاریخ نامشخص"

// FormatDate renders a timestamp as a Jalali calendar date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return ptime.New(t).Format("yyyy/MM/dd")
}

// ImageURL resolves a lead picture reference against the asset base URL.
// Absolute URLs pass through, empty references stay empty.
func ImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// viewFuncs builds the template helper set. Post content is sanitized before
// it is marked safe; everything else stays auto-escaped.
func viewFuncs(assetBase string, sanitizer *bluemonday.Policy) template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
		"imageURL": func(path string) string {
			return ImageURL(assetBase, path)
		},
		"excerpt": func(html string) string {
			return content.Excerpt(html, 160)
		},
		"safeHTML": func(html string) template.HTML {
			return template.HTML(sanitizer.Sanitize(html))
		},
		"until": func(n int) []int {
			seq := make([]int, n)
			for i := range seq {
				seq[i] = i + 1
			}
			return seq
		},
	}
}
