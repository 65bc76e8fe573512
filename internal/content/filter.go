package content

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter is the normalized set of listing constraints derived from raw
// request parameters. Absence of a field means "no constraint".
type Filter struct {
	Page     int
	PageSize int
	Search   string
	Section  Section
	Tags     []string
}

// ParseFilter normalizes raw query parameters into a Filter. Malformed input
// never yields an error: a bad page number becomes 1, an unknown section
// becomes the default one, empty tag segments are dropped. The listing page
// must render for any input.
func ParseFilter(values url.Values, pageSize int) Filter {
	f := Filter{
		Page:     1,
		PageSize: pageSize,
		Section:  ParseSection(values.Get("section")),
		Tags:     SplitTags(values.Get("tags")),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		f.Page = page
	}

	f.Search = values.Get("search")
	if f.Search == "" {
		// upstream calls it "title", page URLs call it "search"
		f.Search = values.Get("title")
	}

	return f
}

// SplitTags splits a comma-joined tag parameter, dropping empty segments.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Query builds the upstream query string for the filter. Page and limit are
// always present; section, title and tags only when set. Encoding goes
// through url.Values so values round-trip through ParseFilter.
func (f Filter) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.PageSize))

	if f.Section != "" {
		q.Set("section", string(f.Section))
	}
	if f.Search != "" {
		q.Set("title", f.Search)
	}
	if len(f.Tags) > 0 {
		q.Set("tags", strings.Join(f.Tags, ","))
	}

	return q
}

// Encode returns the percent-encoded query string for the upstream request.
func (f Filter) Encode() string {
	return f.Query().Encode()
}

// pageValues re-encodes the filter with the site's own parameter names.
// Defaults are left out so plain listing URLs stay clean; the product
// section never appears because the product pages force it themselves.
func (f Filter) pageValues() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Section != "" && f.Section != DefaultSection && f.Section != SectionProduct {
		q.Set("section", string(f.Section))
	}
	if len(f.Tags) > 0 {
		q.Set("tags", strings.Join(f.Tags, ","))
	}
	return q
}

// PageURL returns the listing URL under path for the given page, keeping
// every other active constraint.
func (f Filter) PageURL(path string, page int) string {
	q := f.pageValues()
	q.Set("page", strconv.Itoa(page))
	return path + "?" + q.Encode()
}

// ToggleTagURL returns the listing URL with the tag added to or removed
// from the active set, reset to the first page.
func (f Filter) ToggleTagURL(path, tag string) string {
	tags := make([]string, 0, len(f.Tags)+1)
	for _, t := range f.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	if len(tags) == len(f.Tags) {
		tags = append(tags, tag)
	}

	q := f.pageValues()
	q.Del("tags")
	if len(tags) > 0 {
		q.Set("tags", strings.Join(tags, ","))
	}
	q.Set("page", "1")
	return path + "?" + q.Encode()
}

// HasTag reports whether the filter carries the given active tag.
func (f Filter) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
