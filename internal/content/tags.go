package content

import "slices"

// UniqueTags collects the unique tags of the given posts in order of first
// appearance. The aggregate covers only the posts passed in, i.e. the
// currently loaded page, not the full corpus.
func UniqueTags(posts []Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for i := range posts {
		for _, tag := range posts[i].Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// FilterByTags keeps posts that carry at least one of the given tags.
// An empty tag list means no constraint.
func FilterByTags(posts []Post, tags []string) []Post {
	if len(tags) == 0 {
		return posts
	}
	var filtered []Post
	for i := range posts {
		for _, tag := range tags {
			if slices.Contains(posts[i].Tags, tag) {
				filtered = append(filtered, posts[i])
				break
			}
		}
	}
	return filtered
}

// RelatedPosts drops the current post from a candidate list and caps it.
func RelatedPosts(posts []Post, currentID string, limit int) []Post {
	var related []Post
	for i := range posts {
		if posts[i].ID == currentID {
			continue
		}
		related = append(related, posts[i])
		if len(related) == limit {
			break
		}
	}
	return related
}
