// Package join resolves foreign-key references against already-fetched
// resource sets. Absence is a boolean, never an error: an unresolved
// reference renders as an omitted element.
package join

import "devhub/internal/domain"

func AuthorByID(authors []domain.Author, id int64) (domain.Author, bool) {
	for _, a := range authors {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Author{}, false
}

func TagByID(tags []domain.Tag, id int64) (domain.Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Tag{}, false
}

func CategoryByID(categories []domain.Category, id int64) (domain.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Tags resolves a list of tag ids, silently dropping any that do not resolve.
func Tags(tags []domain.Tag, ids []int64) []domain.Tag {
	var resolved []domain.Tag
	for _, id := range ids {
		if t, ok := TagByID(tags, id); ok {
			resolved = append(resolved, t)
		}
	}
	return resolved
}
