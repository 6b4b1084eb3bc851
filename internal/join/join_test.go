package join

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devhub/internal/domain"
)

func TestAuthorByID(t *testing.T) {
	authors := []domain.Author{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Grace"},
	}

	a, ok := AuthorByID(authors, 2)
	assert.True(t, ok)
	assert.Equal(t, "Grace", a.Name)

	_, ok = AuthorByID(authors, 99)
	assert.False(t, ok)

	_, ok = AuthorByID(nil, 1)
	assert.False(t, ok)
}

func TestCategoryByID(t *testing.T) {
	categories := []domain.Category{{ID: 3, Slug: "kubernetes", Name: "Kubernetes"}}

	c, ok := CategoryByID(categories, 3)
	assert.True(t, ok)
	assert.Equal(t, "kubernetes", c.Slug)

	_, ok = CategoryByID(categories, 4)
	assert.False(t, ok)
}

func TestTagsDropsUnresolved(t *testing.T) {
	tags := []domain.Tag{
		{ID: 1, Slug: "docker"},
		{ID: 2, Slug: "terraform"},
	}

	resolved := Tags(tags, []int64{2, 7, 1})
	assert.Len(t, resolved, 2)
	assert.Equal(t, "terraform", resolved[0].Slug)
	assert.Equal(t, "docker", resolved[1].Slug)

	assert.Empty(t, Tags(tags, nil))
	assert.Empty(t, Tags(nil, []int64{1}))
}
