package derive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"devhub/internal/domain"
)

func TestReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content uses default badge", "", 5},
		{"whitespace only uses default badge", "   \n\t ", 5},
		{"single word rounds up to one minute", "hello", 1},
		{"exactly 200 words is one minute", words(200), 1},
		{"201 words rounds up to two minutes", words(201), 2},
		{"1000 words is five minutes", words(1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadTime(tt.content))
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestDayNumber(t *testing.T) {
	tests := []struct {
		name  string
		title string
		slug  string
		id    int64
		want  int
	}{
		{"title wins", "Day 7: Terraform Basics", "day-12-terraform", 99, 7},
		{"title match is case-insensitive", "DAY 15 recap", "", 99, 15},
		{"slug with dash", "Terraform Basics", "day-12-terraform", 99, 12},
		{"slug without dash", "Terraform Basics", "day3-intro", 99, 3},
		{"falls back to id", "Terraform Basics", "terraform-basics", 42, 42},
		{"title number without day keyword is ignored", "Top 10 tools", "tools", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayNumber(tt.title, tt.slug, tt.id))
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"html tags removed", "<p>hello <b>world</b></p>", "hello world"},
		{"headings and emphasis removed", "# Title\n\nsome *bold* _text_", "Title some bold text"},
		{"list markers removed", "- one\n- two\n* three", "one two three"},
		{"link brackets removed", "see [the docs](https://example.com)", "see the docs(https://example.com)"},
		{"plain text untouched", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdown(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 150))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))

	// Rune-aware: multibyte text is never cut mid-character.
	assert.Equal(t, "日本語...", Truncate("日本語のテキスト", 3))
}

func TestEngagementTotals(t *testing.T) {
	assert.Equal(t, domain.EngagementTotals{}, EngagementTotals(nil))

	comments := 4
	articles := []domain.Article{
		{ReadCount: 10, CommentCount: &comments, Reactions: &domain.ReactionSummary{Like: 1, Love: 2, Celebrate: 3, Insightful: 4}},
		{ReadCount: 5},
	}

	totals := EngagementTotals(articles)
	assert.Equal(t, 15, totals.Views)
	assert.Equal(t, 4, totals.Comments)
	assert.Equal(t, 10, totals.Reactions)
}

func TestAuthorTier(t *testing.T) {
	tests := []struct {
		views int
		want  domain.Tier
	}{
		{0, domain.TierRising},
		{9_999, domain.TierRising},
		{10_000, domain.TierPro},
		{49_999, domain.TierPro},
		{50_000, domain.TierExpert},
		{99_999, domain.TierExpert},
		{100_000, domain.TierElite},
		{1_000_000, domain.TierElite},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AuthorTier(tt.views), "views=%d", tt.views)
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		fromDay   int
		want      int
	}{
		{"empty set", nil, 6, 0},
		{"consecutive run", []int{4, 5, 6}, 6, 3},
		{"stops at gap", []int{2, 4, 5, 6}, 6, 3},
		{"from day missing", []int{4, 5}, 6, 0},
		{"stops at day zero", []int{1, 2, 3}, 3, 3},
		{"non-positive from day", []int{1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.completed, tt.fromDay))
		})
	}
}

func TestCommentCount(t *testing.T) {
	assert.Equal(t, 0, CommentCount(nil))

	comments := []domain.Comment{
		{ID: 1, Replies: []domain.Comment{{ID: 2}, {ID: 3}}},
		{ID: 4},
	}
	assert.Equal(t, 4, CommentCount(comments))
}
