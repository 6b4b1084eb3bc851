package service

import (
	"strings"
	"time"

	"devhub/internal/domain"
)

// ArticleItem is one article ready for display: joined references plus
// derived presentation fields. Author and Category are nil when the
// reference did not resolve; the UI omits them.
type ArticleItem struct {
	Article   domain.Article
	Author    *domain.Author
	Category  *domain.Category
	Tags      []domain.Tag
	ReadTime  int
	DayNumber int
	Snippet   string
}

type ArticlePage struct {
	Items      []ArticleItem
	Page       int
	TotalPages int
	TotalItems int
}

type ArticleDetail struct {
	ArticleItem
	CommentCount int
	Reactions    domain.ReactionSummary
	Comments     []domain.Comment
}

// Enrichment holds the per-article secondary fetch results; zero values when
// the fetches failed.
type Enrichment struct {
	CommentCount int
	Reactions    domain.ReactionSummary
}

type AuthorPage struct {
	Items      []domain.Author
	Page       int
	TotalPages int
	TotalItems int
}

type AuthorProfile struct {
	Author   domain.Author
	Totals   domain.EngagementTotals
	Tier     domain.Tier
	Articles []ArticleItem
}

type ChallengeDay struct {
	Day       int
	Article   *ArticleItem
	Completed bool
	LastRead  *time.Time
}

type ChallengeBoard struct {
	Days           []ChallengeDay
	CompletedCount int
	Streak         int
	TotalDays      int
}

// ValidationError reports required fields missing from a submission; raised
// before any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
