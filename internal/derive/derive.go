// Package derive holds the pure presentation derivations: values shown in the
// UI that the content API does not return. Nothing here does I/O or mutates
// its inputs.
package derive

import (
	"regexp"
	"strconv"
	"strings"

	"devhub/internal/domain"
)

const (
	wordsPerMinute = 200

	// Articles with no body still display a read-time badge; the platform
	// shows "5 min read" for those, so the default is part of the contract.
	defaultReadTime = 5

	// DefaultSnippetLength is the preview length used on list pages.
	DefaultSnippetLength = 150
)

// ReadTime estimates reading time in whole minutes at 200 words per minute,
// never below one minute. Empty content yields the fixed default.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return defaultReadTime
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

var (
	titleDayPattern = regexp.MustCompile(`(?i)day\s+(\d+)`)
	slugDayPattern  = regexp.MustCompile(`(?i)day-?(\d+)`)
)

// DayNumber extracts the challenge-day ordinal for an article. The title is
// consulted first ("Day 7: ..."), then the slug ("day-7-..."), then the
// numeric id as a last resort. The precedence order is load-bearing: editors
// fix titles without touching slugs.
func DayNumber(title, slug string, id int64) int {
	if m := titleDayPattern.FindStringSubmatch(title); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := slugDayPattern.FindStringSubmatch(slug); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return int(id)
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	listMarkerPattern = regexp.MustCompile(`(?m)^\s*[-+*]\s+`)
	inlineMarkPattern = regexp.MustCompile("[#*_~`>!\\[\\]]")
	spaceRunPattern   = regexp.MustCompile(`\s+`)
)

// StripMarkdown reduces markdown (possibly containing inline HTML) to plain
// text for preview snippets. Lossy and best-effort; the markdown source stays
// canonical.
func StripMarkdown(text string) string {
	out := htmlTagPattern.ReplaceAllString(text, "")
	out = listMarkerPattern.ReplaceAllString(out, "")
	out = inlineMarkPattern.ReplaceAllString(out, "")
	out = spaceRunPattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Truncate shortens text to at most max characters, appending an ellipsis
// marker when anything was cut. Counts runes so multibyte text is never cut
// mid-character.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// Snippet is the list-page preview: stripped markdown truncated to the
// default length.
func Snippet(content string) string {
	return Truncate(StripMarkdown(content), DefaultSnippetLength)
}

// EngagementTotals sums views, comments and reactions across a set of
// articles. Counters the API did not supply count as zero.
func EngagementTotals(articles []domain.Article) domain.EngagementTotals {
	var totals domain.EngagementTotals
	for _, a := range articles {
		totals.Views += a.ReadCount
		if a.CommentCount != nil {
			totals.Comments += *a.CommentCount
		}
		if a.Reactions != nil {
			totals.Reactions += a.Reactions.Total()
		}
	}
	return totals
}

// AuthorTier classifies an author by total views. Buckets are half-open:
// [0,10k) Rising, [10k,50k) Pro, [50k,100k) Expert, [100k,∞) Elite.
func AuthorTier(totalViews int) domain.Tier {
	switch {
	case totalViews < 10_000:
		return domain.TierRising
	case totalViews < 50_000:
		return domain.TierPro
	case totalViews < 100_000:
		return domain.TierExpert
	default:
		return domain.TierElite
	}
}

// Streak counts consecutive completed days walking backward from fromDay,
// stopping at the first gap or at day zero. An empty completed set or a
// non-positive fromDay yields zero.
func Streak(completedDays []int, fromDay int) int {
	completed := make(map[int]struct{}, len(completedDays))
	for _, d := range completedDays {
		completed[d] = struct{}{}
	}

	streak := 0
	for day := fromDay; day >= 1; day-- {
		if _, ok := completed[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// CommentCount counts a comment tree the way the platform displays it: each
// top-level comment plus its direct replies.
func CommentCount(comments []domain.Comment) int {
	count := 0
	for _, c := range comments {
		count += 1 + len(c.Replies)
	}
	return count
}
