package domain

import "time"

// Article is a platform article as returned by the content API. ReadTime and
// DayNumber are not part of the API payload; they are derived locally before
// display.
type Article struct {
	ID          int64
	Slug        string
	Title       string
	Content     string
	Excerpt     *string
	PublishedAt time.Time
	CategoryID  *int64
	TagIDs      []int64
	AuthorID    int64
	Featured    bool

	ReadCount    int
	CommentCount *int
	Reactions    *ReactionSummary
}

// ArticleUpdate carries the editable fields for an authenticated update.
type ArticleUpdate struct {
	Title    string
	Content  string
	Excerpt  string
	Category *int64
	TagIDs   []int64
}

type Author struct {
	ID       int64
	Slug     string
	Name     string
	Avatar   *string
	Bio      *string
	JobTitle *string
	Company  *string

	// Articles is populated only by the author detail endpoint.
	Articles []Article
	// PostCount is populated only when the list was requested with
	// count_posts=true.
	PostCount *int
}

type Tag struct {
	ID   int64
	Slug string
	Name string
}

type Category struct {
	ID   int64
	Slug string
	Name string
}

// Comment is one top-level comment with one level of replies; the platform
// counts a thread as the top-level comment plus its direct replies.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	CreatedAt time.Time
	Replies   []Comment
}

type ReactionSummary struct {
	Like       int
	Love       int
	Celebrate  int
	Insightful int
}

func (r ReactionSummary) Total() int {
	return r.Like + r.Love + r.Celebrate + r.Insightful
}

type Testimonial struct {
	ID      int64
	Name    string
	Role    *string
	Company *string
	Content string
	Avatar  *string
}

// Tier is an author's engagement classification, thresholded on the summed
// read count across the author's articles.
type Tier string

const (
	TierRising Tier = "Rising"
	TierPro    Tier = "Pro"
	TierExpert Tier = "Expert"
	TierElite  Tier = "Elite"
)

// EngagementTotals aggregates counters across a set of articles.
type EngagementTotals struct {
	Views     int
	Comments  int
	Reactions int
}

type User struct {
	ID       int64
	Username string
	Email    string
}

// Session is the result of a successful login, password or Google.
type Session struct {
	Token  string
	User   User
	Author *Author
}
