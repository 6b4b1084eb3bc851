package api

// Wire payloads for the content API. List endpoints may wrap their items in
// {"results": [...]} or return a bare array; decodeList accepts both.

type articlePayload struct {
	ID               int64                   `json:"id"`
	Slug             string                  `json:"slug"`
	Title            string                  `json:"title"`
	Content          string                  `json:"content"`
	Excerpt          *string                 `json:"excerpt"`
	PublishedAt      string                  `json:"published_at"`
	Category         *int64                  `json:"category"`
	Tags             []int64                 `json:"tags"`
	Author           int64                   `json:"author"`
	Featured         bool                    `json:"featured"`
	ReadCount        int                     `json:"read_count"`
	CommentCount     *int                    `json:"comment_count"`
	ReactionsSummary *reactionSummaryPayload `json:"reactions_summary"`
}

type reactionSummaryPayload struct {
	Like       int `json:"like"`
	Love       int `json:"love"`
	Celebrate  int `json:"celebrate"`
	Insightful int `json:"insightful"`
}

type reactionsResponse struct {
	Summary reactionSummaryPayload `json:"summary"`
}

type commentPayload struct {
	ID        int64            `json:"id"`
	Author    string           `json:"author_name"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
	Replies   []commentPayload `json:"replies"`
}

type authorPayload struct {
	ID        int64            `json:"id"`
	Slug      string           `json:"slug"`
	Name      string           `json:"name"`
	Avatar    *string          `json:"avatar"`
	Bio       *string          `json:"bio"`
	JobTitle  *string          `json:"job_title"`
	Company   *string          `json:"company"`
	Articles  []articlePayload `json:"articles"`
	PostCount *int             `json:"post_count"`
}

type taxonomyPayload struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type testimonialPayload struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Role    *string `json:"role"`
	Company *string `json:"company"`
	Content string  `json:"content"`
	Avatar  *string `json:"avatar"`
}

type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type loginResponse struct {
	Token  string         `json:"token"`
	User   userPayload    `json:"user"`
	Author *authorPayload `json:"author"`
}

type articleUpdateRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Excerpt  string  `json:"excerpt,omitempty"`
	Category *int64  `json:"category,omitempty"`
	Tags     []int64 `json:"tags,omitempty"`
}

type errorPayload struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
