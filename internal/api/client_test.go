package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devhub/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, testLogger())
}

func TestListArticlesBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/", r.URL.Path)
		assert.Equal(t, "docker", r.URL.Query().Get("tags__slug"))
		assert.Equal(t, "published_at", r.URL.Query().Get("ordering"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"slug":"day-1-intro","title":"Day 1: Intro","author":7,"read_count":42,"published_at":"2024-03-01T10:00:00Z"}]`))
	})

	articles, err := client.ListArticles(context.Background(), ArticleListOptions{TagSlug: "docker", Ordering: "published_at"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, int64(1), articles[0].ID)
	assert.Equal(t, "day-1-intro", articles[0].Slug)
	assert.Equal(t, int64(7), articles[0].AuthorID)
	assert.Equal(t, 42, articles[0].ReadCount)
	assert.Equal(t, 2024, articles[0].PublishedAt.Year())
}

func TestListArticlesResultsWrapper(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"results":[{"id":2,"slug":"featured-post","title":"Featured","author":7}]}`))
	})

	articles, err := client.ListArticles(context.Background(), ArticleListOptions{Featured: true})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "featured-post", articles[0].Slug)
}

func TestListShapesNormalizeIdentically(t *testing.T) {
	item := `{"id":3,"slug":"s","title":"T","author":1}`
	shapes := map[string]string{
		"bare":    `[` + item + `]`,
		"wrapped": `{"results":[` + item + `]}`,
	}

	var decoded [][]domain.Article
	for name, body := range shapes {
		payload := body
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		})
		articles, err := client.ListArticles(context.Background(), ArticleListOptions{})
		require.NoError(t, err, name)
		decoded = append(decoded, articles)
	}

	assert.Equal(t, decoded[0], decoded[1])
}

func TestGetArticleNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	})

	_, err := client.GetArticle(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not found.", apiErr.Message)
}

func TestServerErrorWithoutMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.ListTags(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestUnauthorizedSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token."}`))
	})
	client.SetToken("stale")

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticatedCallWithoutToken(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called, "no request should be sent without a token")
}

func TestNonJSONContentType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content type")
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login/", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req["username"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-123","user":{"id":1,"username":"ada","email":"ada@example.com"}}`))
	})

	session, err := client.Login(context.Background(), "ada", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "ada", session.User.Username)
	assert.Nil(t, session.Author)
}

func TestLoginWithGoogleForwardsCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/google/", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google-credential", req["id_token"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-456","user":{"id":2,"username":"grace"},"author":{"id":9,"slug":"grace","name":"Grace"}}`))
	})

	session, err := client.LoginWithGoogle(context.Background(), "google-credential")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", session.Token)
	require.NotNil(t, session.Author)
	assert.Equal(t, "grace", session.Author.Slug)
}

func TestUpdateArticleSendsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/articles/day-1-intro/", r.URL.Path)
		assert.Equal(t, "Token tok-123", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "New title", req["title"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"slug":"day-1-intro","title":"New title","author":7}`))
	})
	client.SetToken("tok-123")

	article, err := client.UpdateArticle(context.Background(), "day-1-intro", domain.ArticleUpdate{
		Title:   "New title",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", article.Title)
}

func TestGetReactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/day-1-intro/reactions/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary":{"like":3,"love":2,"celebrate":1,"insightful":4}}`))
	})

	summary, err := client.GetReactions(context.Background(), "day-1-intro")
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionSummary{Like: 3, Love: 2, Celebrate: 1, Insightful: 4}, summary)
	assert.Equal(t, 10, summary.Total())
}

func TestListCommentsTree(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"author_name":"ada","content":"nice","replies":[{"id":2,"author_name":"grace","content":"+1"}]}]`))
	})

	comments, err := client.ListComments(context.Background(), "day-1-intro")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "grace", comments[0].Replies[0].Author)
}
