// Package api is the single boundary to the platform's REST API: one client,
// one method per endpoint, list-shape normalization in one place. Failures
// are never retried here; policy (abort vs degrade) belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"devhub/internal/domain"
)

// ErrUnauthorized is returned for any 401 response; the session layer reacts
// by tearing the local session down.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a server-reported failure carrying the message the API supplied,
// if any.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Token   string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		logger:     logger.With("component", "api"),
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type ArticleListOptions struct {
	TagSlug  string
	Featured bool
	Ordering string
}

func (c *Client) ListArticles(ctx context.Context, opts ArticleListOptions) ([]domain.Article, error) {
	query := url.Values{}
	if opts.TagSlug != "" {
		query.Set("tags__slug", opts.TagSlug)
	}
	if opts.Featured {
		query.Set("featured", "true")
	}
	if opts.Ordering != "" {
		query.Set("ordering", opts.Ordering)
	}

	body, err := c.get(ctx, "/articles/", query, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[articlePayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return c.toArticles(payloads), nil
}

func (c *Client) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	body, err := c.get(ctx, "/articles/"+url.PathEscape(slug)+"/", nil, false)
	if err != nil {
		return nil, err
	}

	var payload articlePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	article := c.toArticle(payload)
	return &article, nil
}

func (c *Client) ListComments(ctx context.Context, slug string) ([]domain.Comment, error) {
	body, err := c.get(ctx, "/articles/"+url.PathEscape(slug)+"/comments/", nil, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[commentPayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return c.toComments(payloads), nil
}

func (c *Client) GetReactions(ctx context.Context, slug string) (domain.ReactionSummary, error) {
	body, err := c.get(ctx, "/articles/"+url.PathEscape(slug)+"/reactions/", nil, false)
	if err != nil {
		return domain.ReactionSummary{}, err
	}

	var payload reactionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("decode reactions: %w", err)
	}
	return domain.ReactionSummary(payload.Summary), nil
}

type AuthorListOptions struct {
	Featured   bool
	CountPosts bool
}

func (c *Client) ListAuthors(ctx context.Context, opts AuthorListOptions) ([]domain.Author, error) {
	query := url.Values{}
	if opts.Featured {
		query.Set("featured", "true")
	}
	if opts.CountPosts {
		query.Set("count_posts", "true")
	}

	body, err := c.get(ctx, "/authors/", query, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[authorPayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return c.toAuthors(payloads), nil
}

func (c *Client) GetAuthorPublic(ctx context.Context, slug string) (*domain.Author, error) {
	body, err := c.get(ctx, "/authors/"+url.PathEscape(slug)+"/public/", nil, false)
	if err != nil {
		return nil, err
	}

	var payload authorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode author: %w", err)
	}
	author := c.toAuthor(payload)
	return &author, nil
}

// Me returns the authenticated caller's author profile.
func (c *Client) Me(ctx context.Context) (*domain.Author, error) {
	body, err := c.get(ctx, "/authors/me/", nil, true)
	if err != nil {
		return nil, err
	}

	var payload authorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode author: %w", err)
	}
	author := c.toAuthor(payload)
	return &author, nil
}

func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	body, err := c.get(ctx, "/tags/", nil, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[taxonomyPayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(payloads))
	for _, p := range payloads {
		tags = append(tags, domain.Tag{ID: p.ID, Slug: p.Slug, Name: p.Name})
	}
	return tags, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.get(ctx, "/categories/", nil, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[taxonomyPayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(payloads))
	for _, p := range payloads {
		categories = append(categories, domain.Category{ID: p.ID, Slug: p.Slug, Name: p.Name})
	}
	return categories, nil
}

func (c *Client) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	body, err := c.get(ctx, "/testimonials/", nil, false)
	if err != nil {
		return nil, err
	}

	payloads, err := decodeList[testimonialPayload](body)
	if err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}

	testimonials := make([]domain.Testimonial, 0, len(payloads))
	for _, p := range payloads {
		testimonials = append(testimonials, domain.Testimonial{
			ID:      p.ID,
			Name:    p.Name,
			Role:    p.Role,
			Company: p.Company,
			Content: p.Content,
			Avatar:  p.Avatar,
		})
	}
	return testimonials, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	body, err := c.send(ctx, http.MethodPost, "/login/", loginRequest{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}
	return c.toSession(body)
}

// LoginWithGoogle forwards a Google Identity credential; the response is
// handled identically to password login.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	body, err := c.send(ctx, http.MethodPost, "/auth/google/", googleLoginRequest{IDToken: idToken}, false)
	if err != nil {
		return nil, err
	}
	return c.toSession(body)
}

func (c *Client) UpdateArticle(ctx context.Context, slug string, update domain.ArticleUpdate) (*domain.Article, error) {
	req := articleUpdateRequest{
		Title:    update.Title,
		Content:  update.Content,
		Excerpt:  update.Excerpt,
		Category: update.Category,
		Tags:     update.TagIDs,
	}

	body, err := c.send(ctx, http.MethodPut, "/articles/"+url.PathEscape(slug)+"/", req, true)
	if err != nil {
		return nil, err
	}

	var payload articlePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	article := c.toArticle(payload)
	return &article, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, auth bool) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, auth)
}

func (c *Client) send(ctx context.Context, method, path string, payload any, auth bool) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, auth)
}

func (c *Client) do(req *http.Request, auth bool) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "devhub/1.0")
	if auth {
		token := c.currentToken()
		if token == "" {
			return nil, fmt.Errorf("%s %s: no session token: %w", req.Method, req.URL.Path, ErrUnauthorized)
		}
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: serverMessage(body)}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("unexpected content type %q", ct)
	}

	return body, nil
}

// serverMessage pulls a human-readable message out of an error body; the API
// is inconsistent about the field name.
func serverMessage(body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Message != "":
		return payload.Message
	default:
		return payload.Error
	}
}

// decodeList normalizes the API's two list shapes, {"results": [...]} and a
// bare array, to one slice.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Results, nil
}
