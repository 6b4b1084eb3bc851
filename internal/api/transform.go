package api

import (
	"encoding/json"
	"fmt"
	"time"

	"devhub/internal/domain"
)

func (c *Client) toArticles(payloads []articlePayload) []domain.Article {
	articles := make([]domain.Article, 0, len(payloads))
	for _, p := range payloads {
		articles = append(articles, c.toArticle(p))
	}
	return articles
}

func (c *Client) toArticle(p articlePayload) domain.Article {
	article := domain.Article{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		CategoryID:   p.Category,
		TagIDs:       p.Tags,
		AuthorID:     p.Author,
		Featured:     p.Featured,
		ReadCount:    p.ReadCount,
		CommentCount: p.CommentCount,
	}

	if p.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, p.PublishedAt)
		if err != nil {
			// Keep the article; an unparsable date only loses sorting fidelity.
			c.logger.Warn("failed to parse published_at",
				"slug", p.Slug,
				"published_at", p.PublishedAt,
			)
		} else {
			article.PublishedAt = publishedAt
		}
	}

	if p.ReactionsSummary != nil {
		summary := domain.ReactionSummary(*p.ReactionsSummary)
		article.Reactions = &summary
	}

	return article
}

func (c *Client) toComments(payloads []commentPayload) []domain.Comment {
	comments := make([]domain.Comment, 0, len(payloads))
	for _, p := range payloads {
		comment := domain.Comment{
			ID:     p.ID,
			Author: p.Author,
			Body:   p.Content,
		}
		if p.CreatedAt != "" {
			if createdAt, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
				comment.CreatedAt = createdAt
			}
		}
		comment.Replies = c.toComments(p.Replies)
		comments = append(comments, comment)
	}
	return comments
}

func (c *Client) toAuthors(payloads []authorPayload) []domain.Author {
	authors := make([]domain.Author, 0, len(payloads))
	for _, p := range payloads {
		authors = append(authors, c.toAuthor(p))
	}
	return authors
}

func (c *Client) toAuthor(p authorPayload) domain.Author {
	return domain.Author{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Bio:       p.Bio,
		JobTitle:  p.JobTitle,
		Company:   p.Company,
		Articles:  c.toArticles(p.Articles),
		PostCount: p.PostCount,
	}
}

func (c *Client) toSession(body []byte) (*domain.Session, error) {
	var payload loginResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	session := &domain.Session{
		Token: payload.Token,
		User: domain.User{
			ID:       payload.User.ID,
			Username: payload.User.Username,
			Email:    payload.User.Email,
		},
	}
	if payload.Author != nil {
		author := c.toAuthor(*payload.Author)
		session.Author = &author
	}
	return session, nil
}
