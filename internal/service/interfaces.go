package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"devhub/internal/api"
	"devhub/internal/domain"
)

// ContentAPI is the remote platform surface the page services consume.
type ContentAPI interface {
	ListArticles(ctx context.Context, opts api.ArticleListOptions) ([]domain.Article, error)
	GetArticle(ctx context.Context, slug string) (*domain.Article, error)
	ListComments(ctx context.Context, slug string) ([]domain.Comment, error)
	GetReactions(ctx context.Context, slug string) (domain.ReactionSummary, error)
	ListAuthors(ctx context.Context, opts api.AuthorListOptions) ([]domain.Author, error)
	GetAuthorPublic(ctx context.Context, slug string) (*domain.Author, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	UpdateArticle(ctx context.Context, slug string, update domain.ArticleUpdate) (*domain.Article, error)
}

// ProgressReader exposes the locally tracked challenge state.
type ProgressReader interface {
	Data() domain.Progress
}
