// Package service assembles pages: fetch the page's resource sets in
// parallel, join references in memory, derive presentation fields and
// paginate. The whole pipeline re-runs per call; nothing is cached between
// invocations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"devhub/internal/api"
	"devhub/internal/config"
	"devhub/internal/derive"
	"devhub/internal/domain"
	"devhub/internal/join"
	"devhub/internal/paginate"
)

type ContentService struct {
	api       ContentAPI
	progress  ProgressReader
	logger    *slog.Logger
	pages     config.PagesConfig
	challenge config.ChallengeConfig
}

func NewContentService(
	contentAPI ContentAPI,
	progress ProgressReader,
	logger *slog.Logger,
	pages config.PagesConfig,
	challenge config.ChallengeConfig,
) *ContentService {
	return &ContentService{
		api:       contentAPI,
		progress:  progress,
		logger:    logger.With("component", "service"),
		pages:     pages,
		challenge: challenge,
	}
}

type ListOptions struct {
	TagSlug  string
	Featured bool
	Page     int
}

// ArticleList builds one page of the article listing. The article fetch is
// primary: its failure aborts the page. The reference sets backing the joins
// degrade to empty on failure; unresolved references render as omitted.
func (s *ContentService) ArticleList(ctx context.Context, opts ListOptions) (*ArticlePage, error) {
	var (
		articles   []domain.Article
		authors    []domain.Author
		tags       []domain.Tag
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.api.ListArticles(gctx, api.ArticleListOptions{
			TagSlug:  opts.TagSlug,
			Featured: opts.Featured,
			Ordering: "published_at",
		})
		if err != nil {
			return fmt.Errorf("fetch articles: %w", err)
		}
		articles = fetched
		return nil
	})
	g.Go(func() error {
		authors = s.fetchAuthorsRef(gctx)
		return nil
	})
	g.Go(func() error {
		tags = s.fetchTagsRef(gctx)
		return nil
	})
	g.Go(func() error {
		categories = s.fetchCategoriesRef(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := s.buildItems(articles, authors, tags, categories)

	pager := paginate.New(items, s.pages.ArticlePageSize)
	pager.SetPage(opts.Page)

	return &ArticlePage{
		Items:      pager.Page(),
		Page:       pager.Current(),
		TotalPages: pager.TotalPages(),
		TotalItems: pager.TotalItems(),
	}, nil
}

// ArticleDetail fetches one article plus its enrichment. The article itself
// is primary; comments and reactions degrade to zero values per item.
func (s *ContentService) ArticleDetail(ctx context.Context, slug string) (*ArticleDetail, error) {
	var (
		article    *domain.Article
		comments   []domain.Comment
		reactions  domain.ReactionSummary
		authors    []domain.Author
		tags       []domain.Tag
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.api.GetArticle(gctx, slug)
		if err != nil {
			return fmt.Errorf("fetch article: %w", err)
		}
		article = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.api.ListComments(gctx, slug)
		if err != nil {
			s.logger.Warn("comments fetch failed", "slug", slug, "error", err)
			return nil
		}
		comments = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.api.GetReactions(gctx, slug)
		if err != nil {
			s.logger.Warn("reactions fetch failed", "slug", slug, "error", err)
			return nil
		}
		reactions = fetched
		return nil
	})
	g.Go(func() error {
		authors = s.fetchAuthorsRef(gctx)
		return nil
	})
	g.Go(func() error {
		tags = s.fetchTagsRef(gctx)
		return nil
	})
	g.Go(func() error {
		categories = s.fetchCategoriesRef(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := s.buildItems([]domain.Article{*article}, authors, tags, categories)

	return &ArticleDetail{
		ArticleItem:  items[0],
		CommentCount: derive.CommentCount(comments),
		Reactions:    reactions,
		Comments:     comments,
	}, nil
}

// EnrichArticles runs the per-article secondary fetches concurrently. A
// failure for one article degrades that article's entry to zero values and
// never affects the others.
func (s *ContentService) EnrichArticles(ctx context.Context, articles []domain.Article) []Enrichment {
	enrichments := make([]Enrichment, len(articles))

	var wg sync.WaitGroup
	for i, article := range articles {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()

			comments, err := s.api.ListComments(ctx, slug)
			if err != nil {
				s.logger.Warn("comments fetch failed", "slug", slug, "error", err)
			} else {
				enrichments[i].CommentCount = derive.CommentCount(comments)
			}

			reactions, err := s.api.GetReactions(ctx, slug)
			if err != nil {
				s.logger.Warn("reactions fetch failed", "slug", slug, "error", err)
			} else {
				enrichments[i].Reactions = reactions
			}
		}(i, article.Slug)
	}
	wg.Wait()

	return enrichments
}

type AuthorListOptions struct {
	Featured   bool
	CountPosts bool
	Page       int
}

// AuthorDirectory builds one page of the author directory.
func (s *ContentService) AuthorDirectory(ctx context.Context, opts AuthorListOptions) (*AuthorPage, error) {
	authors, err := s.api.ListAuthors(ctx, api.AuthorListOptions{
		Featured:   opts.Featured,
		CountPosts: opts.CountPosts,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch authors: %w", err)
	}

	pager := paginate.New(authors, s.pages.AuthorPageSize)
	pager.SetPage(opts.Page)

	return &AuthorPage{
		Items:      pager.Page(),
		Page:       pager.Current(),
		TotalPages: pager.TotalPages(),
		TotalItems: pager.TotalItems(),
	}, nil
}

// AuthorProfile fetches an author's public profile and derives the
// engagement totals and tier from the author's articles.
func (s *ContentService) AuthorProfile(ctx context.Context, slug string) (*AuthorProfile, error) {
	var (
		author     *domain.Author
		tags       []domain.Tag
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.api.GetAuthorPublic(gctx, slug)
		if err != nil {
			return fmt.Errorf("fetch author: %w", err)
		}
		author = fetched
		return nil
	})
	g.Go(func() error {
		tags = s.fetchTagsRef(gctx)
		return nil
	})
	g.Go(func() error {
		categories = s.fetchCategoriesRef(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := derive.EngagementTotals(author.Articles)

	return &AuthorProfile{
		Author:   *author,
		Totals:   totals,
		Tier:     derive.AuthorTier(totals.Views),
		Articles: s.buildItems(author.Articles, []domain.Author{*author}, tags, categories),
	}, nil
}

// ChallengeBoard lists the challenge articles by day and merges in the
// locally tracked completion state.
func (s *ContentService) ChallengeBoard(ctx context.Context) (*ChallengeBoard, error) {
	articles, err := s.api.ListArticles(ctx, api.ArticleListOptions{
		TagSlug:  s.challenge.TagSlug,
		Ordering: "published_at",
	})
	if err != nil {
		return nil, fmt.Errorf("fetch challenge articles: %w", err)
	}

	items := s.buildItems(articles, nil, nil, nil)

	byDay := make(map[int]*ArticleItem, len(items))
	for i := range items {
		item := &items[i]
		if _, taken := byDay[item.DayNumber]; !taken {
			byDay[item.DayNumber] = item
		}
	}

	data := s.progress.Data()

	board := &ChallengeBoard{
		CompletedCount: len(data.CompletedDays),
		Streak:         data.Streak,
		TotalDays:      s.challenge.TotalDays,
	}
	for day := 1; day <= s.challenge.TotalDays; day++ {
		entry := ChallengeDay{
			Day:       day,
			Article:   byDay[day],
			Completed: data.IsCompleted(day),
		}
		if ms, ok := data.LastRead[day]; ok {
			readAt := time.UnixMilli(ms)
			entry.LastRead = &readAt
		}
		board.Days = append(board.Days, entry)
	}

	return board, nil
}

func (s *ContentService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.api.ListTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}
	return testimonials, nil
}

// UpdateArticle validates required fields locally, then submits. A failed
// submission leaves the caller's draft untouched for retry.
func (s *ContentService) UpdateArticle(ctx context.Context, slug string, update domain.ArticleUpdate) (*domain.Article, error) {
	var missing []string
	if update.Title == "" {
		missing = append(missing, "title")
	}
	if update.Content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	article, err := s.api.UpdateArticle(ctx, slug, update)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

func (s *ContentService) buildItems(
	articles []domain.Article,
	authors []domain.Author,
	tags []domain.Tag,
	categories []domain.Category,
) []ArticleItem {
	items := make([]ArticleItem, 0, len(articles))
	for _, article := range articles {
		item := ArticleItem{
			Article:   article,
			ReadTime:  derive.ReadTime(article.Content),
			DayNumber: derive.DayNumber(article.Title, article.Slug, article.ID),
			Snippet:   derive.Snippet(article.Content),
			Tags:      join.Tags(tags, article.TagIDs),
		}
		if author, ok := join.AuthorByID(authors, article.AuthorID); ok {
			item.Author = &author
		}
		if article.CategoryID != nil {
			if category, ok := join.CategoryByID(categories, *article.CategoryID); ok {
				item.Category = &category
			}
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Article.PublishedAt.Before(items[j].Article.PublishedAt)
	})

	return items
}

// Reference-set fetches back the joins; a failure degrades to an empty set
// rather than aborting the page.

func (s *ContentService) fetchAuthorsRef(ctx context.Context) []domain.Author {
	authors, err := s.api.ListAuthors(ctx, api.AuthorListOptions{})
	if err != nil {
		s.logger.Warn("authors fetch failed", "error", err)
		return nil
	}
	return authors
}

func (s *ContentService) fetchTagsRef(ctx context.Context) []domain.Tag {
	tags, err := s.api.ListTags(ctx)
	if err != nil {
		s.logger.Warn("tags fetch failed", "error", err)
		return nil
	}
	return tags
}

func (s *ContentService) fetchCategoriesRef(ctx context.Context) []domain.Category {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		s.logger.Warn("categories fetch failed", "error", err)
		return nil
	}
	return categories
}
