package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"devhub/internal/api"
	"devhub/internal/config"
	"devhub/internal/draft"
	"devhub/internal/progress"
	"devhub/internal/service"
	"devhub/internal/session"
	"devhub/internal/storage/sqlite"
)

// app holds the wired-up dependencies shared by all commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *sqlite.Store
	client   *api.Client
	sessions *session.Manager
	tracker  *progress.Tracker
	content  *service.ContentService
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		a          app
	)

	root := &cobra.Command{
		Use:           "devhub",
		Short:         "Browse the DevHub education platform from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), configPath)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		newArticlesCmd(&a),
		newArticleCmd(&a),
		newAuthorsCmd(&a),
		newAuthorCmd(&a),
		newChallengeCmd(&a),
		newTestimonialsCmd(&a),
		newLoginCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newEditCmd(&a),
	)

	return root
}

func (a *app) setup(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = setupLogger(cfg.LogLevel)

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath, err = defaultStorePath()
		if err != nil {
			return err
		}
	}
	a.store, err = sqlite.Open(storePath)
	if err != nil {
		return err
	}

	a.client = api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, a.logger)

	a.sessions = session.NewManager(a.client, a.store, a.logger)
	if _, err := a.sessions.Restore(ctx); err != nil {
		a.logger.Warn("session restore failed", "error", err)
	}

	a.tracker = progress.NewTracker(a.store, a.logger)
	if err := a.tracker.Load(ctx); err != nil {
		return err
	}

	a.content = service.NewContentService(a.client, a.tracker, a.logger, cfg.Pages, cfg.Challenge)
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing state store failed", "error", err)
		}
	}
}

func defaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".devhub")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state directory: %w", err)
	}
	return filepath.Join(dir, "state.db"), nil
}

func newArticlesCmd(a *app) *cobra.Command {
	var opts service.ListOptions

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.content.ArticleList(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, item := range page.Items {
				line := fmt.Sprintf("%-40s  %2d min read", item.Article.Title, item.ReadTime)
				if item.Author != nil {
					line += "  by " + item.Author.Name
				}
				fmt.Println(line)
				fmt.Println("   ", item.Snippet)
			}
			fmt.Printf("\npage %d of %d (%d articles)\n", page.Page, page.TotalPages, page.TotalItems)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.TagSlug, "tag", "", "filter by tag slug")
	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "featured articles only")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")
	return cmd
}

func newArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "article <slug>",
		Short: "Show one article with comments and reactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.content.ArticleDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(detail.Article.Title)
			if detail.Author != nil {
				fmt.Println("by", detail.Author.Name)
			}
			fmt.Printf("%d min read", detail.ReadTime)
			if detail.DayNumber > 0 {
				fmt.Printf("  ·  day %d", detail.DayNumber)
			}
			fmt.Printf("\n\n%s\n", detail.Article.Content)
			fmt.Printf("\n%d comments  ·  %d reactions\n", detail.CommentCount, detail.Reactions.Total())
			for _, comment := range detail.Comments {
				fmt.Printf("- %s: %s\n", comment.Author, comment.Body)
				for _, reply := range comment.Replies {
					fmt.Printf("    - %s: %s\n", reply.Author, reply.Body)
				}
			}
			return nil
		},
	}
}

func newAuthorsCmd(a *app) *cobra.Command {
	var opts service.AuthorListOptions

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List authors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.content.AuthorDirectory(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, author := range page.Items {
				line := fmt.Sprintf("%-30s  %s", author.Name, author.Slug)
				if author.PostCount != nil {
					line += fmt.Sprintf("  (%d posts)", *author.PostCount)
				}
				fmt.Println(line)
			}
			fmt.Printf("\npage %d of %d (%d authors)\n", page.Page, page.TotalPages, page.TotalItems)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "featured authors only")
	cmd.Flags().BoolVar(&opts.CountPosts, "count-posts", false, "include post counts")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number")
	return cmd
}

func newAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "author <slug>",
		Short: "Show an author's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.content.AuthorProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s  [%s]\n", profile.Author.Name, profile.Tier)
			if profile.Author.Bio != nil {
				fmt.Println(*profile.Author.Bio)
			}
			fmt.Printf("%d views  ·  %d comments  ·  %d reactions\n\n",
				profile.Totals.Views, profile.Totals.Comments, profile.Totals.Reactions)
			for _, item := range profile.Articles {
				fmt.Printf("%-40s  %2d min read\n", item.Article.Title, item.ReadTime)
			}
			return nil
		},
	}
}

func newChallengeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Track the cloud challenge",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the challenge board with local progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := a.content.ChallengeBoard(cmd.Context())
			if err != nil {
				return err
			}

			for _, day := range board.Days {
				mark := " "
				if day.Completed {
					mark = "x"
				}
				title := "(no article yet)"
				if day.Article != nil {
					title = day.Article.Article.Title
				}
				fmt.Printf("[%s] day %2d  %s\n", mark, day.Day, title)
			}
			fmt.Printf("\n%d/%d completed  ·  streak %d\n", board.CompletedCount, board.TotalDays, board.Streak)
			return nil
		},
	}

	mark := &cobra.Command{
		Use:   "mark <day>",
		Short: "Mark a challenge day as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			if err := a.tracker.MarkDayCompleted(cmd.Context(), day); err != nil {
				return err
			}
			fmt.Printf("day %d completed, streak %d\n", day, a.tracker.Data().Streak)
			return nil
		},
	}

	unmark := &cobra.Command{
		Use:   "unmark <day>",
		Short: "Unmark a completed challenge day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			return a.tracker.UnmarkDayCompleted(cmd.Context(), day)
		},
	}

	cmd.AddCommand(status, mark, unmark)
	return cmd
}

func newTestimonialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "testimonials",
		Short: "List testimonials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			testimonials, err := a.content.Testimonials(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range testimonials {
				fmt.Printf("%s: %q\n", t.Name, t.Content)
			}
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	var googleToken string

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in with username/password or a Google ID token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if googleToken != "" {
				sess, err := a.sessions.LoginWithGoogle(ctx, googleToken)
				if err != nil {
					return err
				}
				fmt.Println("logged in as", sess.User.Username)
				return nil
			}

			if len(args) == 0 {
				return errors.New("username required (or pass --google-token)")
			}
			fmt.Print("password: ")
			password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			sess, err := a.sessions.Login(ctx, args[0], strings.TrimSpace(password))
			if err != nil {
				return err
			}
			fmt.Println("logged in as", sess.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&googleToken, "google-token", "", "Google ID token")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.sessions.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in author profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			author, err := a.client.Me(ctx)
			if err != nil {
				return a.sessions.Check(ctx, err)
			}
			fmt.Printf("%s (%s)\n", author.Name, author.Slug)
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var (
		title       string
		excerpt     string
		contentFile string
		watch       bool
		submit      bool
	)

	cmd := &cobra.Command{
		Use:   "edit <slug>",
		Short: "Edit an article; the draft is kept locally until submitted",
		Long: `Edit an article. Changes accumulate in a local draft that survives
interruption. With --watch the content file is re-saved every few seconds
until interrupted; with --submit the draft is pushed to the platform and
cleared on success.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			slug := args[0]

			d, found, err := draft.Load(ctx, a.store)
			if err != nil {
				return err
			}
			if !found || d.Slug != slug {
				d = draft.New(slug)
			}

			if title != "" {
				d.Title = title
			}
			if excerpt != "" {
				d.Excerpt = excerpt
			}
			if contentFile != "" {
				content, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("read content file: %w", err)
				}
				d.Content = string(content)
			}

			if d, err = draft.Save(ctx, a.store, d); err != nil {
				return err
			}

			if watch {
				if contentFile == "" {
					return errors.New("--watch requires --content-file")
				}
				fmt.Println("autosaving draft, press ctrl-c to stop")
				snapshot := func() draft.Draft {
					if content, err := os.ReadFile(contentFile); err == nil {
						d.Content = string(content)
					}
					return d
				}
				saver := draft.NewAutosaver(a.store, snapshot, draft.DefaultInterval, a.logger)
				if err := saver.Run(ctx); !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}

			if !submit {
				fmt.Println("draft saved")
				return nil
			}

			article, err := a.content.UpdateArticle(ctx, slug, d.Update())
			if err != nil {
				return a.sessions.Check(ctx, err)
			}
			if err := draft.Clear(ctx, a.store); err != nil {
				a.logger.Warn("clearing draft failed", "error", err)
			}
			fmt.Println("published", article.Slug)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "article title")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "article excerpt")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "file holding the article body")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep autosaving the content file until interrupted")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit the draft to the platform")
	return cmd
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
