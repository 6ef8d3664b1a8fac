// cmd/service/commands.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/api"
	"portfolio-site/internal/config"
	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/github"
	"portfolio-site/internal/portfolio"
	"portfolio-site/internal/syncer"
	"portfolio-site/migrations"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site backend: project listing, admin entry and GitHub import",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newSyncCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled GitHub sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <github-username>",
		Short: "Import the repositories of a GitHub user once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.TrimSpace(args[0])
			if handle == "" {
				return custom_errors.ErrHandleRequired
			}
			return runSync(cmd.Context(), handle, cmd)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if err := migrations.Up(cfg.DBURL); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}
			logger.Info("Database migrations applied successfully")
			return nil
		},
	}
}

// app holds the components shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	dbpool    *pgxpool.Pool
	syncer    *syncer.Syncer
	portfolio *portfolio.Service
}

// setup initializes the structured logger and loads configuration.
func setup() (*config.Config, *slog.Logger, error) {
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully")
	return cfg, logger, nil
}

// newApp connects to the database, applies migrations and wires the components.
func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := setup()
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.New(ctx, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established")

	if err := migrations.Up(cfg.DBURL); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully")

	ghClient, err := github.NewClient(cfg.GithubToken, cfg.GithubAPIURL, logger)
	if err != nil {
		dbpool.Close()
		return nil, err
	}

	q := database.New(dbpool)
	return &app{
		cfg:       cfg,
		logger:    logger,
		dbpool:    dbpool,
		syncer:    syncer.NewSyncer(q, ghClient, logger, cfg.SyncHandles, cfg.SyncInterval),
		portfolio: portfolio.NewService(q, logger),
	}, nil
}

func runServe(parent context.Context) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.dbpool.Close()

	srv := &http.Server{
		Addr:    a.cfg.HTTPAddr,
		Handler: api.NewRouter(a.portfolio, a.syncer, a.cfg.AdminToken, a.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.syncer.Start(gctx)
		return nil
	})
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutdown signal received. Exiting.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runSync(parent context.Context, handle string, cmd *cobra.Command) error {
	a, err := newApp(parent)
	if err != nil {
		return err
	}
	defer a.dbpool.Close()

	count, err := a.syncer.SyncUser(parent, handle)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects from GitHub\n", count)
	return nil
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
