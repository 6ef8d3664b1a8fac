// internal/syncer/syncer.go
package syncer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/database"
	"portfolio-site/internal/model"
)

const (
	// Number of scheduled handles synced in parallel
	concurrency = 3

	// Repositories with more stars than this are featured.
	featuredStarThreshold = 2
)

// Topics that mark a repository as featured regardless of stars.
var featuredTopics = []string{"portfolio", "featured"}

// RepositorySource lists the repositories of a GitHub user.
type RepositorySource interface {
	ListUserRepositories(ctx context.Context, handle string) ([]model.RemoteRepository, error)
}

// Syncer imports GitHub repositories as portfolio projects.
type Syncer struct {
	q            database.Querier
	source       RepositorySource
	logger       *slog.Logger
	handles      []string
	syncInterval time.Duration
}

// NewSyncer creates a new Syncer instance.
// handles and interval configure the scheduled sync run by Start.
func NewSyncer(q database.Querier, source RepositorySource, logger *slog.Logger, handles []string, interval time.Duration) *Syncer {
	return &Syncer{
		q:            q,
		source:       source,
		logger:       logger,
		handles:      handles,
		syncInterval: interval,
	}
}

// SyncUser imports the repositories of handle and returns how many passed selection.
// The caller is responsible for rejecting an empty handle.
// Upserts run one at a time; the first failure stops the run and earlier writes are kept.
func (s *Syncer) SyncUser(ctx context.Context, handle string) (int, error) {
	logger := s.logger.With("handle", handle)
	logger.Info("Syncing GitHub projects")

	repos, err := s.source.ListUserRepositories(ctx, handle)
	if err != nil {
		return 0, err
	}

	selected := selectRepositories(repos)
	logger.Info("Selected repositories", "fetched", len(repos), "selected", len(selected))

	for _, repo := range selected {
		if _, err := s.q.UpsertProject(ctx, toUpsertParams(repo)); err != nil {
			logger.Error("Failed to upsert project", "github_id", repo.GithubID, "error", err)
			return 0, err
		}
		logger.Debug("Upserted project", "github_id", repo.GithubID, "name", repo.Name)
	}

	logger.Info("GitHub projects synced", "count", len(selected))
	return len(selected), nil
}

// Start runs the scheduled sync for the configured handles until ctx is done.
// It returns immediately when no handles or no interval are configured.
func (s *Syncer) Start(ctx context.Context) {
	if len(s.handles) == 0 || s.syncInterval <= 0 {
		s.logger.Info("Scheduled sync disabled")
		return
	}

	s.logger.Info("Starting syncer", "interval", s.syncInterval.String(), "handles", s.handles, "concurrency", concurrency)
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	s.runSyncCycle(ctx) // Initial sync

	for {
		select {
		case <-ticker.C:
			s.runSyncCycle(ctx)
		case <-ctx.Done():
			s.logger.Info("Syncer shutting down", "reason", ctx.Err())
			return
		}
	}
}

// runSyncCycle syncs every configured handle; failures are logged, never fatal.
func (s *Syncer) runSyncCycle(ctx context.Context) {
	s.logger.Info("Starting new sync cycle")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, handle := range s.handles {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			_, err := s.SyncUser(gctx, handle)
			if err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("Failed to sync GitHub user", "handle", handle, "error", err)
			}
			return nil
		})
	}

	_ = g.Wait()
	s.logger.Info("Sync cycle finished")
}

// selectRepositories keeps non-fork repositories that have a description and a primary language.
func selectRepositories(repos []model.RemoteRepository) []model.RemoteRepository {
	var selected []model.RemoteRepository
	for _, r := range repos {
		if r.Fork {
			continue
		}
		if r.Description == nil || *r.Description == "" {
			continue
		}
		if r.Language == nil {
			continue
		}
		selected = append(selected, r)
	}
	return selected
}

func toUpsertParams(r model.RemoteRepository) database.UpsertProjectParams {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return database.UpsertProjectParams{
		GithubID:        r.GithubID,
		Name:            r.Name,
		FullName:        r.FullName,
		Description:     database.Text(r.Description),
		HtmlUrl:         r.HTMLURL,
		Homepage:        database.Text(r.Homepage),
		DemoUrl:         database.Text(r.Homepage),
		Language:        database.Text(r.Language),
		TechStack:       techStack(r.Language, topics),
		Topics:          topics,
		StargazersCount: int32(r.StarsCount),
		ForksCount:      int32(r.ForksCount),
		PushedAt:        database.Timestamptz(r.PushedAt),
		Featured:        isFeatured(r.StarsCount, topics),
	}
}

// techStack is the language followed by the topics, without empty entries.
func techStack(language *string, topics []string) []string {
	stack := make([]string, 0, len(topics)+1)
	if language != nil && *language != "" {
		stack = append(stack, *language)
	}
	for _, t := range topics {
		if t != "" {
			stack = append(stack, t)
		}
	}
	return stack
}

func isFeatured(stars int, topics []string) bool {
	if stars > featuredStarThreshold {
		return true
	}
	for _, t := range featuredTopics {
		if slices.Contains(topics, t) {
			return true
		}
	}
	return false
}
