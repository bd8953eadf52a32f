package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightquote/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionSweeperJob evicts stale quote selections from the session store.
// Abandoned flows leave their selection behind; the sweeper reclaims those
// slots once they outlive the configured TTL.
type SessionSweeperJob struct {
	store    ports.QuoteSessionStore
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweeperJob creates a sweeper for the given store. The schedule is
// a standard five-field cron expression; maxAge is the selection TTL.
func NewSessionSweeperJob(
	store ports.QuoteSessionStore,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:    store,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "session_sweeper_job"),
	}
}

// Start schedules the sweeper.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		removed := j.store.Sweep(j.maxAge)
		if removed > 0 {
			j.logger.InfoContext(ctx, "Swept stale quote selections", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started",
		"schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop stops the sweeper.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}
