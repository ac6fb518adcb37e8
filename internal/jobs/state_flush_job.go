package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StateFlusher retries writing in-memory state that could not be saved.
type StateFlusher interface {
	Flush()
	Dirty() bool
}

// StateFlushJob periodically retries persisting state after a failed save.
// While the data file is up to date the job does nothing.
type StateFlushJob struct {
	flusher StateFlusher
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStateFlushJob creates a job that retries failed state saves every 30 seconds.
func NewStateFlushJob(flusher StateFlusher, logger *slog.Logger) *StateFlushJob {
	return &StateFlushJob{
		flusher: flusher,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "state_flush_job"),
	}
}

// Start begins the state flush job.
func (j *StateFlushJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		if !j.flusher.Dirty() {
			return
		}

		j.flusher.Flush()
		if !j.flusher.Dirty() {
			j.logger.InfoContext(context.Background(), "Pending state changes flushed to disk")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "State flush job started (running every 30 seconds)")
	return nil
}

// Stop stops the state flush job.
func (j *StateFlushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "State flush job stopped")
}
