package jobs

import (
	"database/sql"

	"libtrack-backend/internal/config"
	"libtrack-backend/internal/logger"
)

// JobRunner coordinates all scheduled jobs. Jobs are reporting-only: the
// checkout lifecycle is driven entirely by request handlers, never from here.
type JobRunner struct {
	db     *sql.DB
	config *config.Config
}

func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		config: cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueCheckouts()
}
