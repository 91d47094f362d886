// Package job contains scheduled maintenance jobs run by the web server's
// cron scheduler.
package job

import (
	"lead-ui/database"
	"lead-ui/logger"
	"lead-ui/util/common"
)

// CheckpointJob flushes the sqlite WAL back into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")

	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job failed:", err)
	}
}
