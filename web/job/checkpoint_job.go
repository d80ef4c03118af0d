package job

import (
	"ofs-panel/database"
	"ofs-panel/logger"
)

// CheckpointJob flushes the SQLite WAL into the main database file so a crash
// loses at most one interval of writes.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run is the cron.Job entry point.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
