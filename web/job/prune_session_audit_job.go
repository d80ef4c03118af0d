// Package job contains the panel's scheduled background jobs.
package job

import (
	"time"

	"ofs-panel/logger"
	"ofs-panel/web/service"
)

// PruneSessionAuditJob removes sign-in audit rows older than the configured
// retention window. Runs daily.
type PruneSessionAuditJob struct {
	trackService   service.SessionTrackService
	settingService service.SettingService
}

func NewPruneSessionAuditJob() *PruneSessionAuditJob {
	return new(PruneSessionAuditJob)
}

// Run is the cron.Job entry point.
func (j *PruneSessionAuditJob) Run() {
	keepDays, err := j.settingService.GetSessionAuditKeepDays()
	if err != nil {
		logger.Warning("prune session audit job err:", err)
		return
	}
	if keepDays <= 0 {
		return
	}

	removed, err := j.trackService.Prune(time.Duration(keepDays) * 24 * time.Hour)
	if err != nil {
		logger.Warning("prune session audit job err:", err)
		return
	}
	if removed > 0 {
		logger.Infof("pruned %d session audit records", removed)
	}
}
