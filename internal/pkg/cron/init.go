package cron

import log "log/slog"

// InitCron 注册清理与同步任务后启动引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	for _, e := range mgr.engine.Entries() {
		log.Info("cron job scheduled", "entry", e.ID, "job", jobName(e.Job), "next", e.Next)
	}
	return nil
}
