package cron

import (
	"GrowAGram/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	mediaCleanupJob *job.MediaCleanupJob
	strainSyncJob   *job.StrainSyncJob
}

func NewCronManager(mediaCleanupJob *job.MediaCleanupJob, strainSyncJob *job.StrainSyncJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		mediaCleanupJob: mediaCleanupJob,
		strainSyncJob:   strainSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 0 * * * *", s.mediaCleanupJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 30 3 * * *", s.strainSyncJob); err != nil {
		return err
	}
	return nil
}

func jobName(j cron.Job) string {
	switch j.(type) {
	case *job.MediaCleanupJob:
		return "media_cleanup"
	case *job.StrainSyncJob:
		return "strain_sync"
	default:
		return "unknown"
	}
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
