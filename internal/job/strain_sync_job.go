package job

import (
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/service"
	"context"
	log "log/slog"
	"time"
)

// StrainSyncJob 每日从 Seedfinder 刷新已入库的品种
type StrainSyncJob struct {
	strainSvc service.StrainService
}

func NewStrainSyncJob(strainSvc service.StrainService) *StrainSyncJob {
	return &StrainSyncJob{
		strainSvc: strainSvc,
	}
}

func (s *StrainSyncJob) Run() {
	runExclusive("strain_sync", consts.StrainSyncLock, time.Hour, func(ctx context.Context) {
		start := time.Now()
		count, err := s.strainSvc.SyncStrains(ctx)
		if err != nil {
			log.ErrorContext(ctx, "sync strains failed", "synced", count, "err", err)
			return
		}
		log.InfoContext(ctx, "sync strains success", "synced", count, "cost", time.Since(start))
	})
}
