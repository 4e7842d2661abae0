package job

import (
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/service"
	"context"
	log "log/slog"
	"time"
)

// MediaCleanupJob 删除上传后 24 小时仍未被引用的图片
type MediaCleanupJob struct {
	mediaSvc service.MediaService
	maxAge   time.Duration
}

func NewMediaCleanupJob(mediaSvc service.MediaService) *MediaCleanupJob {
	return &MediaCleanupJob{
		mediaSvc: mediaSvc,
		maxAge:   24 * time.Hour,
	}
}

func (s *MediaCleanupJob) Run() {
	runExclusive("media_cleanup", consts.MediaCleanupLock, 30*time.Minute, func(ctx context.Context) {
		log.InfoContext(ctx, "start media cleanup job")
		count, err := s.mediaSvc.CleanupExpired(ctx, s.maxAge)
		if err != nil {
			log.ErrorContext(ctx, "failed to cleanup expired media", "err", err)
			return
		}
		if count > 0 {
			log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", count)
		}
	})
}
