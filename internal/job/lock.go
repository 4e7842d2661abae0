package job

import (
	"GrowAGram/internal/pkg/logger"
	"GrowAGram/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// runExclusive 多实例部署时同一任务只在一个实例上执行
func runExclusive(name, lockKey string, ttl time.Duration, fn func(ctx context.Context)) {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	ok, err := redis.TryLock(ctx, lockKey, traceID, ttl, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire job lock failed", "job", name, "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "job is running on another instance, skip", "job", name)
		return
	}
	defer redis.UnLock(ctx, lockKey, traceID)

	fn(ctx)
}
