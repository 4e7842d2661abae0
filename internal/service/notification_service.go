package service

import (
	"GrowAGram/internal/pkg/mongo"
	"GrowAGram/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"time"
)

type NotificationService interface {
	List(ctx context.Context, userID uint64, page, pageSize int) ([]*mongo.NotificationModel, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID uint64, id string) error
	MarkAllRead(ctx context.Context, userID uint64) error
}

type NotificationServiceImpl struct {
	repo mongo.NotificationRepo
}

func NewNotificationService(repo mongo.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{repo: repo}
}

func (s *NotificationServiceImpl) List(ctx context.Context, userID uint64, page, pageSize int) ([]*mongo.NotificationModel, error) {
	limit, offset := util.Paginate(page, pageSize)
	return s.repo.GetNotificationList(ctx, userID, int64(limit), int64(offset))
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID uint64, id string) error {
	err := s.repo.MarkAsRead(ctx, userID, id)
	if errors.Is(err, mongo.ErrNotificationNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// publish 通知发送失败不影响主流程
func publish(ctx context.Context, pub EventPublisher, n *mongo.NotificationModel) {
	if pub == nil || n.ReceiverID == 0 {
		return
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if err := pub.Publish(ctx, n); err != nil {
		log.WarnContext(ctx, "publish notification failed", "event", n.Event, "receiver_id", n.ReceiverID, "err", err)
	}
}
