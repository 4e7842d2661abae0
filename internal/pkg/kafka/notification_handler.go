package kafka

import (
	"GrowAGram/internal/pkg/mongo"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// NotificationHandler 消费通知事件并落库到 MongoDB
type NotificationHandler struct {
	repo mongo.NotificationRepo
}

func NewNotificationHandler(repo mongo.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (s *NotificationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer setup")
	return nil
}

func (s *NotificationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer cleanup")
	return nil
}

func (s *NotificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.handle)
}

// handle 格式错误的消息直接丢弃，存储失败返回错误以便重试
func (s *NotificationHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var n mongo.NotificationModel
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		log.Warn("drop malformed notification", "offset", msg.Offset, "err", err)
		return nil
	}
	if n.ReceiverID == 0 || n.Event == "" {
		log.Warn("drop incomplete notification", "offset", msg.Offset)
		return nil
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = msg.Timestamp
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now().UTC()
		}
	}
	if err := s.repo.CreateNotification(ctx, &n); err != nil {
		return errors.Wrap(err, "store notification")
	}
	return nil
}
