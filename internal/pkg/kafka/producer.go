package kafka

import (
	"GrowAGram/internal/api/config"
	"GrowAGram/internal/pkg/mongo"
	"context"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// NotificationProducer 将通知事件写入 Kafka
type NotificationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewNotificationProducer(cfg *config.Config) (*NotificationProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return newNotificationProducer(producer, cfg.KafkaNotifyConsumer.Topic), nil
}

func newNotificationProducer(producer sarama.SyncProducer, topic string) *NotificationProducer {
	return &NotificationProducer{producer: producer, topic: topic}
}

// Publish 以接收者ID为 key，保证同一用户的通知有序
func (s *NotificationProducer) Publish(ctx context.Context, n *mongo.NotificationModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}
	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(n.ReceiverID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrapf(err, "send notification to topic %s", s.topic)
	}
	return nil
}

func (s *NotificationProducer) Close() error {
	return s.producer.Close()
}
