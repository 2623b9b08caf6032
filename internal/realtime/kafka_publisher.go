package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cab-dispatch/pkg/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	HeaderEventID   = "event-id"
	HeaderTopic     = "location-topic"
	HeaderEventType = "event-type"

	eventTypeLocationPush = "location.push"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher mirrors every push onto one Kafka topic keyed by the
// recipient topic name, so a consumer sees one recipient's pushes in order.
type KafkaPublisher struct {
	writer messageWriter
	log    *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	logger := log.With(zap.String("component", "kafka-publisher"), zap.String("topic", topic))

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  1,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("Location push not delivered", zap.Int("count", len(messages)), zap.Error(err))
			}
		},
		Logger:      kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(logger.Sugar().Errorf),
	}

	return newKafkaPublisher(writer, logger), nil
}

func newKafkaPublisher(writer messageWriter, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, msg LocationMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal location message: %w", err)
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(topic),
		Value: value,
		Time:  msg.Timestamp,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(utils.GenerateUUIDString())},
			{Key: HeaderEventType, Value: []byte(eventTypeLocationPush)},
			{Key: HeaderTopic, Value: []byte(topic)},
		},
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("publish to kafka %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
