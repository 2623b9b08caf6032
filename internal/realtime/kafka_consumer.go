package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LocationHandler processes one inbound location update.
type LocationHandler func(ctx context.Context, in InboundLocation) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConsumer feeds the location stream into a handler. Rejected or
// malformed updates are logged and committed; the sender resends if needed.
type KafkaConsumer struct {
	reader  messageReader
	handler LocationHandler
	backoff time.Duration
	log     *zap.Logger
}

func NewKafkaConsumer(brokers []string, topic, groupID string, handler LocationHandler, log *zap.Logger) (*KafkaConsumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	logger := log.With(zap.String("component", "kafka-consumer"), zap.String("topic", topic))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       1 << 20,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
		Logger:         kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:    kafka.LoggerFunc(logger.Sugar().Errorf),
	})

	return newKafkaConsumer(reader, handler, logger), nil
}

func newKafkaConsumer(reader messageReader, handler LocationHandler, log *zap.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:  reader,
		handler: handler,
		backoff: time.Second,
		log:     log,
	}
}

// Run consumes until ctx is cancelled.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("Failed to fetch message", zap.Error(err))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff):
			}
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.log.Warn("Failed to commit offset", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

func (c *KafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var in InboundLocation
	if err := json.Unmarshal(msg.Value, &in); err != nil {
		c.log.Warn("Dropping malformed location update",
			zap.Error(err),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
		return
	}

	if err := c.handler(ctx, in); err != nil {
		c.log.Warn("Location update rejected",
			zap.Error(err),
			zap.Int64("booking_id", in.BookingID),
			zap.Int64("user_id", in.UserID),
			zap.String("role", in.Role),
		)
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
