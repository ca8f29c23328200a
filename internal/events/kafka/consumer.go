package kafka

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageHandler processes a single consumed message. A returned error is
// logged; the message is still committed so one poison message cannot stall
// the whole partition.
type MessageHandler func(ctx context.Context, key string, value []byte, headers map[string]string) error

// Consumer reads messages from a topic within a consumer group and feeds
// them to a handler.
type Consumer struct {
	reader  *kafka.Reader
	logger  *zap.Logger
	handler MessageHandler
}

func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger, handler MessageHandler) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{
		reader:  reader,
		logger:  logger,
		handler: handler,
	}
}

// Start consumes messages until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		c.logger.Info("starting kafka consumer", zap.String("topic", c.reader.Config().Topic))
		for {
			message, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					c.logger.Info("stopping kafka consumer")
					return
				}
				c.logger.Error("failed to read kafka message", zap.Error(err))
				continue
			}

			headers := make(map[string]string, len(message.Headers))
			for _, header := range message.Headers {
				headers[header.Key] = string(header.Value)
			}

			if err := c.handler(ctx, string(message.Key), message.Value, headers); err != nil {
				c.logger.Error("failed to handle kafka message",
					zap.String("key", string(message.Key)),
					zap.String("event_type", headers["ce_type"]),
					zap.Error(err))
				continue
			}

			c.logger.Debug("kafka message processed",
				zap.String("key", string(message.Key)),
				zap.String("event_type", headers["ce_type"]))
		}
	}()
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
