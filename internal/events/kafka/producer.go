package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CloudEvent is the envelope every published message is wrapped in,
// following the CloudEvents 1.0 attribute names.
type CloudEvent struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	SpecVersion string    `json:"specversion"`
	Type        string    `json:"type"`
	Time        time.Time `json:"time"`

	Subject     string `json:"subject,omitempty"`
	ContentType string `json:"contenttype"`

	Data json.RawMessage `json:"data"`
}

// EventProducer publishes domain events.
type EventProducer interface {
	PublishEvent(ctx context.Context, eventType string, subject string, data interface{}) error
	Close() error
}

// KafkaEventProducer implements EventProducer on top of a kafka-go writer.
type KafkaEventProducer struct {
	writer      *kafka.Writer
	sourceName  string
	eventsTopic string
	mailTopic   string
	logger      *zap.Logger
}

func NewKafkaEventProducer(brokers []string, sourceName, eventsTopic, mailTopic string, logger *zap.Logger) *KafkaEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}

	if eventsTopic == "" {
		eventsTopic = TopicEvents
	}
	if mailTopic == "" {
		mailTopic = TopicMail
	}

	return &KafkaEventProducer{
		writer:      writer,
		sourceName:  sourceName,
		eventsTopic: eventsTopic,
		mailTopic:   mailTopic,
		logger:      logger,
	}
}

// PublishEvent wraps data in a CloudEvent and writes it to the topic derived
// from the event type.
func (p *KafkaEventProducer) PublishEvent(ctx context.Context, eventType string, subject string, data interface{}) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	event := CloudEvent{
		ID:          uuid.New().String(),
		Source:      p.sourceName,
		SpecVersion: "1.0",
		Type:        eventType,
		Time:        time.Now().UTC(),
		Subject:     subject,
		ContentType: "application/json",
		Data:        dataBytes,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cloud event: %w", err)
	}

	topic := topicForEventType(eventType, p.eventsTopic, p.mailTopic)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(subject),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "ce_id", Value: []byte(event.ID)},
			{Key: "ce_source", Value: []byte(event.Source)},
			{Key: "ce_specversion", Value: []byte(event.SpecVersion)},
			{Key: "ce_type", Value: []byte(event.Type)},
			{Key: "ce_time", Value: []byte(event.Time.Format(time.RFC3339))},
			{Key: "ce_contenttype", Value: []byte(event.ContentType)},
		},
	})
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err))
		return fmt.Errorf("write kafka message: %w", err)
	}

	p.logger.Info("event published",
		zap.String("topic", topic),
		zap.String("event_type", eventType),
		zap.String("subject", subject))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaEventProducer) Close() error {
	return p.writer.Close()
}
