package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/domain/models"
	"github.com/talentforge/jobboard-service/internal/events/kafka"
	"github.com/talentforge/jobboard-service/internal/infrastructure/mail"
)

// MailWorker turns digest events into outgoing email. Delivery is
// best-effort: a failed send is logged and the message is committed anyway,
// so mail trouble never blocks the application flow that produced the event.
type MailWorker struct {
	sender mail.Sender
	logger *zap.Logger
}

func NewMailWorker(sender mail.Sender, logger *zap.Logger) *MailWorker {
	return &MailWorker{
		sender: sender,
		logger: logger,
	}
}

// Handler returns the message handler to attach to the mail-topic consumer.
func (w *MailWorker) Handler() kafka.MessageHandler {
	return func(ctx context.Context, key string, value []byte, headers map[string]string) error {
		eventType := headers["ce_type"]
		if eventType != models.EventApplicationDigest {
			w.logger.Warn("ignoring unexpected event on mail topic", zap.String("event_type", eventType))
			return nil
		}

		var envelope kafka.CloudEvent
		if err := json.Unmarshal(value, &envelope); err != nil {
			return fmt.Errorf("unmarshal cloud event: %w", err)
		}

		var event models.ApplicationDigestEvent
		if err := json.Unmarshal(envelope.Data, &event); err != nil {
			return fmt.Errorf("unmarshal digest event: %w", err)
		}

		if err := w.sendDigest(ctx, event); err != nil {
			w.logger.Error("failed to send digest email",
				zap.String("job_id", event.JobID.String()),
				zap.String("employer_email", event.EmployerEmail),
				zap.Error(err))
		}
		return nil
	}
}

func (w *MailWorker) sendDigest(ctx context.Context, event models.ApplicationDigestEvent) error {
	subject, body, err := mail.RenderDigest(event)
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	if err := w.sender.Send(ctx, event.EmployerEmail, subject, body); err != nil {
		return err
	}

	w.logger.Info("digest email sent",
		zap.String("job_id", event.JobID.String()),
		zap.String("employer_email", event.EmployerEmail),
		zap.Int("applicants", len(event.Applicants)))
	return nil
}
