package kafka

import "github.com/talentforge/jobboard-service/internal/domain/models"

// Default topic names; overridable through config.
const (
	TopicEvents = "jobboard.events"
	TopicMail   = "jobboard.mail"
)

// topicForEventType routes event types to their topic. Digest events go to
// the mail topic so the mail worker consumes only what it has to send.
func topicForEventType(eventType, eventsTopic, mailTopic string) string {
	switch eventType {
	case models.EventApplicationDigest:
		return mailTopic
	default:
		return eventsTopic
	}
}
