package model

import "github.com/google/uuid"

// EventType identifies the notification catalog entry a message belongs to.
type EventType string

const (
	EventDocumentSubmitted   EventType = "document-submitted"
	EventEvaluationCompleted EventType = "evaluation-completed"
	EventStatusChanged       EventType = "status-changed"
	EventEvaluatorAssigned   EventType = "evaluator-assigned"
	EventDeadlineReminder    EventType = "deadline-reminder"
)

// Channel is the delivery medium of a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Recipient is a single addressee of a notification.
type Recipient struct {
	Address string `json:"address"`
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
}

// NotificationEvent is the wire message published to the notification queues.
// The attempt counter is the only field the delivery pipeline mutates.
type NotificationEvent struct {
	EventType       EventType         `json:"eventType"`
	Channel         Channel           `json:"channel"`
	Recipients      []Recipient       `json:"recipients"`
	BusinessContext map[string]string `json:"businessContext"`
	CorrelationID   uuid.UUID         `json:"correlationId"`
	Attempt         int               `json:"attempt"`
}

// Delivery status values tracked for a notification event.
const (
	NotificationPending   = "pending"
	NotificationDelivered = "delivered"
	NotificationDead      = "dead-lettered"
	NotificationDropped   = "dropped"
)
