package events

import (
	"time"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInquiryCreated EventType = "inquiry_created"
	EventInquiryReplied EventType = "inquiry_replied"
	EventInquiryClosed  EventType = "inquiry_closed"
)

// Event represents a domain event emitted by services. Handlers run
// synchronously before the originating request completes.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	InquiryID string      `json:"inquiry_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InquiryCreatedPayload carries the freshly persisted inquiry.
type InquiryCreatedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
}

// InquiryRepliedPayload carries the inquiry after the reply was
// appended, plus the message the admin wrote.
type InquiryRepliedPayload struct {
	Inquiry      domain.Inquiry `json:"inquiry"`
	AdminMessage string         `json:"admin_message"`
}

// InquiryClosedPayload carries the closed inquiry.
type InquiryClosedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
}
