package domain

import "time"

// InquiryStatus enumerates lifecycle states for inquiries.
// Transitions are forward-only: new -> replied -> closed.
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

// Reply is a single admin message appended to an inquiry thread.
type Reply struct {
	AdminMessage string    `json:"adminMessage"`
	Timestamp    time.Time `json:"timestamp"`
}

// Inquiry is the aggregate for contact/project requests submitted
// through the public site.
type Inquiry struct {
	ID          string
	Name        string
	Email       string
	Description string
	Budget      string
	Timeline    string
	Status      InquiryStatus
	Replies     []Reply
	CreatedAt   time.Time
}

// CanTransitionTo reports whether moving to the target status is a
// forward transition. Equal states are not a transition.
func (s InquiryStatus) CanTransitionTo(target InquiryStatus) bool {
	order := map[InquiryStatus]int{
		InquiryStatusNew:     0,
		InquiryStatusReplied: 1,
		InquiryStatusClosed:  2,
	}
	from, ok := order[s]
	if !ok {
		return false
	}
	to, ok := order[target]
	if !ok {
		return false
	}
	return to > from
}
