package dto

import (
	"time"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
)

// SubmitInquiryRequest is the public intake payload.
type SubmitInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
}

// SubmitInquiryResponse reports the created id and which storage path
// was used.
type SubmitInquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
	Note      string `json:"note"`
}

// ReplyRequest is the admin reply payload.
type ReplyRequest struct {
	AdminMessage string `json:"adminMessage"`
}

// StatusResponse is the generic success envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReplyEntry is one admin message in an inquiry thread.
type ReplyEntry struct {
	AdminMessage string    `json:"adminMessage"`
	Timestamp    time.Time `json:"timestamp"`
}

// InquiryResponse is the full inquiry representation for management
// endpoints.
type InquiryResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Description string               `json:"description"`
	Budget      string               `json:"budget,omitempty"`
	Timeline    string               `json:"timeline,omitempty"`
	Status      domain.InquiryStatus `json:"status"`
	Replies     []ReplyEntry         `json:"replies"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// HealthResponse reports service and storage status.
type HealthResponse struct {
	Status         string    `json:"status"`
	Storage        string    `json:"storage"`
	InquiriesCount int       `json:"inquiriesCount"`
	Timestamp      time.Time `json:"timestamp"`
}
