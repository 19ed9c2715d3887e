package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/events"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

// Storage notes returned with the intake response.
const (
	noteSavedToDatabase  = "Saved to database"
	noteSavedToTemporary = "Saved to temporary storage (set up the database for persistence)"
)

// SubmitInput is the intake payload after boundary parsing.
type SubmitInput struct {
	Name        string
	Email       string
	Description string
	Budget      string
	Timeline    string
}

// InquiryService coordinates intake, management and the inquiry
// lifecycle. Events are published synchronously, so notification
// sends complete before the originating request does.
type InquiryService struct {
	store      repository.InquiryStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewInquiryService builds the service.
func NewInquiryService(store repository.InquiryStore, dispatcher events.Dispatcher, logger *zap.Logger) *InquiryService {
	return &InquiryService{store: store, dispatcher: dispatcher, logger: logger}
}

// Submit validates and persists a new inquiry, then triggers the
// owner and confirmation notifications. The returned note names the
// storage path used.
func (s *InquiryService) Submit(ctx context.Context, input SubmitInput) (*domain.Inquiry, string, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return nil, "", apperrors.NewValidationError("name, email, and description are required", nil)
	}

	inquiry := &domain.Inquiry{
		Name:        input.Name,
		Email:       input.Email,
		Description: input.Description,
		Budget:      input.Budget,
		Timeline:    input.Timeline,
		Status:      domain.InquiryStatusNew,
		Replies:     []domain.Reply{},
	}
	if err := s.store.Create(ctx, inquiry); err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventInquiryCreated, inquiry.ID,
		events.InquiryCreatedPayload{Inquiry: *inquiry})

	note := noteSavedToDatabase
	if !s.store.Persistent() {
		note = noteSavedToTemporary
	}
	return inquiry, note, nil
}

// List returns all inquiries, newest first.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return inquiries, nil
}

// Get returns a single inquiry by id.
func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	inquiry, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return inquiry, nil
}

// Reply appends an admin message, moves the inquiry to replied and
// emails the submitter. Fails before any mutation when the id does
// not resolve or the inquiry is already closed.
func (s *InquiryService) Reply(ctx context.Context, id, adminMessage string) (*domain.Inquiry, error) {
	if strings.TrimSpace(adminMessage) == "" {
		return nil, apperrors.NewValidationError("adminMessage is required", nil)
	}

	inquiry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.Status == domain.InquiryStatusClosed {
		return nil, apperrors.NewConflict("inquiry is closed", map[string]any{"id": id})
	}

	inquiry.Replies = append(inquiry.Replies, domain.Reply{
		AdminMessage: adminMessage,
		Timestamp:    time.Now().UTC(),
	})
	if inquiry.Status == domain.InquiryStatusNew {
		inquiry.Status = domain.InquiryStatusReplied
	}
	if err := s.store.Update(ctx, inquiry); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventInquiryReplied, inquiry.ID,
		events.InquiryRepliedPayload{Inquiry: *inquiry, AdminMessage: adminMessage})

	return inquiry, nil
}

// Close moves an inquiry to its terminal state. Closing twice is a
// conflict; the transition is forward-only.
func (s *InquiryService) Close(ctx context.Context, id string) (*domain.Inquiry, error) {
	inquiry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inquiry.Status.CanTransitionTo(domain.InquiryStatusClosed) {
		return nil, apperrors.NewConflict("inquiry already closed", map[string]any{"id": id})
	}

	inquiry.Status = domain.InquiryStatusClosed
	if err := s.store.Update(ctx, inquiry); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventInquiryClosed, inquiry.ID,
		events.InquiryClosedPayload{Inquiry: *inquiry})

	return inquiry, nil
}

func (s *InquiryService) publish(ctx context.Context, eventType events.EventType, inquiryID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		InquiryID: inquiryID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
