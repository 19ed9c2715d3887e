package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/dto"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/service"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

// InquiriesHandler serves the public intake endpoint and the
// token-protected management endpoints.
type InquiriesHandler struct {
	service *service.InquiryService
}

// NewInquiriesHandler constructs the handler.
func NewInquiriesHandler(inquiryService *service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{service: inquiryService}
}

// Submit handles POST /api/inquiries.
func (h *InquiriesHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	inquiry, note, err := h.service.Submit(c.Context(), service.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.SubmitInquiryResponse{
		Success:   true,
		Message:   "Inquiry submitted successfully",
		InquiryID: inquiry.ID,
		Note:      note,
	})
}

// List handles GET /api/inquiries.
func (h *InquiriesHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		items = append(items, inquiryResponse(&inquiries[i]))
	}
	return c.JSON(items)
}

// Get handles GET /api/inquiries/:id.
func (h *InquiriesHandler) Get(c *fiber.Ctx) error {
	inquiry, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(inquiryResponse(inquiry))
}

// Reply handles POST /api/inquiries/:id/reply.
func (h *InquiriesHandler) Reply(c *fiber.Ctx) error {
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.service.Reply(c.Context(), c.Params("id"), req.AdminMessage); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "Reply sent successfully"})
}

// Close handles POST /api/inquiries/:id/close.
func (h *InquiriesHandler) Close(c *fiber.Ctx) error {
	if _, err := h.service.Close(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Success: true, Message: "Inquiry closed"})
}

func inquiryResponse(inquiry *domain.Inquiry) dto.InquiryResponse {
	replies := make([]dto.ReplyEntry, 0, len(inquiry.Replies))
	for _, reply := range inquiry.Replies {
		replies = append(replies, dto.ReplyEntry{
			AdminMessage: reply.AdminMessage,
			Timestamp:    reply.Timestamp,
		})
	}
	return dto.InquiryResponse{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Description: inquiry.Description,
		Budget:      inquiry.Budget,
		Timeline:    inquiry.Timeline,
		Status:      inquiry.Status,
		Replies:     replies,
		CreatedAt:   inquiry.CreatedAt,
	}
}
