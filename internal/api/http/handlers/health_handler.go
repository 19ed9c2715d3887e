package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/dto"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/repository"
)

// HealthHandler reports service status and which storage path is
// active.
type HealthHandler struct {
	store  repository.InquiryStore
	logger *zap.Logger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(store repository.InquiryStore, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Status handles GET /api/health.
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	count, err := h.store.Count(c.Context())
	if err != nil {
		// health stays up even when the store is struggling
		h.logger.Warn("inquiry count unavailable", zap.Error(err))
		count = 0
	}

	return c.JSON(dto.HealthResponse{
		Status:         "ok",
		Storage:        h.store.Name(),
		InquiriesCount: count,
		Timestamp:      time.Now().UTC(),
	})
}
