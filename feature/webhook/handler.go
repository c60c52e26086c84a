package webhook

import (
	"content-indexer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for content webhooks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/webhooks")
	group.Post("/content", h.HandleContentChange)
}

// contentChangeRequest is the webhook payload.
type contentChangeRequest struct {
	ContentType string `json:"contentType"`
	EntryID     string `json:"entryId"`
	Index       string `json:"index"`
}

// HandleContentChange syncs one changed entry into the index.
// @Summary Content change webhook
// @Description Triggers a single-entry sync for the given content type and entry id.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body contentChangeRequest true "Changed entry"
// @Success 200 {object} map[string]string "Sync completed"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Sync failed"
// @Router /webhooks/content [post]
func (h *Handler) HandleContentChange(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req contentChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid payload",
		})
	}
	if req.ContentType == "" || req.EntryID == "" || req.Index == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "contentType, entryId and index are required",
		})
	}

	l.Info("Content change received",
		zap.String("content_type", req.ContentType),
		zap.String("entry_id", req.EntryID),
		zap.String("index", req.Index),
	)

	if err := h.service.SyncEntry(c.Context(), req.ContentType, req.EntryID, req.Index); err != nil {
		l.Error("Single-entry sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "synced"})
}
