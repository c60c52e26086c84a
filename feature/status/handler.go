package status

import (
	"content-indexer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for status endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/health", h.HandleHealth)
	group.Get("/runs", h.HandleRuns)
}

// HandleHealth reports liveness.
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /status/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleRuns lists recent sync runs.
// @Summary Recent sync runs
// @Description Lists the most recent sync runs recorded in the history store.
// @Tags status
// @Produce json
// @Param limit query int false "Maximum number of runs" default(50)
// @Success 200 {array} history.SyncRun "Recent runs"
// @Failure 503 {object} map[string]string "History not configured"
// @Router /status/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if !h.service.HasHistory() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "sync history is not configured",
		})
	}

	runs, err := h.service.RecentRuns(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		l.Error("Failed to list sync runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}
