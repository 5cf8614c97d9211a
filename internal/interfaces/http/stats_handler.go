package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/application/stats"
)

// StatsHandler maneja el resumen del panel de control.
type StatsHandler struct {
	uc *stats.UseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.UseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary devuelve los contadores globales.
// GET /api/stats
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
