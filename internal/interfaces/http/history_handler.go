package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/application/history"
)

// HistoryHandler maneja la consulta del historial de movimientos.
type HistoryHandler struct {
	uc *history.UseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.UseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List devuelve el historial acotado, el movimiento más reciente primero.
// GET /api/historique?limit=N
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", history.DefaultLimit)
	rows, err := h.uc.List(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementRowResponse{
			ID:          r.ID,
			BranchName:  r.BranchName,
			ArticleName: r.ArticleName,
			Type:        r.Type,
			Quantity:    r.Quantity,
			StockBefore: r.StockBefore,
			StockAfter:  r.StockAfter,
			Actor:       r.Actor,
			Comment:     r.Comment,
			CreatedAt:   r.CreatedAt,
		})
	}
	return c.JSON(dto.MovementListResponse{History: out})
}
