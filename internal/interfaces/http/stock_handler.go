package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/catalog"
	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/application/ledger"
	"github.com/Abirbissou/stock-IT/internal/domain"
)

// StockHandler maneja la consulta y el ajuste de stock (protegido).
type StockHandler struct {
	ledgerUC  *ledger.UseCase
	catalogUC *catalog.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledgerUC *ledger.UseCase, catalogUC *catalog.UseCase) *StockHandler {
	return &StockHandler{ledgerUC: ledgerUC, catalogUC: catalogUC}
}

// List devuelve la vista completa de stock con la bandera de alerta.
// GET /api/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Adjust aplica un delta al stock de (artículo, agencia) y devuelve las
// cantidades antes/después.
// POST /api/stock/update
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := validateBody(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	res, err := h.ledgerUC.Adjust(c.Context(), ledger.AdjustInput{
		ArticleID: in.ArticleID,
		BranchID:  in.BranchID,
		Delta:     in.Quantity,
		Actor:     GetUserEmail(c),
		Comment:   in.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock non trouvé"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuffisant"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.JSON(dto.AdjustStockResponse{
		Success:     true,
		StockBefore: res.Before,
		StockAfter:  res.After,
		Message:     fmt.Sprintf("Stock mis a jour : %d -> %d", res.Before, res.After),
	})
}
