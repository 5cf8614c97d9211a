package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/application/request"
	"github.com/Abirbissou/stock-IT/internal/domain"
)

// RequestHandler maneja el ciclo de vida de las demandes (protegido).
type RequestHandler struct {
	uc *request.UseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *request.UseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// List devuelve todas las demandes, la más reciente primero.
// GET /api/demandes
func (h *RequestHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RequestRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RequestRowResponse{
			ID:          r.ID,
			Ticket:      r.Ticket,
			BranchName:  r.BranchName,
			ArticleName: r.ArticleName,
			ClientName:  r.ClientName,
			ClientEmail: r.ClientEmail,
			Quantity:    r.Quantity,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			ValidatedAt: r.ValidatedAt,
			ValidatedBy: r.ValidatedBy,
			Comment:     r.Comment,
		})
	}
	return c.JSON(dto.RequestListResponse{Requests: out})
}

// Create registra una demande nueva en en_attente. No toca el stock.
// POST /api/demandes/create
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := validateBody(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	id, err := h.uc.Create(c.Context(), request.CreateInput{
		Ticket:      in.Ticket,
		BranchID:    in.BranchID,
		ArticleID:   in.ArticleID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		Quantity:    in.Quantity,
		Comment:     in.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agence ou article non trouvé"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateRequestResponse{
		Success:   true,
		RequestID: id,
		Message:   "Demande creee avec succes",
	})
}

// Validate cumple una demande: descuenta el stock y la marca validee, todo en
// una transacción. Una demande ya tratada devuelve 409.
// POST /api/demandes/:id/valider
func (h *RequestHandler) Validate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}

	res, err := h.uc.Validate(c.Context(), id, GetUserEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "demande non trouvée"})
		case errors.Is(err, domain.ErrAlreadyProcessed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROCESSED", Message: "demande déjà traitée"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuffisant"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.JSON(dto.ValidateRequestResponse{
		Success:     true,
		StockBefore: res.Before,
		StockAfter:  res.After,
		Message:     fmt.Sprintf("Demande validee et stock mis a jour : %d -> %d", res.Before, res.After),
	})
}
