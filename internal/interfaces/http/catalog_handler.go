package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/catalog"
	"github.com/Abirbissou/stock-IT/internal/application/dto"
)

// CatalogHandler maneja las lecturas del catálogo (agencias y artículos).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListBranches devuelve las agencias activas.
// GET /api/agences
func (h *CatalogHandler) ListBranches(c *fiber.Ctx) error {
	out, err := h.uc.ListBranches(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListArticles devuelve los artículos activos.
// GET /api/articles
func (h *CatalogHandler) ListArticles(c *fiber.Ctx) error {
	out, err := h.uc.ListArticles(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
