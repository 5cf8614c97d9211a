package catalog

import (
	"context"

	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// UseCase lecturas del catálogo: agencias y artículos activos, y la vista de
// stock con la bandera de alerta. Datos de referencia cuasi-inmutables.
type UseCase struct {
	branchRepo  repository.BranchRepository
	articleRepo repository.ArticleRepository
	stockRepo   repository.StockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	branchRepo repository.BranchRepository,
	articleRepo repository.ArticleRepository,
	stockRepo repository.StockRepository,
) *UseCase {
	return &UseCase{branchRepo: branchRepo, articleRepo: articleRepo, stockRepo: stockRepo}
}

// ListBranches devuelve las agencias activas ordenadas por nombre.
func (uc *UseCase) ListBranches(ctx context.Context) (*dto.BranchListResponse, error) {
	list, err := uc.branchRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BranchResponse{
			ID:      b.ID,
			Name:    b.Name,
			Code:    b.Code,
			Address: b.Address,
		})
	}
	return &dto.BranchListResponse{Branches: out}, nil
}

// ListArticles devuelve los artículos activos ordenados por categoría y nombre.
func (uc *UseCase) ListArticles(ctx context.Context) (*dto.ArticleListResponse, error) {
	list, err := uc.articleRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ArticleResponse{
			ID:          a.ID,
			Name:        a.Name,
			Category:    a.Category,
			Reference:   a.Reference,
			Description: a.Description,
		})
	}
	return &dto.ArticleListResponse{Articles: out}, nil
}

// ListStock devuelve la vista completa de stock (agencias y artículos activos)
// con alerte = quantite < stock_min.
func (uc *UseCase) ListStock(ctx context.Context) (*dto.StockListResponse, error) {
	rows, err := uc.stockRepo.ListOverview()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRowResponse{
			BranchID:      r.BranchID,
			BranchName:    r.BranchName,
			BranchCode:    r.BranchCode,
			BranchAddress: r.BranchAddress,
			ArticleID:     r.ArticleID,
			ArticleName:   r.ArticleName,
			Category:      r.Category,
			Quantity:      r.Quantity,
			MinStock:      r.MinStock,
			UpdatedAt:     r.UpdatedAt,
			Alert:         r.Quantity < r.MinStock,
		})
	}
	return &dto.StockListResponse{Stock: out}, nil
}
