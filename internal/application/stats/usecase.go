// Package stats contiene el caso de uso del panel de control: contadores
// globales de catálogo, demandes y alertas de stock.
package stats

import (
	"context"
	"fmt"

	"github.com/Abirbissou/stock-IT/internal/application/dto"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// UseCase genera el resumen del panel.
//
// Fuente de datos: StatsRepository (consultas read-only). Las cifras pueden ir
// ligeramente por detrás de las escrituras en vuelo; para visualización basta.
type UseCase struct {
	statsRepo repository.StatsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(statsRepo repository.StatsRepository) *UseCase {
	return &UseCase{statsRepo: statsRepo}
}

// Summary construye el StatsResponse.
//
// Tres llamadas en paralelo:
//  1. CountCatalog   → agencias y artículos activos
//  2. CountRequests  → demandes totales y en espera
//  3. StockTotals    → alertas (quantite < stock_min) y unidades totales
func (uc *UseCase) Summary(ctx context.Context) (*dto.StatsResponse, error) {
	type catalogResult struct {
		branches, articles int
		err                error
	}
	type requestsResult struct {
		total, pending int
		err            error
	}
	type stockResult struct {
		alerts, items int
		err           error
	}

	catalogCh := make(chan catalogResult, 1)
	requestsCh := make(chan requestsResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		b, a, err := uc.statsRepo.CountCatalog(ctx)
		catalogCh <- catalogResult{b, a, err}
	}()
	go func() {
		t, p, err := uc.statsRepo.CountRequests(ctx)
		requestsCh <- requestsResult{t, p, err}
	}()
	go func() {
		al, it, err := uc.statsRepo.StockTotals(ctx)
		stockCh <- stockResult{al, it, err}
	}()

	catalog := <-catalogCh
	requests := <-requestsCh
	stock := <-stockCh

	if catalog.err != nil {
		return nil, fmt.Errorf("stats: catálogo: %w", catalog.err)
	}
	if requests.err != nil {
		return nil, fmt.Errorf("stats: demandes: %w", requests.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("stats: stock: %w", stock.err)
	}

	return &dto.StatsResponse{
		TotalBranches:   catalog.branches,
		TotalArticles:   catalog.articles,
		TotalRequests:   requests.total,
		PendingRequests: requests.pending,
		StockAlerts:     stock.alerts,
		TotalItems:      stock.items,
	}, nil
}
