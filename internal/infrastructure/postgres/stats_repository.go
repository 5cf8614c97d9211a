package postgres

import (
	"context"
	"fmt"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only para el panel de control.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountCatalog cuenta agencias y artículos activos.
func (r *StatsRepo) CountCatalog(ctx context.Context) (branches, articles int, err error) {
	if err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM agences WHERE actif`).Scan(&branches); err != nil {
		return 0, 0, fmt.Errorf("count branches: %w", err)
	}
	if err = r.q.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE actif`).Scan(&articles); err != nil {
		return 0, 0, fmt.Errorf("count articles: %w", err)
	}
	return branches, articles, nil
}

// CountRequests cuenta demandes totales y en en_attente.
func (r *StatsRepo) CountRequests(ctx context.Context) (total, pending int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE statut = $1)
		FROM demandes`
	if err = r.q.QueryRow(ctx, query, entity.RequestStatusPending).Scan(&total, &pending); err != nil {
		return 0, 0, fmt.Errorf("count requests: %w", err)
	}
	return total, pending, nil
}

// StockTotals cuenta filas en alerta (quantite < stock_min) y suma las
// unidades totales en stock. COALESCE devuelve cero con la tabla vacía.
func (r *StatsRepo) StockTotals(ctx context.Context) (alerts, items int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE quantite < stock_min), COALESCE(SUM(quantite), 0)
		FROM stock`
	if err = r.q.QueryRow(ctx, query).Scan(&alerts, &items); err != nil {
		return 0, 0, fmt.Errorf("stock totals: %w", err)
	}
	return alerts, items, nil
}
