package repository

import "context"

// StatsResult contadores agregados para el panel de control.
type StatsResult struct {
	TotalBranches   int
	TotalArticles   int
	TotalRequests   int
	PendingRequests int
	StockAlerts     int // filas con quantite < stock_min
	TotalItems      int // suma de todas las cantidades en stock
}

// StatsRepository define las consultas de lectura para las estadísticas.
// Las implementaciones son read-only.
type StatsRepository interface {
	CountCatalog(ctx context.Context) (branches, articles int, err error)
	CountRequests(ctx context.Context) (total, pending int, err error)
	StockTotals(ctx context.Context) (alerts, items int, err error)
}
