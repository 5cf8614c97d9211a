package repository

import (
	"time"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
)

// MovementOverviewRow resultado crudo del historial con los nombres de
// agencia y artículo ya unidos.
type MovementOverviewRow struct {
	ID          string
	BranchName  string
	ArticleName string
	Type        string
	Quantity    int
	StockBefore int
	StockAfter  int
	Actor       string
	Comment     string
	CreatedAt   time.Time
}

// MovementRepository define el puerto de persistencia del historial de
// movimientos. Append-only: solo Create y lecturas.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListRecent devuelve como máximo limit movimientos, el más reciente primero.
	ListRecent(limit int) ([]MovementOverviewRow, error)
	// ListByRequest devuelve los movimientos ligados a una demande.
	ListByRequest(requestID string) ([]*entity.Movement, error)
}
