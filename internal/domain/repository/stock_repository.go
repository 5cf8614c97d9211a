package repository

import (
	"time"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
)

// StockOverviewRow resultado crudo del listado de stock con los datos de la
// agencia y del artículo ya unidos. Lo produce la DB; el use case lo
// convierte en DTO (incluida la bandera de alerta).
type StockOverviewRow struct {
	ArticleID     string
	ArticleName   string
	Category      string
	BranchID      string
	BranchName    string
	BranchCode    string
	BranchAddress string
	Quantity      int
	MinStock      int
	UpdatedAt     time.Time
}

// StockRepository define el puerto para consultar/actualizar el stock por
// artículo+agencia. Las mutaciones solo ocurren dentro de transacciones del
// ledger para garantizar consistencia.
type StockRepository interface {
	Get(articleID, branchID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve nil si la pareja (artículo, agencia) no existe.
	GetForUpdate(articleID, branchID string) (*entity.StockEntry, error)
	// UpdateQuantity fija la nueva cantidad y sella derniere_maj.
	UpdateQuantity(articleID, branchID string, quantity int) error
	Insert(entry *entity.StockEntry) error
	ListOverview() ([]StockOverviewRow, error)
}
