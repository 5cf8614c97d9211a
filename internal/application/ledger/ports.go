package ledger

import (
	"context"

	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: la
// actualización de stock y su entrada de historial se confirman o se
// revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		requestRepo repository.RequestRepository,
	) error) error
}
