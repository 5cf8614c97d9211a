package history

import (
	"context"

	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// Límites del listado de historial.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// UseCase proyección read-only del historial de movimientos. Las escrituras
// las hace exclusivamente el ledger; aquí solo hay consulta acotada.
type UseCase struct {
	movRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movRepo repository.MovementRepository) *UseCase {
	return &UseCase{movRepo: movRepo}
}

// List devuelve como máximo limit movimientos, el más reciente primero.
// limit <= 0 aplica DefaultLimit; se recorta a MaxLimit.
func (uc *UseCase) List(ctx context.Context, limit int) ([]repository.MovementOverviewRow, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return uc.movRepo.ListRecent(limit)
}
