package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// UseCase es el único mutador de las cantidades de stock. Cada mutación
// bloquea la fila (SELECT FOR UPDATE), verifica que la cantidad resultante no
// sea negativa y escribe una entrada de historial en la misma transacción.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// AdjustInput entrada para un ajuste directo de stock. Delta positivo es
// entrada, negativo salida; cero se rechaza.
type AdjustInput struct {
	ArticleID string
	BranchID  string
	Delta     int
	Actor     string
	Comment   string
}

// AdjustResult cantidades antes y después del ajuste, para los mensajes de
// confirmación al llamador.
type AdjustResult struct {
	Before int
	After  int
}

// Adjust aplica un delta al stock de (artículo, agencia) dentro de una
// transacción: bloqueo de fila, chequeo de no-negatividad, update de la
// cantidad e inserción del movimiento (entree o sortie según el signo).
// Errores: domain.ErrNotFound si la pareja no existe,
// domain.ErrInsufficientStock si el resultado sería negativo. En ambos casos
// no queda ninguna mutación parcial.
func (uc *UseCase) Adjust(ctx context.Context, in AdjustInput) (AdjustResult, error) {
	if in.ArticleID == "" || in.BranchID == "" || in.Delta == 0 {
		return AdjustResult{}, domain.ErrInvalidInput
	}

	var res AdjustResult
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		_ repository.RequestRepository,
	) error {
		r, err := applyDelta(stockRepo, movRepo, deltaParams{
			articleID: in.ArticleID,
			branchID:  in.BranchID,
			delta:     in.Delta,
			actor:     in.Actor,
			comment:   in.Comment,
		})
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return AdjustResult{}, err
	}
	return res, nil
}

// FulfillInTx descuenta el stock de una demande usando los repositorios
// proporcionados (misma transacción del caller) y registra el movimiento con
// type demande y el ID de la demande. Lo invoca el workflow de demandes
// dentro de su propia transacción de validación.
func (uc *UseCase) FulfillInTx(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	req *entity.Request,
	actor string,
) (AdjustResult, error) {
	return applyDelta(stockRepo, movRepo, deltaParams{
		articleID: req.ArticleID,
		branchID:  req.BranchID,
		delta:     -req.Quantity,
		actor:     actor,
		requestID: req.ID,
		comment:   req.Comment,
	})
}

type deltaParams struct {
	articleID string
	branchID  string
	delta     int
	actor     string
	requestID string
	comment   string
}

// applyDelta es la secuencia read-check-write compartida por Adjust y
// FulfillInTx. Debe ejecutarse con repositorios atados a una transacción.
func applyDelta(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	p deltaParams,
) (AdjustResult, error) {
	stock, err := stockRepo.GetForUpdate(p.articleID, p.branchID)
	if err != nil {
		return AdjustResult{}, err
	}
	if stock == nil {
		return AdjustResult{}, domain.ErrNotFound
	}

	before := stock.Quantity
	after := before + p.delta
	if after < 0 {
		return AdjustResult{}, domain.ErrInsufficientStock
	}

	if err := stockRepo.UpdateQuantity(p.articleID, p.branchID, after); err != nil {
		return AdjustResult{}, err
	}

	movType := entity.MovementTypeInbound
	if p.delta < 0 {
		movType = entity.MovementTypeOutbound
	}
	if p.requestID != "" {
		movType = entity.MovementTypeFulfillment
	}
	qty := p.delta
	if qty < 0 {
		qty = -qty
	}
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ArticleID:   p.articleID,
		BranchID:    p.branchID,
		Type:        movType,
		Quantity:    qty,
		StockBefore: before,
		StockAfter:  after,
		RequestID:   p.requestID,
		Actor:       p.actor,
		Comment:     p.comment,
		CreatedAt:   time.Now(),
	}
	if err := movRepo.Create(mov); err != nil {
		return AdjustResult{}, err
	}
	return AdjustResult{Before: before, After: after}, nil
}
