package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abirbissou/stock-IT/internal/application/ledger"
	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// UseCase gestiona el ciclo de vida de las demandes de equipo: creación en
// en_attente y validación con descuento de stock. Es el único escritor del
// statut de una demande.
type UseCase struct {
	txRunner    ledger.TxRunner
	ledgerUC    *ledger.UseCase
	requestRepo repository.RequestRepository
	branchRepo  repository.BranchRepository
	articleRepo repository.ArticleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner ledger.TxRunner,
	ledgerUC *ledger.UseCase,
	requestRepo repository.RequestRepository,
	branchRepo repository.BranchRepository,
	articleRepo repository.ArticleRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		ledgerUC:    ledgerUC,
		requestRepo: requestRepo,
		branchRepo:  branchRepo,
		articleRepo: articleRepo,
	}
}

// CreateInput entrada para crear una demande.
type CreateInput struct {
	Ticket      string
	BranchID    string
	ArticleID   string
	ClientName  string
	ClientEmail string
	Quantity    int
	Comment     string
}

// Create valida que la agencia y el artículo existan y persiste la demande en
// en_attente. No toca el stock: la reserva solo ocurre al validar.
// La cantidad debe ser estrictamente positiva.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (string, error) {
	if in.Ticket == "" || in.ClientName == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return "", domain.ErrInvalidInput
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return "", err
	}
	if branch == nil {
		return "", domain.ErrNotFound
	}
	article, err := uc.articleRepo.GetByID(in.ArticleID)
	if err != nil {
		return "", err
	}
	if article == nil {
		return "", domain.ErrNotFound
	}

	req := &entity.Request{
		ID:          uuid.New().String(),
		Ticket:      in.Ticket,
		BranchID:    in.BranchID,
		ArticleID:   in.ArticleID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		Quantity:    in.Quantity,
		Status:      entity.RequestStatusPending,
		Comment:     in.Comment,
		CreatedAt:   time.Now(),
	}
	if err := uc.requestRepo.Create(req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// Validate cumple una demande como máximo una vez. Toda la secuencia —
// bloqueo de la fila de la demande, chequeo de statut, bloqueo y descuento
// del stock, movimiento de historial y marca validee — ocurre en una sola
// transacción: una segunda validación concurrente espera el lock, observa
// statut != en_attente y falla limpiamente sin doble descuento.
// Errores: domain.ErrNotFound, domain.ErrAlreadyProcessed,
// domain.ErrInsufficientStock.
func (uc *UseCase) Validate(ctx context.Context, requestID, validator string) (ledger.AdjustResult, error) {
	if requestID == "" {
		return ledger.AdjustResult{}, domain.ErrInvalidInput
	}
	if validator == "" {
		validator = "admin"
	}

	var res ledger.AdjustResult
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		requestRepo repository.RequestRepository,
	) error {
		req, err := requestRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.RequestStatusPending {
			return domain.ErrAlreadyProcessed
		}

		r, err := uc.ledgerUC.FulfillInTx(stockRepo, movRepo, req, validator)
		if err != nil {
			return err
		}
		if err := requestRepo.MarkValidated(req.ID, validator, time.Now()); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return ledger.AdjustResult{}, err
	}
	return res, nil
}

// List devuelve todas las demandes, la más reciente primero.
func (uc *UseCase) List(ctx context.Context) ([]repository.RequestOverviewRow, error) {
	return uc.requestRepo.ListOverview()
}
