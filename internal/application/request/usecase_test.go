package request_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abirbissou/stock-IT/internal/application/ledger"
	"github.com/Abirbissou/stock-IT/internal/application/request"
	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct{ articleID, branchID string }

type fakeStore struct {
	mu        sync.Mutex
	branches  map[string]*entity.Branch
	articles  map[string]*entity.Article
	stock     map[stockKey]*entity.StockEntry
	requests  map[string]*entity.Request
	movements []*entity.Movement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		branches: make(map[string]*entity.Branch),
		articles: make(map[string]*entity.Article),
		stock:    make(map[stockKey]*entity.StockEntry),
		requests: make(map[string]*entity.Request),
	}
}

type fakeBranchRepo struct{ s *fakeStore }

func (r *fakeBranchRepo) Create(b *entity.Branch) error {
	r.s.branches[b.ID] = b
	return nil
}
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.s.branches[id], nil
}
func (r *fakeBranchRepo) GetByCode(code string) (*entity.Branch, error) {
	for _, b := range r.s.branches {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBranchRepo) ListActive() ([]*entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) SetActive(id string, active bool) error {
	return nil
}

type fakeArticleRepo struct{ s *fakeStore }

func (r *fakeArticleRepo) Create(a *entity.Article) error {
	r.s.articles[a.ID] = a
	return nil
}
func (r *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	return r.s.articles[id], nil
}
func (r *fakeArticleRepo) ListActive() ([]*entity.Article, error) { return nil, nil }
func (r *fakeArticleRepo) SetActive(id string, active bool) error {
	return nil
}

type fakeStockRepo struct{ s *fakeStore }

func (r *fakeStockRepo) Get(articleID, branchID string) (*entity.StockEntry, error) {
	return r.GetForUpdate(articleID, branchID)
}
func (r *fakeStockRepo) GetForUpdate(articleID, branchID string) (*entity.StockEntry, error) {
	e, ok := r.s.stock[stockKey{articleID, branchID}]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *fakeStockRepo) UpdateQuantity(articleID, branchID string, quantity int) error {
	e, ok := r.s.stock[stockKey{articleID, branchID}]
	if !ok {
		return domain.ErrNotFound
	}
	e.Quantity = quantity
	return nil
}
func (r *fakeStockRepo) Insert(entry *entity.StockEntry) error {
	r.s.stock[stockKey{entry.ArticleID, entry.BranchID}] = entry
	return nil
}
func (r *fakeStockRepo) ListOverview() ([]repository.StockOverviewRow, error) { return nil, nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListRecent(limit int) ([]repository.MovementOverviewRow, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByRequest(requestID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRequestRepo struct{ s *fakeStore }

func (r *fakeRequestRepo) Create(req *entity.Request) error {
	r.s.requests[req.ID] = req
	return nil
}
func (r *fakeRequestRepo) GetByID(id string) (*entity.Request, error) {
	return r.GetForUpdate(id)
}
func (r *fakeRequestRepo) GetForUpdate(id string) (*entity.Request, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}
func (r *fakeRequestRepo) MarkValidated(id, validator string, at time.Time) error {
	req, ok := r.s.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	if req.Status != entity.RequestStatusPending {
		return domain.ErrAlreadyProcessed
	}
	req.Status = entity.RequestStatusValidated
	req.ValidatedBy = validator
	req.ValidatedAt = &at
	return nil
}
func (r *fakeRequestRepo) ListOverview() ([]repository.RequestOverviewRow, error) {
	var out []repository.RequestOverviewRow
	for _, req := range r.s.requests {
		out = append(out, repository.RequestOverviewRow{
			ID:       req.ID,
			Ticket:   req.Ticket,
			Quantity: req.Quantity,
			Status:   req.Status,
		})
	}
	return out, nil
}
func (r *fakeRequestRepo) CountByStatus(status string) (int, error) {
	n := 0
	for _, req := range r.s.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner emula los bloqueos de fila serializando las transacciones con
// el mutex del store y deshaciendo las mutaciones si fn falla.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(
	ctx context.Context,
	fn func(repository.StockRepository, repository.MovementRepository, repository.RequestRepository) error,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stockBackup := make(map[stockKey]entity.StockEntry, len(r.s.stock))
	for k, v := range r.s.stock {
		stockBackup[k] = *v
	}
	reqBackup := make(map[string]entity.Request, len(r.s.requests))
	for k, v := range r.s.requests {
		reqBackup[k] = *v
	}
	movCount := len(r.s.movements)

	err := fn(&fakeStockRepo{r.s}, &fakeMovementRepo{r.s}, &fakeRequestRepo{r.s})
	if err != nil {
		for k, v := range stockBackup {
			cp := v
			r.s.stock[k] = &cp
		}
		for k, v := range reqBackup {
			cp := v
			r.s.requests[k] = &cp
		}
		r.s.movements = r.s.movements[:movCount]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	artID    = "11111111-1111-1111-1111-111111111111"
	branchID = "22222222-2222-2222-2222-222222222222"
)

func newTestUseCase(store *fakeStore) *request.UseCase {
	txRunner := &fakeTxRunner{store}
	ledgerUC := ledger.NewUseCase(txRunner)
	return request.NewUseCase(
		txRunner,
		ledgerUC,
		&fakeRequestRepo{store},
		&fakeBranchRepo{store},
		&fakeArticleRepo{store},
	)
}

func seedCatalog(store *fakeStore, qty int) {
	store.branches[branchID] = &entity.Branch{ID: branchID, Name: "Publicis Lyon", Code: "LYO", Active: true}
	store.articles[artID] = &entity.Article{ID: artID, Name: `Dell P2422H 24"`, Active: true}
	store.stock[stockKey{artID, branchID}] = &entity.StockEntry{
		ArticleID: artID,
		BranchID:  branchID,
		Quantity:  qty,
		MinStock:  5,
	}
}

func validInput() request.CreateInput {
	return request.CreateInput{
		Ticket:      "INC0012345",
		BranchID:    branchID,
		ArticleID:   artID,
		ClientName:  "Jean Dupont",
		ClientEmail: "jean.dupont@publicis.com",
		Quantity:    2,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear una demande la persiste en en_attente sin tocar el stock.
func TestCreate_PersisteEnAttenteSinTocarStock(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)

	id, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	req := store.requests[id]
	require.NotNil(t, req)
	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Equal(t, "INC0012345", req.Ticket)
	assert.Equal(t, 2, req.Quantity)
	assert.Nil(t, req.ValidatedAt)

	assert.Equal(t, 10, store.stock[stockKey{artID, branchID}].Quantity,
		"crear una demande no debe reservar ni descontar stock")
	assert.Empty(t, store.movements)
}

// Cantidad cero o negativa se rechaza en la creación.
func TestCreate_CantidadNoPositiva_Rechazada(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	ctx := context.Background()

	in := validInput()
	in.Quantity = 0
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Quantity = -3
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ticket o nombre del solicitante vacíos → ErrInvalidInput.
func TestCreate_CamposObligatorios(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	ctx := context.Background()

	in := validInput()
	in.Ticket = ""
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validInput()
	in.ClientName = ""
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Agencia o artículo inexistentes → ErrNotFound.
func TestCreate_ReferenciaInexistente(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	ctx := context.Background()

	in := validInput()
	in.BranchID = "33333333-3333-3333-3333-333333333333"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = validInput()
	in.ArticleID = "33333333-3333-3333-3333-333333333333"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

func createPending(t *testing.T, uc *request.UseCase, qty int) string {
	t.Helper()
	in := validInput()
	in.Quantity = qty
	id, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}

// Validación feliz: descuenta el stock, marca validee y registra un movimiento
// type demande ligado a la demande.
func TestValidate_DescuentaYMarcaValidee(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	id := createPending(t, uc, 4)

	res, err := uc.Validate(context.Background(), id, "abir@publicis.com")
	require.NoError(t, err)

	assert.Equal(t, 10, res.Before)
	assert.Equal(t, 6, res.After)
	assert.Equal(t, 6, store.stock[stockKey{artID, branchID}].Quantity)

	req := store.requests[id]
	assert.Equal(t, entity.RequestStatusValidated, req.Status)
	assert.Equal(t, "abir@publicis.com", req.ValidatedBy)
	require.NotNil(t, req.ValidatedAt)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeFulfillment, mov.Type)
	assert.Equal(t, 4, mov.Quantity)
	assert.Equal(t, id, mov.RequestID)
	assert.Equal(t, "abir@publicis.com", mov.Actor)
}

// Validar dos veces la misma demande: la segunda falla con ErrAlreadyProcessed
// y el stock solo se descuenta una vez.
func TestValidate_SegundaValidacionRechazada(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	id := createPending(t, uc, 4)
	ctx := context.Background()

	_, err := uc.Validate(ctx, id, "abir@publicis.com")
	require.NoError(t, err)

	_, err = uc.Validate(ctx, id, "abir@publicis.com")
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	assert.Equal(t, 6, store.stock[stockKey{artID, branchID}].Quantity,
		"el descuento debe aplicarse exactamente una vez")
	assert.Len(t, store.movements, 1)
}

// Stock insuficiente al validar: la demande queda en en_attente, sin
// movimiento ni descuento.
func TestValidate_StockInsuficiente_DemandeSigueEnAttente(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 6)
	uc := newTestUseCase(store)
	id := createPending(t, uc, 8)

	_, err := uc.Validate(context.Background(), id, "abir@publicis.com")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, entity.RequestStatusPending, store.requests[id].Status,
		"una validación fallida no debe cambiar el statut")
	assert.Equal(t, 6, store.stock[stockKey{artID, branchID}].Quantity)
	assert.Empty(t, store.movements)
}

// Demande inexistente → ErrNotFound.
func TestValidate_DemandeInexistente(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)

	_, err := uc.Validate(context.Background(), "33333333-3333-3333-3333-333333333333", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Validador vacío cae al valor por defecto "admin".
func TestValidate_ValidadorPorDefecto(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	id := createPending(t, uc, 1)

	_, err := uc.Validate(context.Background(), id, "")
	require.NoError(t, err)
	assert.Equal(t, "admin", store.requests[id].ValidatedBy)
}

// Validaciones concurrentes de la misma demande: exactamente una gana, el
// resto observa ErrAlreadyProcessed. El stock se descuenta una sola vez.
func TestValidate_ConcurrenciaComoMaximoUnaVez(t *testing.T) {
	store := newFakeStore()
	seedCatalog(store, 10)
	uc := newTestUseCase(store)
	id := createPending(t, uc, 4)

	const workers = 10
	var wg sync.WaitGroup
	var okCount, dupCount int64
	var mu sync.Mutex

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Validate(context.Background(), id, "abir@publicis.com")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				okCount++
			case err == domain.ErrAlreadyProcessed:
				dupCount++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, okCount, "exactamente una validación debe ganar")
	assert.EqualValues(t, workers-1, dupCount)
	assert.Equal(t, 6, store.stock[stockKey{artID, branchID}].Quantity)
	assert.Len(t, store.movements, 1)
}
