package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una agencia. Nom y code son únicos.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO agences (id, nom, code, adresse, actif, date_creation)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.Name, branch.Code, branch.Address, branch.Active, branch.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

// GetByID obtiene una agencia por ID. Devuelve nil si no existe.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `SELECT id, nom, code, adresse, actif, date_creation FROM agences WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene una agencia por su código corto.
func (r *BranchRepo) GetByCode(code string) (*entity.Branch, error) {
	query := `SELECT id, nom, code, adresse, actif, date_creation FROM agences WHERE code = $1`
	return r.scanOne(query, code)
}

func (r *BranchRepo) scanOne(query string, args ...any) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&b.ID, &b.Name, &b.Code, &b.Address, &b.Active, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// ListActive devuelve las agencias activas ordenadas por nombre.
func (r *BranchRepo) ListActive() ([]*entity.Branch, error) {
	query := `
		SELECT id, nom, code, adresse, actif, date_creation
		FROM agences WHERE actif ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Address, &b.Active, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// SetActive activa o desactiva una agencia.
func (r *BranchRepo) SetActive(id string, active bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE agences SET actif = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set branch active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
