package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un artículo en una agencia. Devuelve nil si
// la pareja no existe.
func (r *StockRepo) Get(articleID, branchID string) (*entity.StockEntry, error) {
	query := `
		SELECT article_id, agence_id, quantite, stock_min, derniere_maj
		FROM stock WHERE article_id = $1 AND agence_id = $2`
	return r.scanOne(query, articleID, branchID)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar las mutaciones concurrentes sobre la misma pareja.
func (r *StockRepo) GetForUpdate(articleID, branchID string) (*entity.StockEntry, error) {
	query := `
		SELECT article_id, agence_id, quantite, stock_min, derniere_maj
		FROM stock WHERE article_id = $1 AND agence_id = $2
		FOR UPDATE`
	return r.scanOne(query, articleID, branchID)
}

func (r *StockRepo) scanOne(query, articleID, branchID string) (*entity.StockEntry, error) {
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, articleID, branchID).Scan(
		&s.ArticleID, &s.BranchID, &s.Quantity, &s.MinStock, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// UpdateQuantity fija la nueva cantidad y sella derniere_maj.
func (r *StockRepo) UpdateQuantity(articleID, branchID string, quantity int) error {
	query := `
		UPDATE stock SET quantite = $3, derniere_maj = now()
		WHERE article_id = $1 AND agence_id = $2`
	tag, err := r.q.Exec(context.Background(), query, articleID, branchID, quantity)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock: fila (%s, %s) inexistente", articleID, branchID)
	}
	return nil
}

// Insert crea una entrada de stock (bootstrap del producto cruzado).
func (r *StockRepo) Insert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock (article_id, agence_id, quantite, stock_min, derniere_maj)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query,
		entry.ArticleID, entry.BranchID, entry.Quantity, entry.MinStock)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// ListOverview devuelve la vista de stock unida con agencias y artículos
// activos, ordenada por agencia, categoría y artículo.
func (r *StockRepo) ListOverview() ([]repository.StockOverviewRow, error) {
	query := `
		SELECT ar.id, ar.nom, ar.categorie,
		       ag.id, ag.nom, ag.code, ag.adresse,
		       s.quantite, s.stock_min, s.derniere_maj
		FROM stock s
		JOIN agences ag ON s.agence_id = ag.id
		JOIN articles ar ON s.article_id = ar.id
		WHERE ag.actif AND ar.actif
		ORDER BY ag.nom, ar.categorie, ar.nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []repository.StockOverviewRow
	for rows.Next() {
		var row repository.StockOverviewRow
		if err := rows.Scan(
			&row.ArticleID, &row.ArticleName, &row.Category,
			&row.BranchID, &row.BranchName, &row.BranchCode, &row.BranchAddress,
			&row.Quantity, &row.MinStock, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
