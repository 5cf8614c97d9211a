package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial sobre PostgreSQL (usable con pool
// o tx). La tabla historique es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada de historial.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historique (id, article_id, agence_id, type_mouvement, quantite,
		                        stock_avant, stock_apres, demande_id, utilisateur, commentaire, date_mouvement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	requestID := (*string)(nil)
	if movement.RequestID != "" {
		requestID = &movement.RequestID
	}
	actor := (*string)(nil)
	if movement.Actor != "" {
		actor = &movement.Actor
	}
	comment := (*string)(nil)
	if movement.Comment != "" {
		comment = &movement.Comment
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ArticleID, movement.BranchID, movement.Type, movement.Quantity,
		movement.StockBefore, movement.StockAfter, requestID, actor, comment, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListRecent devuelve como máximo limit movimientos con los nombres unidos,
// el más reciente primero.
func (r *MovementRepo) ListRecent(limit int) ([]repository.MovementOverviewRow, error) {
	query := `
		SELECT h.id, ag.nom, ar.nom, h.type_mouvement, h.quantite,
		       h.stock_avant, h.stock_apres, h.utilisateur, h.commentaire, h.date_mouvement
		FROM historique h
		JOIN agences ag ON h.agence_id = ag.id
		JOIN articles ar ON h.article_id = ar.id
		ORDER BY h.date_mouvement DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementOverviewRow
	for rows.Next() {
		var row repository.MovementOverviewRow
		var actor, comment *string
		if err := rows.Scan(
			&row.ID, &row.BranchName, &row.ArticleName, &row.Type, &row.Quantity,
			&row.StockBefore, &row.StockAfter, &actor, &comment, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if actor != nil {
			row.Actor = *actor
		}
		if comment != nil {
			row.Comment = *comment
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByRequest devuelve los movimientos ligados a una demande.
func (r *MovementRepo) ListByRequest(requestID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, article_id, agence_id, type_mouvement, quantite,
		       stock_avant, stock_apres, demande_id, utilisateur, commentaire, date_mouvement
		FROM historique WHERE demande_id = $1
		ORDER BY date_mouvement`
	rows, err := r.q.Query(context.Background(), query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list movements by request: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var reqID, actor, comment *string
		if err := rows.Scan(
			&m.ID, &m.ArticleID, &m.BranchID, &m.Type, &m.Quantity,
			&m.StockBefore, &m.StockAfter, &reqID, &actor, &comment, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if reqID != nil {
			m.RequestID = *reqID
		}
		if actor != nil {
			m.Actor = *actor
		}
		if comment != nil {
			m.Comment = *comment
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
