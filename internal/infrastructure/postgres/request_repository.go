package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository sobre PostgreSQL (usable
// con pool o tx).
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

const requestColumns = `id, ticket_servicenow, agence_id, article_id, client_nom, client_email,
		quantite, statut, commentaire, date_demande, date_validation, valide_par`

// Create persiste una demande nueva (statut en_attente).
func (r *RequestRepo) Create(req *entity.Request) error {
	query := `
		INSERT INTO demandes (id, ticket_servicenow, agence_id, article_id, client_nom, client_email,
		                      quantite, statut, commentaire, date_demande)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	email := (*string)(nil)
	if req.ClientEmail != "" {
		email = &req.ClientEmail
	}
	comment := (*string)(nil)
	if req.Comment != "" {
		comment = &req.Comment
	}
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Ticket, req.BranchID, req.ArticleID, req.ClientName, email,
		req.Quantity, req.Status, comment, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

// GetByID obtiene una demande por ID. Devuelve nil si no existe.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM demandes WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene la demande y bloquea su fila (SELECT FOR UPDATE): una
// segunda validación concurrente espera aquí y observará el statut ya mutado.
func (r *RequestRepo) GetForUpdate(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM demandes WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *RequestRepo) scanOne(query string, args ...any) (*entity.Request, error) {
	var req entity.Request
	var email, comment, validatedBy *string
	var validatedAt *time.Time
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&req.ID, &req.Ticket, &req.BranchID, &req.ArticleID, &req.ClientName, &email,
		&req.Quantity, &req.Status, &comment, &req.CreatedAt, &validatedAt, &validatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	if email != nil {
		req.ClientEmail = *email
	}
	if comment != nil {
		req.Comment = *comment
	}
	if validatedBy != nil {
		req.ValidatedBy = *validatedBy
	}
	req.ValidatedAt = validatedAt
	return &req, nil
}

// MarkValidated fija statut=validee, date_validation y valide_par. Solo muta
// demandes aún en en_attente; cero filas afectadas significa carrera perdida.
func (r *RequestRepo) MarkValidated(id, validator string, at time.Time) error {
	query := `
		UPDATE demandes SET statut = $2, date_validation = $3, valide_par = $4
		WHERE id = $1 AND statut = $5`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.RequestStatusValidated, at, validator, entity.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("mark validated: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

// ListOverview devuelve todas las demandes con los nombres unidos, la más
// reciente primero.
func (r *RequestRepo) ListOverview() ([]repository.RequestOverviewRow, error) {
	query := `
		SELECT d.id, d.ticket_servicenow, ag.nom, ar.nom, d.client_nom, d.client_email,
		       d.quantite, d.statut, d.commentaire, d.date_demande, d.date_validation, d.valide_par
		FROM demandes d
		JOIN agences ag ON d.agence_id = ag.id
		JOIN articles ar ON d.article_id = ar.id
		ORDER BY d.date_demande DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var list []repository.RequestOverviewRow
	for rows.Next() {
		var row repository.RequestOverviewRow
		var email, comment, validatedBy *string
		var validatedAt *time.Time
		if err := rows.Scan(
			&row.ID, &row.Ticket, &row.BranchName, &row.ArticleName, &row.ClientName, &email,
			&row.Quantity, &row.Status, &comment, &row.CreatedAt, &validatedAt, &validatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		if email != nil {
			row.ClientEmail = *email
		}
		if comment != nil {
			row.Comment = *comment
		}
		if validatedBy != nil {
			row.ValidatedBy = *validatedBy
		}
		row.ValidatedAt = validatedAt
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountByStatus cuenta demandes con el statut dado.
func (r *RequestRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM demandes WHERE statut = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}
