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

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository sobre PostgreSQL.
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un artículo. Nom es único.
func (r *ArticleRepo) Create(article *entity.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	query := `
		INSERT INTO articles (id, nom, categorie, reference, description, actif, date_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Name, article.Category, article.Reference,
		article.Description, article.Active, article.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `
		SELECT id, nom, categorie, reference, description, actif, date_creation
		FROM articles WHERE id = $1`
	var a entity.Article
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Category, &a.Reference, &a.Description, &a.Active, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// ListActive devuelve los artículos activos ordenados por categoría y nombre.
func (r *ArticleRepo) ListActive() ([]*entity.Article, error) {
	query := `
		SELECT id, nom, categorie, reference, description, actif, date_creation
		FROM articles WHERE actif ORDER BY categorie, nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Reference,
			&a.Description, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SetActive activa o desactiva un artículo.
func (r *ArticleRepo) SetActive(id string, active bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE articles SET actif = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set article active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
