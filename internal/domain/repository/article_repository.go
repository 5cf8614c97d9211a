package repository

import "github.com/Abirbissou/stock-IT/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para los artículos (DIP).
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	ListActive() ([]*entity.Article, error)
	SetActive(id string, active bool) error
}
