package repository

import "github.com/Abirbissou/stock-IT/internal/domain/entity"

// BranchRepository define el puerto de persistencia para las agencias (DIP).
// El catálogo es cuasi-inmutable: alta y toggle de actividad, nada más.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	GetByCode(code string) (*entity.Branch, error)
	ListActive() ([]*entity.Branch, error)
	SetActive(id string, active bool) error
}
