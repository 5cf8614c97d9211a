package repository

import (
	"time"

	"github.com/Abirbissou/stock-IT/internal/domain/entity"
)

// RequestOverviewRow resultado crudo del listado de demandes con los nombres
// de agencia y artículo ya unidos.
type RequestOverviewRow struct {
	ID          string
	Ticket      string
	BranchName  string
	ArticleName string
	ClientName  string
	ClientEmail string
	Quantity    int
	Status      string
	Comment     string
	CreatedAt   time.Time
	ValidatedAt *time.Time
	ValidatedBy string
}

// RequestRepository define el puerto de persistencia para las demandes (DIP).
// El estado de una demande solo cambia dentro de la transacción de validación.
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	// GetForUpdate bloquea la fila de la demande (SELECT FOR UPDATE) para
	// garantizar una validación como máximo. Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Request, error)
	// MarkValidated fija statut=validee, date_validation y valide_par.
	MarkValidated(id, validator string, at time.Time) error
	ListOverview() ([]RequestOverviewRow, error)
	CountByStatus(status string) (int, error)
}
