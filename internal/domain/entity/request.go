package entity

import "time"

// Estados de una demande. La máquina de estados es mínima:
// en_attente --valider--> validee. No existe rechazo ni vuelta atrás.
const (
	RequestStatusPending   = "en_attente"
	RequestStatusValidated = "validee"
)

// Request representa una demande de equipo enviada por un usuario
// (ticket ServiceNow) para una cantidad de un artículo en una agencia.
// El stock solo se descuenta al validar, nunca al crear.
type Request struct {
	ID          string
	Ticket      string // referencia ServiceNow (ej. "INC001")
	BranchID    string
	ArticleID   string
	ClientName  string
	ClientEmail string
	Quantity    int // > 0
	Status      string
	Comment     string
	CreatedAt   time.Time
	ValidatedAt *time.Time
	ValidatedBy string
}
