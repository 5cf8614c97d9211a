package entity

import "time"

// Tipos de movimiento de stock. Los valores persistidos conservan los del
// esquema histórico francés.
const (
	MovementTypeInbound     = "entree"  // entrada de stock (delta > 0)
	MovementTypeOutbound    = "sortie"  // salida de stock (delta < 0)
	MovementTypeFulfillment = "demande" // salida por validación de una demande
)

// Movement representa una entrada del historial: un cambio de cantidad con su
// causa. Append-only; nunca se actualiza ni se borra. Es la única pista de
// auditoría del sistema.
type Movement struct {
	ID          string
	ArticleID   string
	BranchID    string
	Type        string
	Quantity    int // magnitud, siempre positiva
	StockBefore int
	StockAfter  int
	RequestID   string // vacío salvo Type == demande
	Actor       string
	Comment     string
	CreatedAt   time.Time
}
