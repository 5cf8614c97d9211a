package entity

import "time"

// Article representa un tipo de equipo IT rastreable (ratón, teclado,
// cargador...). La cantidad es un conteo, no unidades serializadas.
type Article struct {
	ID          string
	Name        string // único
	Category    string
	Reference   string // código de referencia opcional (ej. "SOURIS-001")
	Description string
	Active      bool
	CreatedAt   time.Time
}
