package entity

import "time"

// Branch representa una agencia (sucursal) que mantiene su propio stock de
// artículos IT. Inmutable tras su creación salvo el flag Active.
type Branch struct {
	ID        string
	Name      string // único
	Code      string // código corto único (ej. "MARCEL")
	Address   string
	Active    bool
	CreatedAt time.Time
}
