package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del directorio interno que puede autenticarse
// contra la API (técnicos IT que gestionan stock y validan demandes).
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt
	LastName     string
	FirstName    string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
