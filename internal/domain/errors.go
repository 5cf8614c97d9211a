package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes están en
// francés porque son los textos que el cliente Stock IT espera en la API.
var (
	ErrNotFound          = errors.New("ressource non trouvée")
	ErrInvalidInput      = errors.New("entrée invalide")
	ErrDuplicate         = errors.New("ressource dupliquée")
	ErrUnauthorized      = errors.New("non autorisé")
	ErrForbidden         = errors.New("accès refusé")
	ErrAlreadyProcessed  = errors.New("demande déjà traitée")
	ErrInsufficientStock = errors.New("stock insuffisant")
)
