package dto

import "time"

// CreateRequestRequest body para POST /api/demandes/create.
// La cantidad debe ser estrictamente positiva.
type CreateRequestRequest struct {
	Ticket      string `json:"ticket_servicenow" validate:"required"`
	BranchID    string `json:"agence_id" validate:"required"`
	ArticleID   string `json:"article_id" validate:"required"`
	ClientName  string `json:"client_nom" validate:"required"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	Quantity    int    `json:"quantite" validate:"required,gt=0"`
	Comment     string `json:"commentaire"`
}

// CreateRequestResponse confirmación de creación de demande.
type CreateRequestResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"demande_id"`
	Message   string `json:"message"`
}

// ValidateRequestResponse confirmación de validación: cantidades antes/después.
type ValidateRequestResponse struct {
	Success     bool   `json:"success"`
	StockBefore int    `json:"stock_avant"`
	StockAfter  int    `json:"stock_apres"`
	Message     string `json:"message"`
}

// RequestRowResponse una fila del listado de demandes (vista unida).
type RequestRowResponse struct {
	ID          string     `json:"id"`
	Ticket      string     `json:"ticket_servicenow"`
	BranchName  string     `json:"agence_nom"`
	ArticleName string     `json:"article_nom"`
	ClientName  string     `json:"client_nom"`
	ClientEmail string     `json:"client_email,omitempty"`
	Quantity    int        `json:"quantite"`
	Status      string     `json:"statut"`
	CreatedAt   time.Time  `json:"date_demande"`
	ValidatedAt *time.Time `json:"date_validation,omitempty"`
	ValidatedBy string     `json:"valide_par,omitempty"`
	Comment     string     `json:"commentaire,omitempty"`
}

// RequestListResponse listado de demandes, más recientes primero.
type RequestListResponse struct {
	Requests []RequestRowResponse `json:"demandes"`
}
