package dto

import "time"

// MovementRowResponse una entrada del historial (vista unida).
type MovementRowResponse struct {
	ID          string    `json:"id"`
	BranchName  string    `json:"agence_nom"`
	ArticleName string    `json:"article_nom"`
	Type        string    `json:"type_mouvement"`
	Quantity    int       `json:"quantite"`
	StockBefore int       `json:"stock_avant"`
	StockAfter  int       `json:"stock_apres"`
	Actor       string    `json:"utilisateur,omitempty"`
	Comment     string    `json:"commentaire,omitempty"`
	CreatedAt   time.Time `json:"date_mouvement"`
}

// MovementListResponse historial acotado, más reciente primero.
type MovementListResponse struct {
	History []MovementRowResponse `json:"historique"`
}
