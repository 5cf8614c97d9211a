package dto

import "time"

// AdjustStockRequest body para POST /api/stock/update. Quantite es el delta:
// positivo entrada, negativo salida.
type AdjustStockRequest struct {
	ArticleID string `json:"article_id" validate:"required"`
	BranchID  string `json:"agence_id" validate:"required"`
	Quantity  int    `json:"quantite" validate:"required"`
	Comment   string `json:"commentaire"`
}

// AdjustStockResponse confirmación con las cantidades antes/después.
type AdjustStockResponse struct {
	Success     bool   `json:"success"`
	StockBefore int    `json:"stock_avant"`
	StockAfter  int    `json:"stock_apres"`
	Message     string `json:"message"`
}

// StockRowResponse una fila del listado de stock (vista unida agencia+artículo).
type StockRowResponse struct {
	BranchID      string    `json:"agence_id"`
	BranchName    string    `json:"agence_nom"`
	BranchCode    string    `json:"agence_code"`
	BranchAddress string    `json:"agence_adresse"`
	ArticleID     string    `json:"article_id"`
	ArticleName   string    `json:"article_nom"`
	Category      string    `json:"categorie"`
	Quantity      int       `json:"quantite"`
	MinStock      int       `json:"stock_min"`
	UpdatedAt     time.Time `json:"derniere_maj"`
	Alert         bool      `json:"alerte"`
}

// StockListResponse listado completo de stock.
type StockListResponse struct {
	Stock []StockRowResponse `json:"stock"`
}
