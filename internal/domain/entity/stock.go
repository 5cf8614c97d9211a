package entity

import "time"

// StockEntry representa el stock actual de un artículo en una agencia.
// La pareja (ArticleID, BranchID) es única; existe una fila para todo el
// producto cruzado artículo×agencia desde el bootstrap del esquema.
// Quantity nunca baja de cero; la única vía de mutación es el ledger.
type StockEntry struct {
	ArticleID string
	BranchID  string
	Quantity  int
	MinStock  int // umbral de alerta: quantity < min_stock => pedido sugerido
	UpdatedAt time.Time
}

// Shortage indica si la entrada está por debajo de su umbral mínimo.
func (s StockEntry) Shortage() bool {
	return s.Quantity < s.MinStock
}
