package dto

// StatsResponse contadores del panel de control.
type StatsResponse struct {
	TotalBranches   int `json:"total_agences"`
	TotalArticles   int `json:"total_articles"`
	TotalRequests   int `json:"total_demandes"`
	PendingRequests int `json:"demandes_attente"`
	StockAlerts     int `json:"alertes_stock"`
	TotalItems      int `json:"total_items"`
}
