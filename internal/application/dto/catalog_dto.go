package dto

// BranchResponse salida de una agencia.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nom"`
	Code    string `json:"code"`
	Address string `json:"adresse"`
}

// BranchListResponse listado de agencias activas.
type BranchListResponse struct {
	Branches []BranchResponse `json:"agences"`
}

// ArticleResponse salida de un artículo.
type ArticleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nom"`
	Category    string `json:"categorie"`
	Reference   string `json:"reference,omitempty"`
	Description string `json:"description,omitempty"`
}

// ArticleListResponse listado de artículos activos.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
}
