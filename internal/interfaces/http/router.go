package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abirbissou/stock-IT/internal/application/auth"
	"github.com/Abirbissou/stock-IT/internal/application/catalog"
	"github.com/Abirbissou/stock-IT/internal/application/history"
	"github.com/Abirbissou/stock-IT/internal/application/ledger"
	"github.com/Abirbissou/stock-IT/internal/application/request"
	"github.com/Abirbissou/stock-IT/internal/application/stats"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	CatalogUC *catalog.UseCase
	LedgerUC  *ledger.UseCase
	RequestUC *request.UseCase
	HistoryUC *history.UseCase
	StatsUC   *stats.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Lecturas de catálogo, demandes, historial y stats (público, como el
	// frontend legacy espera)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/agences", catalogHandler.ListBranches)
	api.Get("/articles", catalogHandler.ListArticles)

	stockHandler := NewStockHandler(deps.LedgerUC, deps.CatalogUC)
	api.Get("/stock", stockHandler.List)

	requestHandler := NewRequestHandler(deps.RequestUC)
	api.Get("/demandes", requestHandler.List)
	api.Post("/demandes/create", requestHandler.Create)

	historyHandler := NewHistoryHandler(deps.HistoryUC)
	api.Get("/historique", historyHandler.List)

	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.Summary)

	// Mutaciones de stock (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/stock/update", stockHandler.Adjust)
	// Validar una demande descuenta stock: solo admins
	protected.Post("/demandes/:id/valider", RequireRole(entity.RoleAdmin), requestHandler.Validate)
}
