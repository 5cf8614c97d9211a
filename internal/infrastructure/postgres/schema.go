package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abirbissou/stock-IT/internal/domain"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
)

// Esquema de Stock IT. Los nombres de tabla y columna conservan el francés
// del esquema histórico; el CHECK de quantite respalda en la DB el invariante
// de no-negatividad que el ledger ya hace cumplir.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS agences (
	id            UUID PRIMARY KEY,
	nom           TEXT NOT NULL UNIQUE,
	code          TEXT NOT NULL UNIQUE,
	adresse       TEXT NOT NULL DEFAULT '',
	actif         BOOLEAN NOT NULL DEFAULT TRUE,
	date_creation TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS articles (
	id            UUID PRIMARY KEY,
	nom           TEXT NOT NULL UNIQUE,
	categorie     TEXT NOT NULL,
	reference     TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	actif         BOOLEAN NOT NULL DEFAULT TRUE,
	date_creation TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock (
	article_id   UUID NOT NULL REFERENCES articles(id),
	agence_id    UUID NOT NULL REFERENCES agences(id),
	quantite     INTEGER NOT NULL DEFAULT 0 CHECK (quantite >= 0),
	stock_min    INTEGER NOT NULL DEFAULT 5,
	derniere_maj TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (article_id, agence_id)
);

CREATE TABLE IF NOT EXISTS demandes (
	id                UUID PRIMARY KEY,
	ticket_servicenow TEXT NOT NULL,
	agence_id         UUID NOT NULL REFERENCES agences(id),
	article_id        UUID NOT NULL REFERENCES articles(id),
	client_nom        TEXT NOT NULL,
	client_email      TEXT,
	quantite          INTEGER NOT NULL CHECK (quantite > 0),
	statut            TEXT NOT NULL DEFAULT 'en_attente',
	commentaire       TEXT,
	date_demande      TIMESTAMPTZ NOT NULL DEFAULT now(),
	date_validation   TIMESTAMPTZ,
	valide_par        TEXT
);

CREATE TABLE IF NOT EXISTS historique (
	id             UUID PRIMARY KEY,
	article_id     UUID NOT NULL REFERENCES articles(id),
	agence_id      UUID NOT NULL REFERENCES agences(id),
	type_mouvement TEXT NOT NULL,
	quantite       INTEGER NOT NULL CHECK (quantite > 0),
	stock_avant    INTEGER NOT NULL,
	stock_apres    INTEGER NOT NULL,
	demande_id     UUID REFERENCES demandes(id),
	utilisateur    TEXT,
	commentaire    TEXT,
	date_mouvement TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_historique_date ON historique (date_mouvement DESC);
CREATE INDEX IF NOT EXISTS idx_historique_demande ON historique (demande_id) WHERE demande_id IS NOT NULL;
CREATE INDEX IF NOT EXISTS idx_demandes_statut ON demandes (statut);

CREATE TABLE IF NOT EXISTS utilisateurs (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	nom           TEXT NOT NULL,
	prenom        TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	actif         BOOLEAN NOT NULL DEFAULT TRUE,
	date_creation TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate crea las tablas e índices si no existen.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// seedBranch / seedArticle datos de referencia iniciales del parque Publicis.
type seedBranch struct {
	name, code, address string
}

type seedArticle struct {
	name, category, reference, description string
}

var seedBranches = []seedBranch{
	{"Publicis Conseil", "CONSEIL", "Site 145"},
	{"Marcel", "MARCEL", "Site 145"},
	{"Leo Burnett", "LEO_BURNETT", "Site 145"},
	{"Saatchi & Saatchi", "SAATCHI", "Site 145"},
	{"Publicis Consultants", "CONSULTANTS", "Site 145"},
	{"Publicis Live", "LIVE", "Site 145"},
	{"Carré Noir", "CARRE_NOIR", "Site 145"},
	{"Publicis Luxe", "LUXE", "Site 133"},
	{"Prodigious", "PRODIGIOUS", "Site 145"},
	{"Razorfish", "RAZORFISH", "Site 145"},
	{"BBH", "BBH", "Site 145"},
	{"LePub", "LEPUB", "Site 145"},
	{"Fallon", "FALLON", "Site 145"},
	{"MSL", "MSL", "Site 145"},
	{"Starcom", "STARCOM", "Site 133"},
	{"Zenith", "ZENITH", "Site 133"},
	{"Spark Foundry", "SPARK_FOUNDRY", "Site 133"},
	{"Blue449", "BLUE449", "Site 133"},
	{"Performics", "PERFORMICS", "Site 133"},
	{"Publicis Media", "MEDIA", "Site 133"},
	{"Epsilon", "EPSILON", "Site 145"},
	{"Conversant", "CONVERSANT", "Site 145"},
	{"Publicis Sapient", "SAPIENT", "Site 145"},
	{"Publicis Health", "HEALTH", "Site 145"},
	{"Publicis Activ", "ACTIV", "Site 145"},
	{"Digitas", "DIGITAS", "Site 145"},
	{"Publicis ReSources", "RESOURCES", "Site 145"},
}

var seedArticles = []seedArticle{
	{"Casque Jabra", "Audio", "CASQUE-001", "Casque audio"},
	{"Souris filaire", "Peripherique", "SOURIS-001", "Souris USB"},
	{"Souris sans fil", "Peripherique", "SOURIS-002", "Souris Bluetooth"},
	{"Souris ergonomique", "Peripherique", "SOURIS-003", "Souris verticale"},
	{"Magic Mouse", "Peripherique", "SOURIS-004", "Apple Magic Mouse"},
	{"Magic Keyboard", "Peripherique", "CLAVIER-001", "Apple Magic Keyboard"},
	{"Clavier Mac sans fil", "Peripherique", "CLAVIER-002", "Clavier sans fil Mac"},
	{"Clavier filaire", "Peripherique", "CLAVIER-003", "Clavier USB"},
	{"Housse 14\"", "Protection", "HOUSSE-001", "Housse 14 pouces"},
	{"Housse 16\"", "Protection", "HOUSSE-002", "Housse 16 pouces"},
	{"Hub USB-C", "Connectique", "HUB-001", "Hub multi-ports"},
	{"Dock USB DICOTA", "Connectique", "DOCK-001", "Station accueil"},
	{"Chargeur 65W", "Alimentation", "CHARGEUR-001", "Chargeur 65W"},
	{"Chargeur 70W", "Alimentation", "CHARGEUR-002", "Chargeur Apple 70W"},
	{"Chargeur 140W", "Alimentation", "CHARGEUR-003", "Chargeur Apple 140W"},
	{"Cable USB-C", "Connectique", "CABLE-001", "Cable USB-C 2m"},
	{"Cable HDMI", "Connectique", "CABLE-003", "Cable HDMI"},
	{"Tablette Wacom", "Creation", "WACOM-001", "Tablette graphique"},
	{"Ecran confidentialite", "Protection", "FILTRE-001", "Filtre confidentialite"},
	{"Sacoche", "Transport", "SACOCHE-001", "Sacoche ordinateur"},
	{"Tapis souris ergonomique", "Ergonomie", "TAPIS-001", "Tapis avec repose-poignet"},
	{"Bloc multiprise", "Electricite", "BLOC-001", "Bloc multiprise USB"},
}

const seedDefaultMinStock = 5

// Seed inserta agencias, artículos, el producto cruzado completo de stock a
// cero y el usuario admin inicial. Idempotente: si ya hay agencias no hace
// nada, para no pisar datos reales.
func Seed(ctx context.Context, pool *pgxpool.Pool, adminEmail, adminPassword string) error {
	branchRepo := NewBranchRepository(pool)
	articleRepo := NewArticleRepository(pool)
	stockRepo := NewStockRepository(pool)
	userRepo := NewUserRepository(pool)

	existing, err := branchRepo.ListActive()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	branchIDs := make([]string, 0, len(seedBranches))
	for _, sb := range seedBranches {
		b := &entity.Branch{
			Name:      sb.name,
			Code:      sb.code,
			Address:   sb.address,
			Active:    true,
			CreatedAt: now,
		}
		if err := branchRepo.Create(b); err != nil {
			return fmt.Errorf("seed agence %s: %w", sb.code, err)
		}
		branchIDs = append(branchIDs, b.ID)
	}

	articleIDs := make([]string, 0, len(seedArticles))
	for _, sa := range seedArticles {
		a := &entity.Article{
			Name:        sa.name,
			Category:    sa.category,
			Reference:   sa.reference,
			Description: sa.description,
			Active:      true,
			CreatedAt:   now,
		}
		if err := articleRepo.Create(a); err != nil {
			return fmt.Errorf("seed article %s: %w", sa.reference, err)
		}
		articleIDs = append(articleIDs, a.ID)
	}

	// Producto cruzado completo: una entrada de stock por pareja, nunca
	// creada perezosamente después.
	for _, branchID := range branchIDs {
		for _, articleID := range articleIDs {
			entry := &entity.StockEntry{
				ArticleID: articleID,
				BranchID:  branchID,
				Quantity:  0,
				MinStock:  seedDefaultMinStock,
			}
			if err := stockRepo.Insert(entry); err != nil {
				return fmt.Errorf("seed stock: %w", err)
			}
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		LastName:     "GUEBBACHE",
		FirstName:    "Abir",
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil && err != domain.ErrDuplicate {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
