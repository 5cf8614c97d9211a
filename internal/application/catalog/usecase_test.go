package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abirbissou/stock-IT/internal/application/catalog"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

type fakeBranchRepo struct{ list []*entity.Branch }

func (r *fakeBranchRepo) Create(b *entity.Branch) error              { return nil }
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error)  { return nil, nil }
func (r *fakeBranchRepo) GetByCode(c string) (*entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) ListActive() ([]*entity.Branch, error)      { return r.list, nil }
func (r *fakeBranchRepo) SetActive(id string, active bool) error     { return nil }

type fakeArticleRepo struct{ list []*entity.Article }

func (r *fakeArticleRepo) Create(a *entity.Article) error             { return nil }
func (r *fakeArticleRepo) GetByID(id string) (*entity.Article, error) { return nil, nil }
func (r *fakeArticleRepo) ListActive() ([]*entity.Article, error)     { return r.list, nil }
func (r *fakeArticleRepo) SetActive(id string, active bool) error     { return nil }

type fakeStockRepo struct{ rows []repository.StockOverviewRow }

func (r *fakeStockRepo) Get(a, b string) (*entity.StockEntry, error)          { return nil, nil }
func (r *fakeStockRepo) GetForUpdate(a, b string) (*entity.StockEntry, error) { return nil, nil }
func (r *fakeStockRepo) UpdateQuantity(a, b string, q int) error              { return nil }
func (r *fakeStockRepo) Insert(e *entity.StockEntry) error                    { return nil }
func (r *fakeStockRepo) ListOverview() ([]repository.StockOverviewRow, error) { return r.rows, nil }

func newTestUseCase(b *fakeBranchRepo, a *fakeArticleRepo, s *fakeStockRepo) *catalog.UseCase {
	return catalog.NewUseCase(b, a, s)
}

func TestListBranches_MapeaCampos(t *testing.T) {
	uc := newTestUseCase(&fakeBranchRepo{list: []*entity.Branch{
		{ID: "b1", Name: "Publicis Conseil", Code: "MARCEL", Address: "Paris", Active: true},
	}}, &fakeArticleRepo{}, &fakeStockRepo{})

	resp, err := uc.ListBranches(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Branches, 1)
	assert.Equal(t, "Publicis Conseil", resp.Branches[0].Name)
	assert.Equal(t, "MARCEL", resp.Branches[0].Code)
}

func TestListStock_CalculaAlerte(t *testing.T) {
	uc := newTestUseCase(&fakeBranchRepo{}, &fakeArticleRepo{}, &fakeStockRepo{
		rows: []repository.StockOverviewRow{
			{ArticleName: "Souris Logitech", Quantity: 2, MinStock: 5},
			{ArticleName: "Clavier AZERTY", Quantity: 5, MinStock: 5},
			{ArticleName: "Casque Jabra", Quantity: 9, MinStock: 5},
		},
	})

	resp, err := uc.ListStock(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Stock, 3)

	assert.True(t, resp.Stock[0].Alert, "cantidad por debajo del mínimo debe marcar alerte")
	assert.False(t, resp.Stock[1].Alert, "cantidad igual al mínimo no es alerte")
	assert.False(t, resp.Stock[2].Alert)
}

func TestListArticles_ListadoVacioNoEsNil(t *testing.T) {
	uc := newTestUseCase(&fakeBranchRepo{}, &fakeArticleRepo{}, &fakeStockRepo{})

	resp, err := uc.ListArticles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Articles, "el JSON debe serializar [] y no null")
	assert.Empty(t, resp.Articles)
}
