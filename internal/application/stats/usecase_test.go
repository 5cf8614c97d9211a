package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abirbissou/stock-IT/internal/application/stats"
)

type fakeStatsRepo struct {
	branches, articles int
	total, pending     int
	alerts, items      int
	catalogErr         error
}

func (r *fakeStatsRepo) CountCatalog(ctx context.Context) (int, int, error) {
	return r.branches, r.articles, r.catalogErr
}

func (r *fakeStatsRepo) CountRequests(ctx context.Context) (int, int, error) {
	return r.total, r.pending, nil
}

func (r *fakeStatsRepo) StockTotals(ctx context.Context) (int, int, error) {
	return r.alerts, r.items, nil
}

func TestSummary_AgregaLosTresContadores(t *testing.T) {
	repo := &fakeStatsRepo{
		branches: 27, articles: 22,
		total: 14, pending: 3,
		alerts: 41, items: 580,
	}
	uc := stats.NewUseCase(repo)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 27, resp.TotalBranches)
	assert.Equal(t, 22, resp.TotalArticles)
	assert.Equal(t, 14, resp.TotalRequests)
	assert.Equal(t, 3, resp.PendingRequests)
	assert.Equal(t, 41, resp.StockAlerts)
	assert.Equal(t, 580, resp.TotalItems)
}

func TestSummary_ErrorDeUnaConsultaPropaga(t *testing.T) {
	sentinel := errors.New("conexión perdida")
	repo := &fakeStatsRepo{catalogErr: sentinel}
	uc := stats.NewUseCase(repo)

	_, err := uc.Summary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}
