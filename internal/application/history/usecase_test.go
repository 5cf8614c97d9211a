package history_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abirbissou/stock-IT/internal/application/history"
	"github.com/Abirbissou/stock-IT/internal/domain/entity"
	"github.com/Abirbissou/stock-IT/internal/domain/repository"
)

// fakeMovementRepo registra el limit recibido y devuelve filas sintéticas.
type fakeMovementRepo struct {
	gotLimit int
	rows     []repository.MovementOverviewRow
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error { return nil }

func (r *fakeMovementRepo) ListRecent(limit int) ([]repository.MovementOverviewRow, error) {
	r.gotLimit = limit
	if limit > len(r.rows) {
		limit = len(r.rows)
	}
	return r.rows[:limit], nil
}

func (r *fakeMovementRepo) ListByRequest(requestID string) ([]*entity.Movement, error) {
	return nil, nil
}

func TestList_LimiteSeRecortaYAplicaPorDefecto(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		in   int
		want int
	}{
		{"limit explícito dentro del rango", 20, 20},
		{"limit cero aplica el valor por defecto", 0, history.DefaultLimit},
		{"limit negativo aplica el valor por defecto", -5, history.DefaultLimit},
		{"limit excesivo se recorta al máximo", 10000, history.MaxLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeMovementRepo{}
			uc := history.NewUseCase(repo)

			_, err := uc.List(ctx, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, repo.gotLimit)
		})
	}
}

func TestList_DevuelveLasFilasDelRepositorio(t *testing.T) {
	repo := &fakeMovementRepo{rows: []repository.MovementOverviewRow{
		{ID: "m1", Type: entity.MovementTypeOutbound, Quantity: 2},
		{ID: "m2", Type: entity.MovementTypeInbound, Quantity: 5},
	}}
	uc := history.NewUseCase(repo)

	rows, err := uc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "m1", rows[0].ID)
}
