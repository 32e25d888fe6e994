package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

type fixture struct {
	ctx      context.Context
	catalog  *usecase.CatalogUseCase
	record   *inventory.RegisterMovementUseCase
	balances *inventory.BalanceUseCase
	ids      map[string]string
}

// newFixture crea un almacenamiento en memoria con los productos y ubicaciones indicados.
func newFixture(t *testing.T, products, locations []string) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		ctx:      context.Background(),
		catalog:  usecase.NewCatalogUseCase(store, zerolog.Nop()),
		record:   inventory.NewRegisterMovementUseCase(store, zerolog.Nop()),
		balances: inventory.NewBalanceUseCase(store, zerolog.Nop(), 0),
		ids:      map[string]string{},
	}
	for _, name := range products {
		e, err := f.catalog.Add(f.ctx, entity.KindProduct, name)
		require.NoError(t, err)
		f.ids[name] = e.ID
	}
	for _, name := range locations {
		e, err := f.catalog.Add(f.ctx, entity.KindLocation, name)
		require.NoError(t, err)
		f.ids[name] = e.ID
	}
	return f
}

func (f *fixture) ref(name string) *string {
	if name == "" {
		return nil
	}
	id := f.ids[name]
	return &id
}

func (f *fixture) move(t *testing.T, product, from, to string, qty int64) *dto.MovementResponse {
	t.Helper()
	out, err := f.record.RecordMovement(f.ctx, inventory.MovementInputDTO{
		ProductID:      f.ids[product],
		FromLocationID: f.ref(from),
		ToLocationID:   f.ref(to),
		Quantity:       qty,
	})
	require.NoError(t, err)
	return out
}

func TestRecordMovement_AsignaIDCreciente(t *testing.T) {
	f := newFixture(t, []string{"Laptop"}, []string{"X", "Y"})
	first := f.move(t, "Laptop", "", "X", 10)
	second := f.move(t, "Laptop", "X", "Y", 3)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, first.FromLocationID)
	require.NotNil(t, second.FromLocationID)
	assert.Equal(t, f.ids["X"], *second.FromLocationID)
}

func TestRecordMovement_RespetaTimestamp(t *testing.T) {
	f := newFixture(t, []string{"Laptop"}, []string{"X"})
	at := time.Date(2024, 12, 24, 8, 30, 0, 0, time.UTC)
	out, err := f.record.RecordMovement(f.ctx, inventory.MovementInputDTO{
		ProductID: f.ids["Laptop"], ToLocationID: f.ref("X"), Quantity: 1, Timestamp: &at,
	})
	require.NoError(t, err)
	assert.True(t, at.Equal(out.Timestamp))
}

func TestRecordMovement_Rechazos(t *testing.T) {
	f := newFixture(t, []string{"Laptop"}, []string{"X", "Y"})
	missing := "00000000-0000-0000-0000-00000000dead"

	cases := []struct {
		name      string
		in        inventory.MovementInputDTO
		wantField string
		wantErr   error
	}{
		{
			name:      "cantidad cero",
			in:        inventory.MovementInputDTO{ProductID: f.ids["Laptop"], ToLocationID: f.ref("X"), Quantity: 0},
			wantField: "quantity",
		},
		{
			name:      "cantidad negativa con extremos inválidos: gana cantidad",
			in:        inventory.MovementInputDTO{ProductID: missing, Quantity: -3},
			wantField: "quantity",
		},
		{
			name:      "sin extremos",
			in:        inventory.MovementInputDTO{ProductID: f.ids["Laptop"], Quantity: 5},
			wantField: "missing endpoint",
		},
		{
			name:      "mismo origen y destino",
			in:        inventory.MovementInputDTO{ProductID: f.ids["Laptop"], FromLocationID: f.ref("X"), ToLocationID: f.ref("X"), Quantity: 5},
			wantField: "same source and destination",
		},
		{
			name:    "producto inexistente",
			in:      inventory.MovementInputDTO{ProductID: missing, ToLocationID: f.ref("X"), Quantity: 5},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "ubicación inexistente",
			in:      inventory.MovementInputDTO{ProductID: f.ids["Laptop"], FromLocationID: &missing, Quantity: 5},
			wantErr: domain.ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.record.RecordMovement(f.ctx, tc.in)
			require.Error(t, err)
			if tc.wantField != "" {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.wantField, vErr.Field)
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	// Ningún rechazo dejó rastro en el libro
	recent, err := f.balances.ListRecentMovements(f.ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent.Items)
}

func TestRecordMovementFromRequest_IDsVacios(t *testing.T) {
	f := newFixture(t, []string{"Laptop"}, []string{"X"})
	out, err := f.record.RecordMovementFromRequest(f.ctx, dto.RecordMovementRequest{
		ProductID:      f.ids["Laptop"],
		FromLocationID: "  ",
		ToLocationID:   f.ids["X"],
		Quantity:       7,
	})
	require.NoError(t, err)
	assert.Nil(t, out.FromLocationID)
	require.NotNil(t, out.ToLocationID)
}
