package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

func seedEntity(t *testing.T, s *Store, kind entity.Kind, id, name string) {
	t.Helper()
	err := s.Run(context.Background(), func(repos repository.Repos) error {
		return repos.Catalog(kind).Create(context.Background(), &entity.Entity{
			Kind: kind, ID: id, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now(),
		})
	})
	require.NoError(t, err)
}

func TestRun_RollbackSiFnFalla(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	err := s.Run(ctx, func(repos repository.Repos) error {
		if err := repos.Products.Create(ctx, &entity.Entity{ID: "p1", Name: "Laptop"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.RunReadOnly(ctx, func(repos repository.Repos) error {
		n, err := repos.Products.Count(ctx)
		assert.Equal(t, 0, n, "la escritura no debe quedar aplicada")
		return err
	})
	require.NoError(t, err)
}

func TestRunReadOnly_RechazaEscrituras(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	err := s.RunReadOnly(ctx, func(repos repository.Repos) error {
		return repos.Locations.Create(ctx, &entity.Entity{ID: "l1", Name: "X"})
	})
	assert.Error(t, err)
}

func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewStore().Run(ctx, func(repository.Repos) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCatalog_NombreUnicoPorTipo(t *testing.T) {
	s := NewStore()
	seedEntity(t, s, entity.KindProduct, "p1", "Laptop")
	seedEntity(t, s, entity.KindLocation, "l1", "Laptop")

	err := s.Run(context.Background(), func(repos repository.Repos) error {
		return repos.Products.Create(context.Background(), &entity.Entity{ID: "p2", Name: "Laptop"})
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = s.Run(context.Background(), func(repos repository.Repos) error {
		return repos.Locations.Rename(context.Background(), "l1", "Laptop", time.Now())
	})
	assert.NoError(t, err, "renombrar a su propio nombre no choca consigo misma")
}

func TestMovements_RestriccionAlEliminar(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEntity(t, s, entity.KindProduct, "p1", "Laptop")
	seedEntity(t, s, entity.KindLocation, "l1", "X")
	seedEntity(t, s, entity.KindLocation, "l2", "Y")

	loc := "l1"
	err := s.Run(ctx, func(repos repository.Repos) error {
		return repos.Movements.Append(ctx, &entity.Movement{ProductID: "p1", ToLocationID: &loc, Quantity: 3})
	})
	require.NoError(t, err)

	err = s.Run(ctx, func(repos repository.Repos) error {
		return repos.Locations.Delete(ctx, "l1")
	})
	var ref *domain.ReferencedError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, 1, ref.Count)

	err = s.Run(ctx, func(repos repository.Repos) error {
		return repos.Locations.Delete(ctx, "l2")
	})
	assert.NoError(t, err)
}

func TestMovements_AppendVerificaReferencias(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEntity(t, s, entity.KindProduct, "p1", "Laptop")

	ghost := "nope"
	err := s.Run(ctx, func(repos repository.Repos) error {
		return repos.Movements.Append(ctx, &entity.Movement{ProductID: "p1", ToLocationID: &ghost, Quantity: 1})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.RunReadOnly(ctx, func(repos repository.Repos) error {
		n, err := repos.Movements.Count(ctx)
		assert.Equal(t, 0, n)
		return err
	})
	require.NoError(t, err)
}

func TestMovements_ListRecentConNombresActuales(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEntity(t, s, entity.KindProduct, "p1", "Laptop")
	seedEntity(t, s, entity.KindLocation, "l1", "X")

	loc := "l1"
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	err := s.Run(ctx, func(repos repository.Repos) error {
		for i := 0; i < 3; i++ {
			m := &entity.Movement{Timestamp: base.Add(time.Duration(i) * time.Minute), ProductID: "p1", ToLocationID: &loc, Quantity: 1}
			if err := repos.Movements.Append(ctx, m); err != nil {
				return err
			}
		}
		return repos.Locations.Rename(ctx, "l1", "Bodega", base)
	})
	require.NoError(t, err)

	err = s.RunReadOnly(ctx, func(repos repository.Repos) error {
		views, err := repos.Movements.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, int64(3), views[0].ID)
		assert.Equal(t, int64(2), views[1].ID)
		assert.Equal(t, "Bodega", views[0].ToLocationName)
		assert.Equal(t, "", views[0].FromLocationName)
		return nil
	})
	require.NoError(t, err)
}

func TestCatalog_GetForShareDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedEntity(t, s, entity.KindLocation, "l1", "Bodega Norte")

	err := s.RunReadOnly(ctx, func(repos repository.Repos) error {
		e, err := repos.Locations.GetForShare(ctx, "l1")
		require.NoError(t, err)
		require.NotNil(t, e)
		e.Name = "modificado fuera del store"

		again, err := repos.Locations.GetForUpdate(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, "Bodega Norte", again.Name)

		missing, err := repos.Locations.GetForShare(ctx, "no-existe")
		assert.NoError(t, err)
		assert.Nil(t, missing)

		other, err := repos.Products.GetForShare(ctx, "l1")
		assert.NoError(t, err)
		assert.Nil(t, other, "cada repositorio atiende un solo tipo")
		return nil
	})
	require.NoError(t, err)
}
