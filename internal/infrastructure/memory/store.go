// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa en desarrollo (STORE_DRIVER=memory) y en los tests; no persiste entre reinicios.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

var errReadOnly = errors.New("memory: escritura en transacción de solo lectura")

type state struct {
	products  map[string]*entity.Entity
	locations map[string]*entity.Entity
	movements []*entity.Movement // orden de inserción
	nextID    int64
}

func newState() *state {
	return &state{
		products:  make(map[string]*entity.Entity),
		locations: make(map[string]*entity.Entity),
		nextID:    1,
	}
}

// clone copia lo mutable; los movimientos son inmutables y se comparten.
func (s *state) clone() *state {
	c := &state{
		products:  make(map[string]*entity.Entity, len(s.products)),
		locations: make(map[string]*entity.Entity, len(s.locations)),
		movements: make([]*entity.Movement, len(s.movements)),
		nextID:    s.nextID,
	}
	for k, v := range s.products {
		e := *v
		c.products[k] = &e
	}
	for k, v := range s.locations {
		e := *v
		c.locations[k] = &e
	}
	copy(c.movements, s.movements)
	return c
}

func (s *state) catalog(kind entity.Kind) map[string]*entity.Entity {
	if kind == entity.KindLocation {
		return s.locations
	}
	return s.products
}

// Store almacenamiento en memoria. Las transacciones de escritura se serializan con un mutex
// y trabajan sobre una copia que solo reemplaza al estado vigente si fn termina sin error.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore construye un almacenamiento vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn con repositorios de escritura; todo o nada.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(reposFor(work, false)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// RunReadOnly ejecuta fn sobre el estado vigente; las escrituras fallan.
func (s *Store) RunReadOnly(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(reposFor(s.st, true))
}

func reposFor(st *state, readOnly bool) repository.Repos {
	return repository.Repos{
		Products:  &CatalogRepo{st: st, kind: entity.KindProduct, readOnly: readOnly},
		Locations: &CatalogRepo{st: st, kind: entity.KindLocation, readOnly: readOnly},
		Movements: &MovementRepo{st: st, readOnly: readOnly},
	}
}
