package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo productos o ubicaciones dentro de una transacción en memoria.
type CatalogRepo struct {
	st       *state
	kind     entity.Kind
	readOnly bool
}

func (r *CatalogRepo) Kind() entity.Kind { return r.kind }

func (r *CatalogRepo) Create(_ context.Context, e *entity.Entity) error {
	if r.readOnly {
		return errReadOnly
	}
	m := r.st.catalog(r.kind)
	if _, ok := m[e.ID]; ok {
		return fmt.Errorf("create %s: id %q duplicado", r.kind, e.ID)
	}
	for _, other := range m {
		if other.Name == e.Name {
			return &domain.ConflictError{Resource: string(r.kind), Name: e.Name}
		}
	}
	c := *e
	c.Kind = r.kind
	m[e.ID] = &c
	return nil
}

// get devuelve una copia de la entidad o nil si no existe.
func (r *CatalogRepo) get(id string) (*entity.Entity, error) {
	if e, ok := r.st.catalog(r.kind)[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (r *CatalogRepo) GetByName(_ context.Context, name string) (*entity.Entity, error) {
	for _, e := range r.st.catalog(r.kind) {
		if e.Name == name {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

// GetForShare no bloquea nada: el mutex del Store ya serializa las transacciones.
func (r *CatalogRepo) GetForShare(_ context.Context, id string) (*entity.Entity, error) {
	return r.get(id)
}

func (r *CatalogRepo) GetForUpdate(_ context.Context, id string) (*entity.Entity, error) {
	return r.get(id)
}

func (r *CatalogRepo) Rename(_ context.Context, id, name string, at time.Time) error {
	if r.readOnly {
		return errReadOnly
	}
	m := r.st.catalog(r.kind)
	e, ok := m[id]
	if !ok {
		return &domain.NotFoundError{Resource: string(r.kind), ID: id}
	}
	for _, other := range m {
		if other.ID != id && other.Name == name {
			return &domain.ConflictError{Resource: string(r.kind), Name: name}
		}
	}
	e.Name = name
	e.UpdatedAt = at
	return nil
}

func (r *CatalogRepo) List(_ context.Context) ([]*entity.Entity, error) {
	m := r.st.catalog(r.kind)
	list := make([]*entity.Entity, 0, len(m))
	for _, e := range m {
		c := *e
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Delete aplica restricción de llave foránea: rechaza si algún movimiento referencia la entidad.
func (r *CatalogRepo) Delete(_ context.Context, id string) error {
	if r.readOnly {
		return errReadOnly
	}
	if n := countReferences(r.st.movements, r.kind, id); n > 0 {
		return &domain.ReferencedError{Resource: string(r.kind), ID: id, Count: n}
	}
	m := r.st.catalog(r.kind)
	if _, ok := m[id]; !ok {
		return &domain.NotFoundError{Resource: string(r.kind), ID: id}
	}
	delete(m, id)
	return nil
}

func (r *CatalogRepo) Count(_ context.Context) (int, error) {
	return len(r.st.catalog(r.kind)), nil
}
