package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos dentro de una transacción en memoria.
type MovementRepo struct {
	st       *state
	readOnly bool
}

// Append verifica las referencias (equivalente a las llaves foráneas) y asigna la siguiente secuencia.
func (r *MovementRepo) Append(_ context.Context, m *entity.Movement) error {
	if r.readOnly {
		return errReadOnly
	}
	if _, ok := r.st.products[m.ProductID]; !ok {
		return &domain.NotFoundError{Resource: string(entity.KindProduct), ID: m.ProductID}
	}
	for _, loc := range []*string{m.FromLocationID, m.ToLocationID} {
		if loc == nil {
			continue
		}
		if _, ok := r.st.locations[*loc]; !ok {
			return &domain.NotFoundError{Resource: string(entity.KindLocation), ID: *loc}
		}
	}
	m.ID = r.st.nextID
	r.st.nextID++
	c := *m
	c.FromLocationID = copyPtr(m.FromLocationID)
	c.ToLocationID = copyPtr(m.ToLocationID)
	r.st.movements = append(r.st.movements, &c)
	return nil
}

func (r *MovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.MovementView, error) {
	ordered := make([]*entity.Movement, len(r.st.movements))
	copy(ordered, r.st.movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	})
	if limit >= 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	views := make([]*entity.MovementView, 0, len(ordered))
	for _, m := range ordered {
		v := &entity.MovementView{
			ID:             m.ID,
			Timestamp:      m.Timestamp,
			Quantity:       m.Quantity,
			ProductID:      m.ProductID,
			FromLocationID: copyPtr(m.FromLocationID),
			ToLocationID:   copyPtr(m.ToLocationID),
		}
		if p, ok := r.st.products[m.ProductID]; ok {
			v.ProductName = p.Name
		}
		if m.FromLocationID != nil {
			if l, ok := r.st.locations[*m.FromLocationID]; ok {
				v.FromLocationName = l.Name
			}
		}
		if m.ToLocationID != nil {
			if l, ok := r.st.locations[*m.ToLocationID]; ok {
				v.ToLocationName = l.Name
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *MovementRepo) ListAll(_ context.Context) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.st.movements))
	for _, m := range r.st.movements {
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

func (r *MovementRepo) CountReferences(_ context.Context, kind entity.Kind, id string) (int, error) {
	return countReferences(r.st.movements, kind, id), nil
}

func (r *MovementRepo) Count(_ context.Context) (int, error) {
	return len(r.st.movements), nil
}

func countReferences(movements []*entity.Movement, kind entity.Kind, id string) int {
	n := 0
	for _, m := range movements {
		switch kind {
		case entity.KindProduct:
			if m.ProductID == id {
				n++
			}
		case entity.KindLocation:
			if (m.FromLocationID != nil && *m.FromLocationID == id) ||
				(m.ToLocationID != nil && *m.ToLocationID == id) {
				n++
			}
		}
	}
	return n
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
