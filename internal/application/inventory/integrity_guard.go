package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// IntegrityGuard decide si una entidad del catálogo puede eliminarse.
// Debe recibir el MovementRepository de la misma transacción que hará el DELETE.
type IntegrityGuard struct{}

// CanRemove devuelve si la entidad no tiene movimientos y cuántos la referencian.
func (IntegrityGuard) CanRemove(ctx context.Context, movements repository.MovementRepository, kind entity.Kind, id string) (bool, int, error) {
	n, err := movements.CountReferences(ctx, kind, id)
	if err != nil {
		return false, 0, err
	}
	return n == 0, n, nil
}

// AssertRemovable devuelve ReferencedError si algún movimiento referencia la entidad.
func (g IntegrityGuard) AssertRemovable(ctx context.Context, movements repository.MovementRepository, kind entity.Kind, id string) error {
	ok, n, err := g.CanRemove(ctx, movements, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ReferencedError{Resource: string(kind), ID: id, Count: n}
	}
	return nil
}
