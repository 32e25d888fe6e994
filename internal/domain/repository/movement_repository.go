package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos (solo inserción).
type MovementRepository interface {
	// Append persiste el movimiento y asigna m.ID.
	Append(ctx context.Context, m *entity.Movement) error
	// ListRecent devuelve hasta limit movimientos, más recientes primero por timestamp.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementView, error)
	// ListAll devuelve el libro completo en orden de inserción (ID ascendente).
	ListAll(ctx context.Context) ([]*entity.Movement, error)
	// CountReferences cuenta los movimientos que referencian la entidad indicada.
	CountReferences(ctx context.Context, kind entity.Kind, id string) (int, error)
	Count(ctx context.Context) (int, error)
}
