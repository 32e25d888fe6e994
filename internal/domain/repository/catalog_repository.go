package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para productos o ubicaciones (DIP).
// Una instancia atiende un solo Kind. Los Get* devuelven (nil, nil) si el ID no existe.
type CatalogRepository interface {
	Kind() entity.Kind
	Create(ctx context.Context, e *entity.Entity) error
	GetByName(ctx context.Context, name string) (*entity.Entity, error)
	// GetForShare bloquea la fila en modo compartido: impide que se borre o renombre
	// mientras la transacción que registra un movimiento sigue abierta.
	GetForShare(ctx context.Context, id string) (*entity.Entity, error)
	// GetForUpdate bloquea la fila en modo exclusivo (renombrar / eliminar).
	GetForUpdate(ctx context.Context, id string) (*entity.Entity, error)
	Rename(ctx context.Context, id, name string, at time.Time) error
	List(ctx context.Context) ([]*entity.Entity, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
