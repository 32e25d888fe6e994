package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// CatalogUseCase alta, renombre, baja y listado de productos y ubicaciones.
// Cada operación corre en su propia transacción.
type CatalogUseCase struct {
	txRunner inventory.TxRunner
	guard    inventory.IntegrityGuard
	log      zerolog.Logger
	now      func() time.Time
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner inventory.TxRunner, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{txRunner: txRunner, log: log, now: time.Now}
}

// Add crea una entidad con un ID nuevo. ValidationError si el nombre queda vacío,
// ConflictError si ya existe otra del mismo tipo con ese nombre.
func (uc *CatalogUseCase) Add(ctx context.Context, kind entity.Kind, name string) (*dto.EntityResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	name, err := domaininv.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	e := &entity.Entity{
		Kind:      kind,
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		repo := repos.Catalog(kind)
		existing, err := repo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.ConflictError{Resource: string(kind), Name: name}
		}
		return repo.Create(ctx, e)
	})
	if err != nil {
		return nil, domain.WrapStorage("crear "+string(kind), err)
	}
	uc.log.Info().Str("kind", string(kind)).Str("id", e.ID).Str("name", e.Name).Msg("entidad creada")
	return toEntityResponse(e), nil
}

// Rename cambia solo el nombre visible; los movimientos guardan el ID y no se ven afectados.
func (uc *CatalogUseCase) Rename(ctx context.Context, kind entity.Kind, id, newName string) (*dto.EntityResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var (
		updated *entity.Entity
		oldName string
	)
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		repo := repos.Catalog(kind)
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &domain.NotFoundError{Resource: string(kind), ID: id}
		}
		name, err := domaininv.NormalizeName(newName)
		if err != nil {
			return err
		}
		oldName = current.Name
		updated = current
		if name == current.Name {
			return nil
		}
		other, err := repo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if other != nil && other.ID != id {
			return &domain.ConflictError{Resource: string(kind), Name: name}
		}
		at := uc.now()
		if err := repo.Rename(ctx, id, name, at); err != nil {
			return err
		}
		updated.Name = name
		updated.UpdatedAt = at
		return nil
	})
	if err != nil {
		return nil, domain.WrapStorage("renombrar "+string(kind), err)
	}
	uc.log.Info().Str("kind", string(kind)).Str("id", id).Str("from", oldName).Str("to", updated.Name).Msg("entidad renombrada")
	return toEntityResponse(updated), nil
}

// Remove elimina la entidad solo si ningún movimiento la referencia. La verificación y el DELETE
// ocurren en la misma transacción con la fila bloqueada.
func (uc *CatalogUseCase) Remove(ctx context.Context, kind entity.Kind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	var name string
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		repo := repos.Catalog(kind)
		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return &domain.NotFoundError{Resource: string(kind), ID: id}
		}
		name = current.Name
		if err := uc.guard.AssertRemovable(ctx, repos.Movements, kind, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		var ref *domain.ReferencedError
		if errors.As(err, &ref) {
			uc.log.Warn().Str("kind", string(kind)).Str("id", id).Int("references", ref.Count).Msg("eliminación rechazada")
		}
		return domain.WrapStorage("eliminar "+string(kind), err)
	}
	uc.log.Info().Str("kind", string(kind)).Str("id", id).Str("name", name).Msg("entidad eliminada")
	return nil
}

// List devuelve todas las entidades del tipo, ordenadas por nombre ascendente.
func (uc *CatalogUseCase) List(ctx context.Context, kind entity.Kind) (*dto.EntityListResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var list []*entity.Entity
	err := uc.txRunner.RunReadOnly(ctx, func(repos repository.Repos) error {
		var err error
		list, err = repos.Catalog(kind).List(ctx)
		return err
	})
	if err != nil {
		return nil, domain.WrapStorage("listar "+string(kind), err)
	}
	items := make([]dto.EntityResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntityResponse(e))
	}
	return &dto.EntityListResponse{Items: items, Total: len(items)}, nil
}

func checkKind(kind entity.Kind) error {
	if !kind.Valid() {
		return domain.NewValidationError("kind", "tipo de entidad desconocido: "+string(kind))
	}
	return nil
}

func toEntityResponse(e *entity.Entity) *dto.EntityResponse {
	if e == nil {
		return nil
	}
	return &dto.EntityResponse{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
