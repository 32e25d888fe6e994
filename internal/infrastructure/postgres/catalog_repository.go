package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL (usable con pool o tx).
// Una instancia atiende la tabla products o la tabla locations.
type CatalogRepo struct {
	q     Querier
	kind  entity.Kind
	table string
}

// NewProductRepository construye el adaptador para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q, kind: entity.KindProduct, table: "products"}
}

// NewLocationRepository construye el adaptador para ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q, kind: entity.KindLocation, table: "locations"}
}

func (r *CatalogRepo) Kind() entity.Kind { return r.kind }

// Create persiste la entidad. Nombre repetido → ConflictError.
func (r *CatalogRepo) Create(ctx context.Context, e *entity.Entity) error {
	query := `INSERT INTO ` + r.table + ` (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: string(r.kind), Name: e.Name}
		}
		return fmt.Errorf("insert %s: %w", r.kind, err)
	}
	return nil
}

// GetByName obtiene la entidad por nombre exacto (ya normalizado).
func (r *CatalogRepo) GetByName(ctx context.Context, name string) (*entity.Entity, error) {
	return r.getOne(ctx, "get by name", `WHERE name = $1`, name, false)
}

func (r *CatalogRepo) GetForShare(ctx context.Context, id string) (*entity.Entity, error) {
	return r.getOne(ctx, "lock share", `WHERE id = $1 FOR SHARE`, id, true)
}

func (r *CatalogRepo) GetForUpdate(ctx context.Context, id string) (*entity.Entity, error) {
	return r.getOne(ctx, "lock update", `WHERE id = $1 FOR UPDATE`, id, true)
}

func (r *CatalogRepo) getOne(ctx context.Context, op, where, arg string, byID bool) (*entity.Entity, error) {
	if byID && !validUUID(arg) {
		return nil, nil
	}
	query := `SELECT id, name, created_at, updated_at FROM ` + r.table + ` ` + where
	e := entity.Entity{Kind: r.kind}
	err := r.q.QueryRow(ctx, query, arg).Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", op, r.kind, err)
	}
	return &e, nil
}

// Rename cambia el nombre. Nombre tomado por otra entidad → ConflictError.
func (r *CatalogRepo) Rename(ctx context.Context, id, name string, at time.Time) error {
	query := `UPDATE ` + r.table + ` SET name = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, name, at)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: string(r.kind), Name: name}
		}
		return fmt.Errorf("rename %s: %w", r.kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: string(r.kind), ID: id}
	}
	return nil
}

// List devuelve todas las entidades ordenadas por nombre.
func (r *CatalogRepo) List(ctx context.Context) ([]*entity.Entity, error) {
	query := `SELECT id, name, created_at, updated_at FROM ` + r.table + ` ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	defer rows.Close()

	var list []*entity.Entity
	for rows.Next() {
		e := entity.Entity{Kind: r.kind}
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.kind, err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina la entidad. Si la llave foránea lo impide → ReferencedError.
func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ` + r.table + ` WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ReferencedError{Resource: string(r.kind), ID: id}
		}
		return fmt.Errorf("delete %s: %w", r.kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: string(r.kind), ID: id}
	}
	return nil
}

func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+r.table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.kind, err)
	}
	return n, nil
}
