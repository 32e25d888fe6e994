package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// Nombres de las llaves foráneas de movements (schema.sql).
const (
	fkMovementProduct = "movements_product_id_fkey"
	fkMovementFrom    = "movements_from_location_id_fkey"
	fkMovementTo      = "movements_to_location_id_fkey"
)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append inserta el movimiento; la secuencia la asigna la columna IDENTITY.
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (occurred_at, product_id, from_location_id, to_location_id, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Timestamp, m.ProductID, m.FromLocationID, m.ToLocationID, m.Quantity,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return missingReference(pgConstraintName(err), m)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// missingReference identifica por el nombre del constraint qué referencia del movimiento no existe.
func missingReference(constraint string, m *entity.Movement) *domain.NotFoundError {
	switch constraint {
	case fkMovementFrom:
		return &domain.NotFoundError{Resource: string(entity.KindLocation), ID: derefID(m.FromLocationID)}
	case fkMovementTo:
		return &domain.NotFoundError{Resource: string(entity.KindLocation), ID: derefID(m.ToLocationID)}
	default: // fkMovementProduct
		return &domain.NotFoundError{Resource: string(entity.KindProduct), ID: m.ProductID}
	}
}

func derefID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// ListRecent devuelve hasta limit movimientos con los nombres actuales, más recientes primero.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementView, error) {
	query := `
		SELECT m.id, m.occurred_at, m.quantity,
		       m.product_id, COALESCE(p.name, ''),
		       m.from_location_id, COALESCE(lf.name, ''),
		       m.to_location_id, COALESCE(lt.name, '')
		FROM movements m
		LEFT JOIN products p   ON p.id = m.product_id
		LEFT JOIN locations lf ON lf.id = m.from_location_id
		LEFT JOIN locations lt ON lt.id = m.to_location_id
		ORDER BY m.occurred_at DESC, m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementView
	for rows.Next() {
		var v entity.MovementView
		if err := rows.Scan(
			&v.ID, &v.Timestamp, &v.Quantity,
			&v.ProductID, &v.ProductName,
			&v.FromLocationID, &v.FromLocationName,
			&v.ToLocationID, &v.ToLocationName,
		); err != nil {
			return nil, fmt.Errorf("scan movement view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListAll devuelve el libro completo en orden de secuencia.
func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	query := `
		SELECT id, occurred_at, product_id, from_location_id, to_location_id, quantity
		FROM movements ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Timestamp, &m.ProductID, &m.FromLocationID, &m.ToLocationID, &m.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountReferences cuenta los movimientos que apuntan al producto o a la ubicación.
func (r *MovementRepo) CountReferences(ctx context.Context, kind entity.Kind, id string) (int, error) {
	if !validUUID(id) {
		return 0, nil
	}
	var query string
	switch kind {
	case entity.KindProduct:
		query = `SELECT count(*) FROM movements WHERE product_id = $1`
	case entity.KindLocation:
		query = `SELECT count(*) FROM movements WHERE from_location_id = $1 OR to_location_id = $1`
	default:
		return 0, fmt.Errorf("count references: kind %q desconocido", kind)
	}
	var n int
	if err := r.q.QueryRow(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count references: %w", err)
	}
	return n, nil
}

func (r *MovementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
