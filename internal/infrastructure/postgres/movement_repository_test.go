package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

func fkViolation(constraint string) error {
	return fmt.Errorf("insert movement: %w", &pgconn.PgError{Code: "23503", ConstraintName: constraint})
}

func TestMissingReference_PorConstraint(t *testing.T) {
	from, to := "loc-origen", "loc-destino"
	m := &entity.Movement{ProductID: "prod-1", FromLocationID: &from, ToLocationID: &to, Quantity: 3}

	cases := []struct {
		constraint string
		resource   string
		id         string
	}{
		{fkMovementProduct, "product", "prod-1"},
		{fkMovementFrom, "location", "loc-origen"},
		{fkMovementTo, "location", "loc-destino"},
	}
	for _, tc := range cases {
		err := fkViolation(tc.constraint)
		assert.True(t, isForeignKeyViolation(err))
		assert.Equal(t, tc.constraint, pgConstraintName(err))

		nf := missingReference(pgConstraintName(err), m)
		assert.Equal(t, tc.resource, nf.Resource, tc.constraint)
		assert.Equal(t, tc.id, nf.ID, tc.constraint)
		assert.ErrorIs(t, nf, domain.ErrNotFound)
	}
}

func TestPgConstraintName_ErrorAjeno(t *testing.T) {
	assert.Empty(t, pgConstraintName(errors.New("conexión cerrada")))
	assert.False(t, isForeignKeyViolation(errors.New("conexión cerrada")))
}

func TestSchemaSQL_NombraLasLlavesForaneas(t *testing.T) {
	ddl := SchemaSQL()
	for _, name := range []string{fkMovementProduct, fkMovementFrom, fkMovementTo} {
		assert.Contains(t, ddl, name)
	}
	assert.Contains(t, ddl, "quantity <= 2147483647")
}
