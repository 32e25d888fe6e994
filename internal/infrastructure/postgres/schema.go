package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate aplica el esquema (tablas, restricciones, índices y trigger de solo inserción).
// Exec sin argumentos usa el protocolo simple, así que acepta varias sentencias.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SchemaSQL devuelve el DDL embebido (para revisarlo o aplicarlo a mano).
func SchemaSQL() string { return schemaSQL }
