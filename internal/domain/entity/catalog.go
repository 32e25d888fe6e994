package entity

import "time"

// Kind distingue los dos espacios de nombres del catálogo.
type Kind string

// Tipos de entidad del catálogo.
const (
	KindProduct  Kind = "product"
	KindLocation Kind = "location"
)

// Valid indica si k es un tipo de entidad conocido.
func (k Kind) Valid() bool {
	return k == KindProduct || k == KindLocation
}

// Entity representa un producto o una ubicación (bodega, estante, etc.).
// El ID es inmutable; Name es único dentro de su Kind.
type Entity struct {
	Kind      Kind
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
