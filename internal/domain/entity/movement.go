package entity

import "time"

// Movement es un registro inmutable del libro de movimientos.
// FromLocationID nil = entrada de stock; ToLocationID nil = salida; ambos = traslado.
type Movement struct {
	ID             int64 // secuencia asignada por el almacenamiento, nunca reutilizada
	Timestamp      time.Time
	ProductID      string
	FromLocationID *string
	ToLocationID   *string
	Quantity       int64
}

// MovementView movimiento con los nombres actuales del catálogo resueltos.
// Un extremo ausente queda con nombre vacío.
type MovementView struct {
	ID               int64
	Timestamp        time.Time
	Quantity         int64
	ProductID        string
	ProductName      string
	FromLocationID   *string
	FromLocationName string
	ToLocationID     *string
	ToLocationName   string
}
