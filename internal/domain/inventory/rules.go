package inventory

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

// NormalizeName recorta espacios y lleva el nombre a forma NFC para que
// "Café" escrito con o sin acento combinado no genere dos entidades distintas.
// Devuelve ValidationError si el resultado queda vacío.
func NormalizeName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" {
		return "", domain.NewValidationError("name", "el nombre no puede estar vacío")
	}
	return n, nil
}

// MaxQuantity tope por movimiento. Con este tope la suma de un par (producto, ubicación)
// cabe en int64 para cualquier cantidad realista de movimientos.
const MaxQuantity int64 = math.MaxInt32

// ValidateMovement aplica las reglas de forma de un movimiento, en orden; gana el primer fallo.
// No consulta el catálogo: la existencia de producto y ubicaciones se verifica dentro de la transacción.
func ValidateMovement(quantity int64, from, to *string) error {
	if quantity <= 0 {
		return domain.NewValidationError("quantity", "la cantidad debe ser un entero positivo")
	}
	if quantity > MaxQuantity {
		return domain.NewValidationError("quantity", fmt.Sprintf("la cantidad no puede superar %d", MaxQuantity))
	}
	if from == nil && to == nil {
		return domain.NewValidationError("missing endpoint", "el movimiento requiere ubicación de origen, de destino o ambas")
	}
	if from != nil && to != nil && *from == *to {
		return domain.NewValidationError("same source and destination", "origen y destino no pueden ser la misma ubicación")
	}
	return nil
}

// OptionalID convierte "" (o solo espacios) en nil.
func OptionalID(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}
