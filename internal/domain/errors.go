package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrReferenced   = errors.New("recurso referenciado por movimientos")
	ErrStorage      = errors.New("almacenamiento no disponible")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError entrada mal formada. Field identifica la regla violada
// ("name", "quantity", "missing endpoint", "same source and destination").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError el identificador referenciado no existe.
type NotFoundError struct {
	Resource string // "product" | "location"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError nombre duplicado dentro del mismo tipo de entidad.
type ConflictError struct {
	Resource string
	Name     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s con nombre %q ya existe", e.Resource, e.Name)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ReferencedError la eliminación fue rechazada porque hay movimientos que referencian la entidad.
// Count puede ser 0 si el rechazo vino de la llave foránea y no del conteo previo.
type ReferencedError struct {
	Resource string
	ID       string
	Count    int
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s %q tiene %d movimiento(s) asociados", e.Resource, e.ID, e.Count)
}

func (e *ReferencedError) Unwrap() error { return ErrReferenced }

// StorageError fallo del almacenamiento subyacente. No se reintenta dentro del núcleo.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStorage) sin perder la causa original en Unwrap.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// WrapStorage deja pasar los errores de dominio y envuelve el resto como StorageError.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomainError indica si err pertenece a la taxonomía de dominio.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrNotFound, ErrConflict, ErrReferenced,
		ErrStorage, ErrUnauthorized, ErrForbidden,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
