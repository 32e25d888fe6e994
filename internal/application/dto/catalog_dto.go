package dto

import "time"

// CreateEntityRequest entrada para crear un producto o una ubicación.
type CreateEntityRequest struct {
	Name string `json:"name"`
}

// RenameEntityRequest entrada para renombrar un producto o una ubicación.
type RenameEntityRequest struct {
	Name string `json:"name"`
}

// EntityResponse salida de un producto o una ubicación.
type EntityResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityListResponse listado completo ordenado por nombre.
type EntityListResponse struct {
	Items []EntityResponse `json:"items"`
	Total int              `json:"total"`
}
