package repository

import "github.com/jhoicas/stock-ledger/internal/domain/entity"

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Products  CatalogRepository
	Locations CatalogRepository
	Movements MovementRepository
}

// Catalog devuelve el repositorio del tipo de entidad indicado.
func (r Repos) Catalog(kind entity.Kind) CatalogRepository {
	if kind == entity.KindLocation {
		return r.Locations
	}
	return r.Products
}
