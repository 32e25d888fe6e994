package inventory

import (
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// BalanceReport resultado del pliegue del libro.
// Balances contiene solo saldos estrictamente positivos; Negative los grupos con suma < 0,
// que solo pueden aparecer si el libro quedó inconsistente (migraciones, cargas manuales).
type BalanceReport struct {
	Balances []entity.StockBalance
	Negative []entity.StockBalance
}

type pairKey struct {
	productID  string
	locationID string
}

// FoldBalances convierte cada movimiento en hasta dos líneas con signo (+qty en destino,
// -qty en origen), suma por (producto, ubicación) y resuelve nombres con los mapas id→nombre actuales.
// Los grupos cuyo producto o ubicación no está en los mapas se descartan (semántica de JOIN).
// Ambas listas salen ordenadas por nombre de producto y luego nombre de ubicación.
func FoldBalances(movements []*entity.Movement, productNames, locationNames map[string]string) BalanceReport {
	sums := make(map[pairKey]int64)
	for _, m := range movements {
		if m.ToLocationID != nil {
			sums[pairKey{m.ProductID, *m.ToLocationID}] += m.Quantity
		}
		if m.FromLocationID != nil {
			sums[pairKey{m.ProductID, *m.FromLocationID}] -= m.Quantity
		}
	}

	report := BalanceReport{
		Balances: make([]entity.StockBalance, 0, len(sums)),
	}
	for k, qty := range sums {
		if qty == 0 {
			continue
		}
		pName, okP := productNames[k.productID]
		lName, okL := locationNames[k.locationID]
		if !okP || !okL {
			continue
		}
		b := entity.StockBalance{
			ProductID:    k.productID,
			ProductName:  pName,
			LocationID:   k.locationID,
			LocationName: lName,
			Quantity:     qty,
		}
		if qty > 0 {
			report.Balances = append(report.Balances, b)
		} else {
			report.Negative = append(report.Negative, b)
		}
	}
	sortBalances(report.Balances)
	sortBalances(report.Negative)
	return report
}

// NameIndex construye el mapa id→nombre a partir de un listado del catálogo.
func NameIndex(entities []*entity.Entity) map[string]string {
	idx := make(map[string]string, len(entities))
	for _, e := range entities {
		idx[e.ID] = e.Name
	}
	return idx
}

func sortBalances(list []entity.StockBalance) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		// desempate estable
		return a.ProductID+a.LocationID < b.ProductID+b.LocationID
	})
}
