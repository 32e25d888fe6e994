package entity

// StockBalance saldo derivado de un par (producto, ubicación). No se persiste:
// se recalcula desde el libro en cada reporte.
type StockBalance struct {
	ProductID    string
	ProductName  string
	LocationID   string
	LocationName string
	Quantity     int64
}
