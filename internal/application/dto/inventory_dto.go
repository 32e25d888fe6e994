package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// from_location_id vacío = entrada; to_location_id vacío = salida.
type RecordMovementRequest struct {
	ProductID      string     `json:"product_id"`
	FromLocationID string     `json:"from_location_id,omitempty"`
	ToLocationID   string     `json:"to_location_id,omitempty"`
	Quantity       int64      `json:"quantity"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// MovementResponse movimiento tal como quedó registrado.
type MovementResponse struct {
	ID             int64     `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ProductID      string    `json:"product_id"`
	FromLocationID *string   `json:"from_location_id"`
	ToLocationID   *string   `json:"to_location_id"`
	Quantity       int64     `json:"quantity"`
}

// MovementViewResponse movimiento con nombres del catálogo; los extremos ausentes se muestran como "—".
type MovementViewResponse struct {
	ID               int64     `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	FromLocationID   *string   `json:"from_location_id"`
	FromLocationName string    `json:"from_location_name"`
	ToLocationID     *string   `json:"to_location_id"`
	ToLocationName   string    `json:"to_location_name"`
	Quantity         int64     `json:"quantity"`
}

// MovementListResponse movimientos recientes.
type MovementListResponse struct {
	Items []MovementViewResponse `json:"items"`
	Limit int                    `json:"limit"`
}

// StockBalanceResponse saldo actual de un producto en una ubicación.
type StockBalanceResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int64  `json:"quantity"`
}

// StockReportResponse reporte de existencias. Anomalies lista los pares con saldo negativo,
// que no forman parte de Balances.
type StockReportResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Balances    []StockBalanceResponse `json:"balances"`
	Anomalies   []StockBalanceResponse `json:"anomalies"`
}
