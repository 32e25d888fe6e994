package dto

// ErrorResponse cuerpo de error HTTP.
// Field y Count solo se incluyen en errores de validación y de integridad referencial.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Count   int    `json:"count,omitempty"`
}
