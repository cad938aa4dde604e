package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CountResponse respuesta de operaciones que devuelven un conteo
// (corrida mensual, importación, borrado total).
type CountResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}
