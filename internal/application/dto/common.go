package dto

// ErrorResponse cuerpo de error HTTP. Errors solo viene en fallos de validación,
// indexado por campo con el mensaje tal cual lo produce el motor de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
