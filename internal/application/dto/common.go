package dto

import "github.com/jhoicas/clientes-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Violations solo se rellena para
// errores de validación de dominio.
type ErrorResponse struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Violations []domain.Violation `json:"violations,omitempty"`
}
