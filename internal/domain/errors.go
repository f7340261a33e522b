package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateEmail     = errors.New("ya existe un cliente con ese email")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Violation una regla de dominio incumplida sobre un campo del cliente.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones detectadas por el validador.
// Un ValidationError no vacío significa "no se debe persistir".
type ValidationError struct {
	Violations []Violation
}

// Error implementa error concatenando los mensajes de las violaciones.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validación fallida"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validación fallida: " + strings.Join(msgs, "; ")
}

// AsValidationError devuelve el *ValidationError envuelto en err, o nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
