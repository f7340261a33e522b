package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Límites de longitud para el nombre del cliente.
const (
	NameMinLen = 2
	NameMaxLen = 100
)

// ValidateClient evalúa todas las reglas de dominio sobre el cliente y
// devuelve la lista completa de violaciones (no corta en la primera).
// Puro y determinista: sin I/O, sin estado. Lista vacía = cliente válido.
//
// Reglas:
//   - name: obligatorio, longitud entre 2 y 100 (ambas reglas se evalúan,
//     un nombre vacío produce las dos violaciones).
//   - email: obligatorio, gramática permisiva (ver validEmail).
//   - logo: nil es válido (sin logotipo); no-nil de longitud cero es
//     violación, nunca se interpreta como "sin logotipo".
func ValidateClient(c *entity.Client) []domain.Violation {
	var violations []domain.Violation

	if c.Name == "" {
		violations = append(violations, domain.Violation{
			Field: "name", Message: "el nombre es obligatorio",
		})
	}
	if n := utf8.RuneCountInString(c.Name); n < NameMinLen || n > NameMaxLen {
		violations = append(violations, domain.Violation{
			Field: "name", Message: "el nombre debe tener entre 2 y 100 caracteres",
		})
	}

	if c.Email == "" {
		violations = append(violations, domain.Violation{
			Field: "email", Message: "el email es obligatorio",
		})
	} else if !validEmail(c.Email) {
		violations = append(violations, domain.Violation{
			Field: "email", Message: "email inválido",
		})
	}

	if c.Logo != nil && len(c.Logo) == 0 {
		violations = append(violations, domain.Violation{
			Field: "logo", Message: "el archivo de logotipo no puede estar vacío",
		})
	}

	return violations
}

// validEmail gramática permisiva: exactamente una '@' que no sea ni el
// primer ni el último carácter. No exige punto en el dominio y tolera
// espacios internos.
func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.IndexByte(s[at+1:], '@') == -1
}
