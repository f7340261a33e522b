package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func validClient() *entity.Client {
	return &entity.Client{Name: "Acme", Email: "a@acme.com"}
}

func fieldsOf(violations []domain.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Field)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateClient_ClienteValido_SinViolaciones(t *testing.T) {
	violations := validation.ValidateClient(validClient())
	assert.Empty(t, violations)
}

// Un nombre vacío incumple dos reglas a la vez: obligatoriedad y longitud.
func TestValidateClient_NombreVacio_DosViolaciones(t *testing.T) {
	c := validClient()
	c.Name = ""
	violations := validation.ValidateClient(c)
	require.Len(t, violations, 2)
	assert.Equal(t, []string{"name", "name"}, fieldsOf(violations))
}

func TestValidateClient_NombreDeUnCaracter_Violacion(t *testing.T) {
	c := validClient()
	c.Name = "A"
	violations := validation.ValidateClient(c)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)
}

func TestValidateClient_NombreDe101Caracteres_Violacion(t *testing.T) {
	c := validClient()
	c.Name = strings.Repeat("x", 101)
	violations := validation.ValidateClient(c)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)
}

// La longitud se mide en runas, no en bytes.
func TestValidateClient_NombreConAcentos_LongitudEnRunas(t *testing.T) {
	c := validClient()
	c.Name = strings.Repeat("ñ", 100) // 200 bytes, 100 runas
	assert.Empty(t, validation.ValidateClient(c))
}

func TestValidateClient_NombreDeDosCaracteres_Valido(t *testing.T) {
	c := validClient()
	c.Name = "Ab"
	assert.Empty(t, validation.ValidateClient(c))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de email (gramática permisiva)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateClient_EmailVacio_Violacion(t *testing.T) {
	c := validClient()
	c.Email = ""
	violations := validation.ValidateClient(c)
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
}

func TestValidateClient_EmailGramatica(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@acme.com", true},
		{"a@acme", true},       // no exige punto en el dominio
		{"a b@acme.com", true}, // tolera espacio interno
		{"a@b", true},
		{"sin-arroba", false},
		{"@acme.com", false},   // '@' al inicio
		{"a@", false},          // '@' al final
		{"a@@acme.com", false}, // más de una '@'
		{"a@acme@com", false},
	}
	for _, tc := range cases {
		c := validClient()
		c.Email = tc.email
		violations := validation.ValidateClient(c)
		if tc.valid {
			assert.Empty(t, violations, "email %q debería ser válido", tc.email)
		} else {
			require.Len(t, violations, 1, "email %q debería ser inválido", tc.email)
			assert.Equal(t, "email", violations[0].Field)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de logotipo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateClient_LogoNil_Valido(t *testing.T) {
	c := validClient()
	c.Logo = nil
	assert.Empty(t, validation.ValidateClient(c))
}

// Un logotipo presente pero de longitud cero es inválido, no "sin logotipo".
func TestValidateClient_LogoVacio_Violacion(t *testing.T) {
	c := validClient()
	c.Logo = []byte{}
	violations := validation.ValidateClient(c)
	require.Len(t, violations, 1)
	assert.Equal(t, "logo", violations[0].Field)
}

func TestValidateClient_LogoConBytes_Valido(t *testing.T) {
	c := validClient()
	c.Logo = []byte{0x89, 0x50, 0x4e, 0x47}
	assert.Empty(t, validation.ValidateClient(c))
}

// ──────────────────────────────────────────────────────────────────────────────
// Acumulación de violaciones
// ──────────────────────────────────────────────────────────────────────────────

// Todas las reglas se evalúan: un cliente con nombre vacío, email malformado
// y logotipo vacío acumula violaciones de los tres campos (Escenario C).
func TestValidateClient_VariosCamposInvalidos_AcumulaTodas(t *testing.T) {
	c := &entity.Client{Name: "", Email: "bad", Logo: []byte{}}
	violations := validation.ValidateClient(c)
	fields := fieldsOf(violations)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "logo")
	require.Len(t, violations, 4) // name x2 (vacío + longitud), email, logo
}
