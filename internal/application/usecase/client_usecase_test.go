package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeClientRepo implementa repository.ClientRepository en memoria y registra
// el orden de las llamadas para poder verificar el contrato de secuencia del
// orquestador (validar → unicidad → escribir).
type fakeClientRepo struct {
	clients    map[int]*entity.Client
	nextID     int
	nextAddrID int
	calls      []string

	addErr error // error a devolver en Add (simula fallos del store)
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int]*entity.Client{}, nextID: 1, nextAddrID: 1}
}

func (f *fakeClientRepo) ListAll(ctx context.Context) ([]entity.Client, error) {
	f.calls = append(f.calls, "ListAll")
	out := make([]entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		// Proyección ligera: el logo nunca se materializa en el listado.
		cp := *c
		cp.Logo = nil
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id int) (*entity.Client, error) {
	f.calls = append(f.calls, "GetByID")
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	f.calls = append(f.calls, "EmailExists")
	for _, c := range f.clients {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) Add(ctx context.Context, client *entity.Client) error {
	f.calls = append(f.calls, "Add")
	if f.addErr != nil {
		return f.addErr
	}
	for _, c := range f.clients {
		if c.Email == client.Email {
			return domain.ErrDuplicateEmail // el índice único como árbitro final
		}
	}
	client.ID = f.nextID
	f.nextID++
	for i := range client.Addresses {
		client.Addresses[i].ID = f.nextAddrID
		client.Addresses[i].ClientID = client.ID
		f.nextAddrID++
	}
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	f.calls = append(f.calls, "Update")
	existing, ok := f.clients[client.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, c := range f.clients {
		if id != client.ID && c.Email == client.Email {
			return domain.ErrDuplicateEmail
		}
	}
	// Reemplazo total de direcciones con identidad nueva.
	existing.Name = client.Name
	existing.Email = client.Email
	existing.Phone = client.Phone
	existing.Logo = client.Logo
	existing.Addresses = nil
	for i := range client.Addresses {
		a := client.Addresses[i]
		a.ID = f.nextAddrID
		a.ClientID = client.ID
		f.nextAddrID++
		existing.Addresses = append(existing.Addresses, a)
	}
	return nil
}

func (f *fakeClientRepo) Remove(ctx context.Context, id int) error {
	f.calls = append(f.calls, "Remove")
	delete(f.clients, id)
	return nil
}

func newUC(t *testing.T) (*usecase.ClientUseCase, *fakeClientRepo) {
	t.Helper()
	repo := newFakeClientRepo()
	return usecase.NewClientUseCase(repo), repo
}

var sampleAddress = dto.AddressInput{
	Street:       "Calle 10 #5-31",
	Neighborhood: "Centro",
	City:         "Medellín",
	State:        "AN",
	PostalCode:   "050010",
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: creación válida devuelve {id positivo, nombre}.
func TestCreate_ClienteValido_DevuelveIDPositivo(t *testing.T) {
	uc, _ := newUC(t)
	result, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	assert.Positive(t, result.ID)
	assert.Equal(t, "Acme", result.Name)
}

// Escenario B: segundo Create con el mismo email falla con ErrDuplicateEmail.
func TestCreate_EmailDuplicado_Falla(t *testing.T) {
	uc, _ := newUC(t)
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme2", Email: "a@acme.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

// Escenario C: nombre vacío y email malformado producen violaciones de ambos
// campos, y el repositorio nunca se toca (P2: la validación es la puerta).
func TestCreate_ClienteInvalido_NoLlegaAlStore(t *testing.T) {
	uc, repo := newUC(t)
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "", Email: "bad"})

	ve := domain.AsValidationError(err)
	require.NotNil(t, ve)
	fields := map[string]bool{}
	for _, v := range ve.Violations {
		fields[v.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.Empty(t, repo.calls, "un cliente inválido no debe tocar el repositorio")
}

// Escenario E: logotipo de longitud cero es violación, no "sin logotipo".
func TestCreate_LogoVacio_Falla(t *testing.T) {
	uc, repo := newUC(t)
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name: "Logo Co", Email: "l@co.com", Logo: []byte{},
	})
	require.NotNil(t, domain.AsValidationError(err))
	assert.Empty(t, repo.calls)
}

// El orden de etapas es contractual: el pre-chequeo de unicidad siempre
// precede a la escritura.
func TestCreate_OrdenDeEtapas_UnicidadAntesDeEscribir(t *testing.T) {
	uc, repo := newUC(t)
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"EmailExists", "Add"}, repo.calls)
}

// Cuando el pre-chequeo detecta el duplicado, la escritura nunca se intenta.
func TestCreate_DuplicadoDetectadoEnPrechequeo_NoEscribe(t *testing.T) {
	uc, repo := newUC(t)
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	repo.calls = nil

	_, err = uc.Create(context.Background(), dto.CreateClientRequest{Name: "Otro", Email: "a@acme.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, []string{"EmailExists"}, repo.calls)
}

// P1 (carrera): si dos Create pasan el pre-chequeo, el store es el árbitro
// final y su violación de unicidad sale igualmente como ErrDuplicateEmail.
func TestCreate_CarreraResueltaPorElStore(t *testing.T) {
	uc, repo := newUC(t)
	repo.addErr = domain.ErrDuplicateEmail
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestCreate_ConDirecciones_ClientIDForzado(t *testing.T) {
	uc, _ := newUC(t)
	in := dto.CreateClientRequest{
		Name: "Acme", Email: "a@acme.com",
		Addresses: []dto.AddressInput{sampleAddress},
	}
	// El client_id que venga del caller se ignora siempre.
	in.Addresses[0].ID = 999
	result, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	detail, err := uc.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	require.Len(t, detail.Addresses, 1)
	assert.Equal(t, result.ID, detail.Addresses[0].ClientID)
	assert.NotEqual(t, 999, detail.Addresses[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// List y GetByID
// ──────────────────────────────────────────────────────────────────────────────

// P3: el listado nunca expone el logo; el detalle lo devuelve byte a byte.
func TestList_OmiteLogo_DetalleLoConserva(t *testing.T) {
	uc, _ := newUC(t)
	logo := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	result, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name: "Logo Co", Email: "l@co.com", Logo: logo,
	})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Logo Co", list[0].Name)

	detail, err := uc.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, logo, detail.Logo, "el detalle devuelve el logotipo intacto")
}

// Escenario D: id inexistente devuelve ErrNotFound.
func TestGetByID_Inexistente_NotFound(t *testing.T) {
	uc, _ := newUC(t)
	_, err := uc.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// P4: el update reemplaza el conjunto de direcciones por completo y las
// reinsertadas reciben identidad nueva.
func TestUpdate_ReemplazaDireccionesConIdentidadNueva(t *testing.T) {
	uc, _ := newUC(t)
	y := sampleAddress
	z := sampleAddress
	z.Street = "Carrera 7 #12-40"
	result, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name: "Acme", Email: "a@acme.com",
		Addresses: []dto.AddressInput{y, z},
	})
	require.NoError(t, err)

	before, err := uc.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	require.Len(t, before.Addresses, 2)
	oldIDs := map[int]bool{before.Addresses[0].ID: true, before.Addresses[1].ID: true}

	x := sampleAddress
	x.Street = "Avenida 80 #33-21"
	err = uc.Update(context.Background(), dto.UpdateClientRequest{
		ID: result.ID, Name: "Acme", Email: "a@acme.com",
		Addresses: []dto.AddressInput{x},
	})
	require.NoError(t, err)

	after, err := uc.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	require.Len(t, after.Addresses, 1)
	assert.Equal(t, "Avenida 80 #33-21", after.Addresses[0].Street)
	assert.False(t, oldIDs[after.Addresses[0].ID], "el id de la dirección debe ser nuevo, no reciclado")
}

func TestUpdate_ClienteInvalido_NoLlegaAlStore(t *testing.T) {
	uc, repo := newUC(t)
	err := uc.Update(context.Background(), dto.UpdateClientRequest{ID: 1, Name: "", Email: "bad"})
	require.NotNil(t, domain.AsValidationError(err))
	assert.Empty(t, repo.calls)
}

func TestUpdate_IDInexistente_NotFound(t *testing.T) {
	uc, _ := newUC(t)
	err := uc.Update(context.Background(), dto.UpdateClientRequest{ID: 42, Name: "Acme", Email: "a@acme.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Asimetría deliberada con Create: Update no re-chequea la unicidad de email
// contra otros clientes; va directo del validador a la escritura.
func TestUpdate_NoRechequeaUnicidadDeEmail(t *testing.T) {
	uc, repo := newUC(t)
	result, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	repo.calls = nil

	err = uc.Update(context.Background(), dto.UpdateClientRequest{
		ID: result.ID, Name: "Acme SA", Email: "nuevo@acme.com",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Update"}, repo.calls, "Update no debe llamar a EmailExists")
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

// P5: tras el borrado, el detalle devuelve NotFound y no queda ninguna
// dirección del cliente.
func TestRemove_BorraClienteYDireccionesEnCascada(t *testing.T) {
	uc, repo := newUC(t)
	result, err := uc.Create(context.Background(), dto.CreateClientRequest{
		Name: "Acme", Email: "a@acme.com",
		Addresses: []dto.AddressInput{sampleAddress},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(context.Background(), result.ID))

	_, err = uc.GetByID(context.Background(), result.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.clients)
}

// Borrar un id inexistente es éxito para el caller (idempotente).
func TestRemove_IDInexistente_EsIdempotente(t *testing.T) {
	uc, _ := newUC(t)
	assert.NoError(t, uc.Remove(context.Background(), 12345))
}

// El orquestador nunca reintenta en silencio: un fallo del store sube tal cual.
func TestCreate_ErrorDelStore_SePropaga(t *testing.T) {
	uc, repo := newUC(t)
	repo.addErr = errors.New("conexión perdida")
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Acme", Email: "a@acme.com"})
	require.Error(t, err)
	assert.Nil(t, domain.AsValidationError(err))
	assert.NotErrorIs(t, err, domain.ErrDuplicateEmail)
}
