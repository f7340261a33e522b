package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/internal/domain/validation"
)

// ClientUseCase orquesta el ciclo de vida del agregado Client: construir,
// validar, verificar unicidad de email y delegar en el repositorio. Es el
// único componente con el que hablan los handlers. Sin estado compartido
// entre llamadas: todo el estado vive en la base.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve todos los clientes en proyección ligera (sin logo).
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientSummaryResponse, error) {
	clients, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientSummaryResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ClientSummaryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		})
	}
	return out, nil
}

// GetByID devuelve el detalle completo de un cliente (logo y direcciones).
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int) (*dto.ClientDetailResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toDetailResponse(client), nil
}

// Create crea un cliente. Orden estricto y contractual de las etapas:
// 1) construir el agregado, 2) validar reglas de dominio, 3) pre-chequeo de
// unicidad de email, 4) escritura. Cada etapa depende del resultado de la
// anterior; la validación nunca llega a la base y el pre-chequeo nunca se
// salta. Ante una carrera entre dos Create con el mismo email, el índice
// único de la base es el árbitro final y se reporta igual como
// domain.ErrDuplicateEmail.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResultResponse, error) {
	client := buildClient(0, in.Name, in.Email, in.Phone, in.Logo, in.Addresses)

	if violations := validation.ValidateClient(client); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	exists, err := uc.repo.EmailExists(ctx, client.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	if err := uc.repo.Add(ctx, client); err != nil {
		return nil, err
	}
	return &dto.ClientResultResponse{ID: client.ID, Name: client.Name}, nil
}

// Update actualiza un cliente existente reemplazando por completo su
// conjunto de direcciones. A diferencia de Create, aquí no se re-chequea la
// unicidad de email contra otros clientes: es una asimetría deliberada del
// contrato (el índice único de la base sigue vigente y una colisión real se
// reporta como domain.ErrDuplicateEmail desde el repositorio).
func (uc *ClientUseCase) Update(ctx context.Context, in dto.UpdateClientRequest) error {
	client := buildClient(in.ID, in.Name, in.Email, in.Phone, in.Logo, in.Addresses)

	if violations := validation.ValidateClient(client); len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}

	return uc.repo.Update(ctx, client)
}

// Remove borra un cliente; sus direcciones caen en cascada en el esquema.
// Idempotente para el caller: borrar un id inexistente no es un error.
func (uc *ClientUseCase) Remove(ctx context.Context, id int) error {
	return uc.repo.Remove(ctx, id)
}

// buildClient arma el agregado desde la entrada. El client_id de cada
// dirección se deja en cero: lo fuerza la capa de persistencia.
func buildClient(id int, name, email, phone string, logo []byte, addrs []dto.AddressInput) *entity.Client {
	client := &entity.Client{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
		Logo:  logo,
	}
	for _, a := range addrs {
		client.Addresses = append(client.Addresses, entity.Address{
			Street:       a.Street,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			PostalCode:   a.PostalCode,
		})
	}
	return client
}

func toDetailResponse(c *entity.Client) *dto.ClientDetailResponse {
	out := &dto.ClientDetailResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Logo:      c.Logo,
		Addresses: make([]dto.AddressResponse, 0, len(c.Addresses)),
	}
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			ID:           a.ID,
			ClientID:     a.ClientID,
			Street:       a.Street,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			PostalCode:   a.PostalCode,
		})
	}
	return out
}
