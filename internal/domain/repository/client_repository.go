package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClientQueries lado de lectura del agregado Client (proyecciones).
type ClientQueries interface {
	// ListAll proyección ligera: id, name, email, phone y direcciones.
	// La columna logo nunca se materializa en este camino.
	ListAll(ctx context.Context) ([]entity.Client, error)
	// GetByID proyección completa (incluye logo y direcciones).
	// Devuelve (nil, nil) si el cliente no existe.
	GetByID(ctx context.Context, id int) (*entity.Client, error)
	// EmailExists refleja solo datos confirmados (committed).
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ClientCommands lado de escritura del agregado Client. Las tres operaciones
// son el único punto por donde se muta el agregado; cada una es atómica.
type ClientCommands interface {
	// Add inserta la raíz, obtiene el id generado e inserta cada dirección
	// con client_id forzado al nuevo id. Devuelve domain.ErrDuplicateEmail
	// si el índice único de email lo rechaza.
	Add(ctx context.Context, client *entity.Client) error
	// Update actualiza la raíz por id (domain.ErrNotFound si no existe) y
	// reemplaza por completo el conjunto de direcciones: borra las
	// existentes y reinserta las suministradas con identidad nueva.
	Update(ctx context.Context, client *entity.Client) error
	// Remove borra la raíz; las direcciones caen por la regla de cascada
	// del esquema. Borrar un id inexistente no es un error.
	Remove(ctx context.Context, id int) error
}

// ClientRepository puerto de persistencia completo del agregado Client:
// consultas OR-mapped y comandos procedurales, claramente separados.
type ClientRepository interface {
	ClientQueries
	ClientCommands
}
