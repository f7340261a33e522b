package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo repositorio completo del agregado Client: consultas OR-mapped
// (gorm) y comandos procedurales (pgx) sobre el mismo esquema. Las dos
// mitades nunca deben divergir en los campos que representan.
type ClientRepo struct {
	*ClientQueryRepo
	*ClientCommandRepo
}

// NewClientRepository construye el repositorio dual.
func NewClientRepository(db *gorm.DB, pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{
		ClientQueryRepo:   NewClientQueryRepository(db),
		ClientCommandRepo: NewClientCommandRepository(pool),
	}
}
