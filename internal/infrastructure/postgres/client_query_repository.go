package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClientQueries = (*ClientQueryRepo)(nil)

// ClientQueryRepo lado de lectura del agregado Client sobre gorm.
// Solo proyecciones: ninguna operación de este tipo muta el esquema.
type ClientQueryRepo struct {
	db *gorm.DB
}

// NewClientQueryRepository construye el adaptador de consultas.
func NewClientQueryRepository(db *gorm.DB) *ClientQueryRepo {
	return &ClientQueryRepo{db: db}
}

// ListAll proyección ligera para listados. La columna logo no aparece en el
// SELECT: el blob nunca viaja en este camino, sin importar su tamaño.
func (r *ClientQueryRepo) ListAll(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "phone").
		Preload("Addresses").
		Order("id").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// GetByID proyección completa: todas las columnas de la raíz (logo incluido)
// más las direcciones. Devuelve (nil, nil) si el cliente no existe.
func (r *ClientQueryRepo) GetByID(ctx context.Context, id int) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &client, nil
}

// EmailExists indica si ya hay un cliente persistido con ese email.
// Solo observa filas confirmadas: cada consulta ve el estado committed de la
// base en el momento de la llamada.
func (r *ClientQueryRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Client{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}
