package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClientCommands = (*ClientCommandRepo)(nil)

// ClientCommandRepo lado de escritura del agregado Client sobre pgx.
// Comandos parametrizados y angostos en lugar de reemplazo genérico de
// registros: la unicidad de email y la cascada se aplican exactamente una
// vez, en este punto, sin importar quién llame.
type ClientCommandRepo struct {
	pool *pgxpool.Pool
}

// NewClientCommandRepository construye el adaptador de comandos.
func NewClientCommandRepository(pool *pgxpool.Pool) *ClientCommandRepo {
	return &ClientCommandRepo{pool: pool}
}

// Add inserta la raíz y sus direcciones en una sola transacción, de modo que
// nunca queda una raíz huérfana si falla una inserción hija. El id generado
// queda en client.ID y cada dirección recibe su id y el client_id forzado
// (se ignora cualquier client_id que trajera la entrada).
func (r *ClientCommandRepo) Add(ctx context.Context, client *entity.Client) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO clients (name, email, phone, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`,
		client.Name, client.Email, client.Phone, client.Logo, now,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert client: %w", err)
	}

	if err := insertAddresses(ctx, tx, client.ID, client.Addresses, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update actualiza la raíz por id y sincroniza las direcciones por reemplazo
// total: borra todas las filas hijas del cliente y reinserta las
// suministradas con identidad nueva. Los ids de dirección NO se conservan
// entre updates: es un reemplazo destructivo, no un diff/merge, y ese
// comportamiento observable es parte del contrato.
func (r *ClientCommandRepo) Update(ctx context.Context, client *entity.Client) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	tag, err := tx.Exec(ctx, `
		UPDATE clients SET name = $2, email = $3, phone = $4, logo = $5, updated_at = $6
		WHERE id = $1`,
		client.ID, client.Name, client.Email, client.Phone, client.Logo, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE client_id = $1`, client.ID); err != nil {
		return fmt.Errorf("delete addresses: %w", err)
	}
	if err := insertAddresses(ctx, tx, client.ID, client.Addresses, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Remove borra la raíz; las direcciones caen por la regla ON DELETE CASCADE
// del esquema, no fila a fila desde aquí. Cero filas afectadas no es error:
// el borrado es idempotente para el caller.
func (r *ClientCommandRepo) Remove(ctx context.Context, id int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// insertAddresses inserta cada dirección con client_id forzado al id del
// padre, recogiendo el id generado de cada fila.
func insertAddresses(ctx context.Context, tx pgx.Tx, clientID int, addresses []entity.Address, now time.Time) error {
	for i := range addresses {
		a := &addresses[i]
		a.ClientID = clientID
		err := tx.QueryRow(ctx, `
			INSERT INTO addresses (client_id, street, complement, neighborhood, city, state, postal_code, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			RETURNING id`,
			a.ClientID, a.Street, a.Complement, a.Neighborhood, a.City, a.State, a.PostalCode, now,
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}
	}
	return nil
}
