package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/config"
)

// NewGormDB abre la sesión gorm para el lado de consultas, sobre el mismo
// esquema que escribe el lado de comandos (pgx). gorm no emite escrituras
// del agregado: solo proyecciones.
func NewGormDB(cfg config.DBConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.LogQueries {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.ConnectionString()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("abrir gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener *sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate crea/actualiza el esquema: tablas de clients, addresses y users.
// AutoMigrate materializa las dos defensas del esquema que el dominio exige:
// el índice único sobre clients.email y la FK addresses.client_id con
// ON DELETE CASCADE (tags en las entidades).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Client{}, &entity.Address{}, &entity.User{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
