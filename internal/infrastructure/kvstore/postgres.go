package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/pkg/config"
)

var _ repository.KeyValueStore = (*PostgresStore)(nil)

// PostgresStore guarda las claves en una tabla storage con valores JSONB.
// Pensado para instalaciones donde los datos deben vivir fuera de la máquina
// que corre el servicio.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crea el pool, verifica la conexión y asegura la tabla.
func NewPostgresStore(ctx context.Context, cfg config.DBConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS storage (
		key   TEXT PRIMARY KEY,
		value JSONB NOT NULL
	)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla storage: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Get implementa repository.KeyValueStore.
func (s *PostgresStore) Get(key string, out any) (bool, error) {
	var raw []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT value FROM storage WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("leer %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set implementa repository.KeyValueStore (upsert).
func (s *PostgresStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = s.pool.Exec(context.Background(),
		`INSERT INTO storage (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// Remove implementa repository.KeyValueStore.
func (s *PostgresStore) Remove(key string) error {
	_, err := s.pool.Exec(context.Background(),
		`DELETE FROM storage WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("borrar %q: %w", key, err)
	}
	return nil
}

// Close cierra el pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
