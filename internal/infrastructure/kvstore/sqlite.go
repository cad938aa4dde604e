package kvstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // driver puro Go, sin cgo

	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

var _ repository.KeyValueStore = (*SQLiteStore)(nil)

// SQLiteStore guarda las claves en una tabla storage de un archivo SQLite.
// Útil cuando se quiere un único archivo de datos en vez de un directorio.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) el archivo y asegura la tabla storage.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor: el runtime del motor es de mutación serializada.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS storage (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tabla storage: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get implementa repository.KeyValueStore.
func (s *SQLiteStore) Get(key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("leer %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set implementa repository.KeyValueStore (upsert).
func (s *SQLiteStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO storage (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// Remove implementa repository.KeyValueStore.
func (s *SQLiteStore) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("borrar %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo de base de datos.
func (s *SQLiteStore) Close() error { return s.db.Close() }
