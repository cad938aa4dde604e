// Package kvstore implementa el puerto repository.KeyValueStore sobre
// distintos medios: archivos JSON, SQLite embebido y PostgreSQL.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

var _ repository.KeyValueStore = (*FileStore)(nil)

// FileStore guarda cada clave como un archivo <clave>.json bajo un
// directorio de datos. Es el driver por defecto: el análogo directo del
// almacenamiento local del sistema anterior.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Las claves son nombres fijos del código ("clients", "users", ...),
	// pero se sanea por si alguna vez llega algo con separadores.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

// Get implementa repository.KeyValueStore.
func (s *FileStore) Get(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("leer %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("deserializar %q: %w", key, err)
	}
	return true, nil
}

// Set implementa repository.KeyValueStore. Escribe a un archivo temporal y
// renombra para no dejar un JSON a medias si el proceso muere escribiendo.
func (s *FileStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("renombrar %q: %w", key, err)
	}
	return nil
}

// Remove implementa repository.KeyValueStore.
func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar %q: %w", key, err)
	}
	return nil
}

// Close no hace nada en el driver de archivos.
func (s *FileStore) Close() error { return nil }
