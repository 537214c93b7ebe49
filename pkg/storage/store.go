// Package storage provides the file-backed persistence layer of the bot.
// Each data domain (mentions, levels, warnings, economy) lives in its own
// JSON document inside the data directory and is rewritten in full on every
// flush. There is no database engine behind this on purpose.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
)

// Store reads and writes named JSON documents in a single directory.
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a half-written document behind.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store over it
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de datos '%s': %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing this store
func (s *Store) Dir() string {
	return s.dir
}

// path resolves a document name to its file on disk
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load returns the raw bytes of a named document, or nil on first run
// (missing file). Any other read failure is returned as an error.
func (s *Store) Load(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug(fmt.Sprintf("Documento '%s' no existe todavía, arrancando vacío", name), "Store")
			return nil, nil
		}
		return nil, fmt.Errorf("error leyendo documento '%s': %w", name, err)
	}
	return data, nil
}

// Save overwrites a named document with the given serialized bytes.
// The write lands in a temp file first and is renamed into place, so readers
// of the final path never observe a partial document.
func (s *Store) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	final := s.path(name)
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("error creando archivo temporal para '%s': %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error escribiendo documento '%s': %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error cerrando archivo temporal de '%s': %w", name, err)
	}

	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error renombrando documento '%s': %w", name, err)
	}
	return nil
}
