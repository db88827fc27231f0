package storage

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
)

// FileStore is a Store persisted as a single JSON object on disk. Every
// mutation rewrites the whole file, mirroring the whole-snapshot,
// last-write-wins persistence the storefront relies on. Corrupt or missing
// files load as an empty store.
type FileStore struct {
	path   string
	values map[string]string
	logger zerolog.Logger
}

// NewFileStore opens (or initialises) the store backed by the file at path.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
		logger: logger.With().Str("component", "file-store").Logger(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", path).Msg("failed to read state file, starting empty")
		}
		return s
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("state file unparseable, starting empty")
		s.values = make(map[string]string)
	}

	return s
}

// Get returns the value for key and whether it was present.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(key, value string) {
	s.values[key] = value
	s.flush()
}

// Remove deletes key and rewrites the backing file.
func (s *FileStore) Remove(key string) {
	delete(s.values, key)
	s.flush()
}

func (s *FileStore) flush() {
	data, err := json.Marshal(s.values)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode state")
		return
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("failed to write state file")
	}
}
