package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStorage é um armazenamento chave/valor persistido em um único arquivo JSON,
// equivalente ao local storage do navegador para o processo.
type FileStorage struct {
	mu          sync.RWMutex
	path        string
	values      map[string]string
	lastWritten []byte

	watchMu sync.Mutex
	watcher *watcher
}

func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolving path %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating directory for %s: %w", absPath, err)
	}

	s := &FileStorage{
		path:   absPath,
		values: make(map[string]string),
	}

	raw, err := os.ReadFile(absPath)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("storage: reading %s: %w", absPath, err)
	}

	values, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("storage: decoding %s: %w", absPath, err)
	}

	s.values = values
	s.lastWritten = raw

	return s, nil
}

func (s *FileStorage) Path() string {
	return s.path
}

// Get retorna o valor da chave e se ela existe
func (s *FileStorage) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.flushLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}

	return nil
}

func (s *FileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)

	if err := s.flushLocked(); err != nil {
		s.values[key] = previous
		return err
	}

	return nil
}

// Keys lista as chaves em ordem alfabética
func (s *FileStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// flushLocked grava o arquivo inteiro via arquivo temporário + rename
func (s *FileStorage) flushLocked() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encoding values: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: replacing %s: %w", s.path, err)
	}

	s.lastWritten = raw
	return nil
}

// reload relê o arquivo e devolve as chaves alteradas. Conteúdo idêntico à última
// escrita deste processo não gera alterações.
func (s *FileStorage) reload() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if bytes.Equal(raw, s.lastWritten) {
		return nil, nil
	}

	values := map[string]string{}
	if len(raw) > 0 {
		values, err = decode(raw)
		if err != nil {
			return nil, err
		}
	}

	changed := diffKeys(s.values, values)
	s.values = values
	s.lastWritten = raw

	return changed, nil
}

func decode(raw []byte) (map[string]string, error) {
	values := map[string]string{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func diffKeys(before, after map[string]string) []string {
	changed := make([]string, 0)
	for key, value := range after {
		if previous, ok := before[key]; !ok || previous != value {
			changed = append(changed, key)
		}
	}
	for key := range before {
		if _, ok := after[key]; !ok {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}
