package json

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const saveInterval = time.Minute

// SettingsStore keeps settings in memory and writes them to a JSON file from
// SaveLooper, or on Flush and Close.
type SettingsStore struct {
	values map[string]string
	file   *os.File
	lock   sync.Mutex
	dirty  bool
}

func NewSettingsStore(filename string) (*SettingsStore, error) {
	fileExists := true
	_, err := os.Stat(filename)
	if os.IsNotExist(err) {
		fileExists = false
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	store := &SettingsStore{
		values: make(map[string]string),
		file:   file,
		dirty:  true,
	}

	if fileExists {
		err = store.load()
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("load: %w", err)
		}

		store.dirty = false
	}

	return store, nil
}

// Close writes pending changes and closes the file.
func (s *SettingsStore) Close() error {
	saveErr := s.Flush()
	closeErr := s.file.Close()
	return errors.Join(saveErr, closeErr)
}

func (s *SettingsStore) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	dec := json.NewDecoder(s.file)
	err = dec.Decode(&s.values)
	switch {
	case errors.Is(err, io.EOF):
		// empty file
	case err != nil:
		return fmt.Errorf("decode json: %w", err)
	}

	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Flush writes the settings to disk if anything changed since the last save.
func (s *SettingsStore) Flush() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty {
		return nil
	}

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = s.file.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate file: %w", err)
	}

	enc := json.NewEncoder(s.file)
	err = enc.Encode(s.values)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.dirty = false

	return nil
}

func (s *SettingsStore) SaveLooper(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			err := s.Flush()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}

			return ctx.Err()
		case <-time.After(saveInterval):
			err := s.Flush()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
}

func (s *SettingsStore) GetString(key string) (string, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *SettingsStore) SetString(key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if current, ok := s.values[key]; ok && current == value {
		return nil
	}

	s.values[key] = value
	s.dirty = true
	return nil
}
