package memory

import "sync"

type SettingsStore struct {
	values map[string]string
	lock   sync.Mutex
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		values: make(map[string]string),
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

	s.values[key] = value
	return nil
}
