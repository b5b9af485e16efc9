package storage

import "sync"

// MemStore is an in-memory Store for tests and throwaway deployments.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]map[string]string)}
}

func (s *MemStore) Get(deviceID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[deviceID][key]
	return value, ok, nil
}

func (s *MemStore) Set(deviceID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	device, ok := s.values[deviceID]
	if !ok {
		device = make(map[string]string)
		s.values[deviceID] = device
	}
	device[key] = value
	return nil
}

func (s *MemStore) Remove(deviceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values[deviceID], key)
	return nil
}
