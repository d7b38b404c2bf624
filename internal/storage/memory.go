package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps records in memory. Records are held in their serialized
// form so a Load never aliases a value passed to Save.
type MemoryStore[T any] struct {
	records map[string][]byte

	mu sync.RWMutex
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		records: map[string][]byte{},
	}
}

func (s *MemoryStore[T]) Save(key string, v T) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = jsonData
	return nil
}

func (s *MemoryStore[T]) Load(key string) (T, error) {
	var v T

	s.mu.RLock()
	jsonData, ok := s.records[key]
	s.mu.RUnlock()

	if !ok {
		return v, ErrNotFound
	}

	err := json.Unmarshal(jsonData, &v)
	if err != nil {
		return v, fmt.Errorf("unmarshalling %s: %w", key, err)
	}

	return v, nil
}

// SetRaw stores raw bytes under key, bypassing serialization.
func (s *MemoryStore[T]) SetRaw(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = data
}
