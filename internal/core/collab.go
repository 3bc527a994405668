package core

// SaveStore is the persistent key/value collaborator. Each store is scoped to
// one save location. A missing key is not an error: LoadInt returns def.
type SaveStore interface {
	LoadInt(key string, def int) int
	SaveInt(key string, value int) error
}

// Rumbler drives the haptic motor. Calls are fire-and-forget; intensity 0
// stops the motor.
type Rumbler interface {
	SetRumble(intensity float64)
}

// NopRumbler discards rumble requests.
type NopRumbler struct{}

// SetRumble implements Rumbler.
func (NopRumbler) SetRumble(float64) {}

// MemoryStore is an in-process SaveStore, used when no database is available
// and in tests.
type MemoryStore struct {
	values map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// LoadInt implements SaveStore.
func (s *MemoryStore) LoadInt(key string, def int) int {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// SaveInt implements SaveStore.
func (s *MemoryStore) SaveInt(key string, value int) error {
	s.values[key] = value
	return nil
}

// Has reports whether a key has been saved.
func (s *MemoryStore) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}
