package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eugenenazirov/evtol-sizing/internal/report"
)

// ErrInvalidDefaults indicates the provided default inputs fail physical validation.
var ErrInvalidDefaults = errors.New("default inputs are not physically valid")

// Storage provides access to the default inputs that fill fields omitted from requests.
type Storage interface {
	GetDefaults() (report.Inputs, error)
	SetDefaults(in report.Inputs) error
}

// MemoryStorage keeps the defaults in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	defaults report.Inputs
}

// NewMemoryStorage initialises storage with the given defaults. They are not
// validated, so a configuration may deliberately start from degenerate inputs.
func NewMemoryStorage(defaults report.Inputs) *MemoryStorage {
	return &MemoryStorage{defaults: defaults}
}

// GetDefaults returns a copy of the current defaults.
func (s *MemoryStorage) GetDefaults() (report.Inputs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.defaults, nil
}

// SetDefaults validates and stores new defaults. Replacements go through the
// strict checks so a running server cannot be switched to inputs that divide
// by zero.
func (s *MemoryStorage) SetDefaults(in report.Inputs) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefaults, err)
	}

	s.mu.Lock()
	s.defaults = in
	s.mu.Unlock()

	return nil
}
