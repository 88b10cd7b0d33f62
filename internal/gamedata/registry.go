package gamedata

import (
	"errors"
	"fmt"
)

// ProfessionRegistry holds loaded profession definitions in menu order.
type ProfessionRegistry struct {
	professions []ProfessionDef
	byID        map[string]*ProfessionDef
}

// NewProfessionRegistry creates a registry from loaded profession definitions.
func NewProfessionRegistry(professions []ProfessionDef) *ProfessionRegistry {
	registry := &ProfessionRegistry{
		professions: professions,
		byID:        make(map[string]*ProfessionDef),
	}
	for i := range professions {
		registry.byID[professions[i].ID] = &professions[i]
	}
	return registry
}

// LoadProfessionRegistry loads and creates a registry from the embedded professions.json.
func LoadProfessionRegistry() (*ProfessionRegistry, error) {
	professions, err := LoadProfessions()
	if err != nil {
		return nil, err
	}
	if len(professions) == 0 {
		return nil, errors.New("no professions loaded from professions.json")
	}
	return NewProfessionRegistry(professions), nil
}

// MustLoadProfessionRegistry loads a registry, panicking on error.
func MustLoadProfessionRegistry() *ProfessionRegistry {
	registry, err := LoadProfessionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the profession definition with the given ID, or nil if not found.
func (r *ProfessionRegistry) GetByID(id string) *ProfessionDef {
	return r.byID[id]
}

// Choice resolves a 1-based menu choice to a profession definition.
func (r *ProfessionRegistry) Choice(n int) (*ProfessionDef, error) {
	if n < 1 || n > len(r.professions) {
		return nil, fmt.Errorf("choice %d out of range 1..%d", n, len(r.professions))
	}
	return &r.professions[n-1], nil
}

// All returns all profession definitions in menu order.
func (r *ProfessionRegistry) All() []ProfessionDef {
	return r.professions
}

// Count returns the number of professions in the registry.
func (r *ProfessionRegistry) Count() int {
	return len(r.professions)
}
