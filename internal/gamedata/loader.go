package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Catalogue bundles every piece of embedded data the simulation needs at startup.
type Catalogue struct {
	DefaultNames []string
	Professions  *ProfessionRegistry
	Landmarks    []LandmarkDef
}

// LoadCatalogue loads names, professions and landmarks in one go.
func LoadCatalogue() (*Catalogue, error) {
	names, err := LoadDefaultNames()
	if err != nil {
		return nil, fmt.Errorf("load default names: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no default names in names.json")
	}

	professions, err := LoadProfessionRegistry()
	if err != nil {
		return nil, fmt.Errorf("load professions: %w", err)
	}

	landmarks, err := LoadLandmarks()
	if err != nil {
		return nil, fmt.Errorf("load landmarks: %w", err)
	}

	return &Catalogue{
		DefaultNames: names,
		Professions:  professions,
		Landmarks:    landmarks,
	}, nil
}

// MustLoadCatalogue loads the catalogue, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadCatalogue() *Catalogue {
	catalogue, err := LoadCatalogue()
	if err != nil {
		panic(err)
	}
	return catalogue
}
