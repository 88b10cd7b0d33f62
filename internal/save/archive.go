// Package save keeps committed tombstones between runs in a YAML file, so later
// parties pass the graves of earlier ones.
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/trailsim/internal/entity"
)

// DefaultPath is used when no archive path is configured.
const DefaultPath = ".saves/tombstones.yaml"

// archiveFile is the on-disk layout.
type archiveFile struct {
	Tombstones []entity.Tombstone `yaml:"tombstones"`
}

// Archive is a YAML file of tombstones.
type Archive struct {
	path string
}

// NewArchive returns an archive backed by the file at path. The file is created on first Append.
func NewArchive(path string) *Archive {
	if path == "" {
		path = DefaultPath
	}
	return &Archive{path: path}
}

// Path returns the archive file location.
func (a *Archive) Path() string { return a.path }

// Load reads every archived tombstone. A missing file is an empty archive.
func (a *Archive) Load() ([]entity.Tombstone, error) {
	data, err := os.ReadFile(a.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Tombstone{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", a.path, err)
	}

	var file archiveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse archive %s: %w", a.path, err)
	}
	if file.Tombstones == nil {
		file.Tombstones = []entity.Tombstone{}
	}
	return file.Tombstones, nil
}

// Append adds a tombstone to the archive. A tombstone at a mile already taken
// is dropped, matching the graveyard's one-grave-per-mile rule.
func (a *Archive) Append(t entity.Tombstone) error {
	existing, err := a.Load()
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.MileMarker == t.MileMarker {
			return nil
		}
	}

	data, err := yaml.Marshal(archiveFile{Tombstones: append(existing, t)})
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("write archive %s: %w", a.path, err)
	}
	return nil
}
