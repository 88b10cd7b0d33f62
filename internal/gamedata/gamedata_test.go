package gamedata

import (
	"testing"

	"github.com/samdwyer/trailsim/internal/entity"
)

func TestLoadProfessions(t *testing.T) {
	professions, err := LoadProfessions()
	if err != nil {
		t.Fatalf("Failed to load professions: %v", err)
	}

	if len(professions) != 3 {
		t.Errorf("Expected 3 professions, got %d", len(professions))
	}

	// Every profession ID must map onto an entity.Profession
	for _, p := range professions {
		if _, ok := entity.ProfessionFromID(p.ID); !ok {
			t.Errorf("Profession %q has no matching entity.Profession", p.ID)
		}
		if p.Money <= 0 {
			t.Errorf("Profession %q has no starting money", p.ID)
		}
	}
}

func TestProfessionRegistry(t *testing.T) {
	registry, err := LoadProfessionRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 professions, got %d", registry.Count())
	}

	banker := registry.GetByID("banker")
	if banker == nil {
		t.Fatal("Banker not found by ID")
	}
	if banker.Money != 1600 {
		t.Errorf("Expected banker money 1600, got %d", banker.Money)
	}

	first, err := registry.Choice(1)
	if err != nil || first.ID != "banker" {
		t.Errorf("Choice(1) = %v, %v; want banker", first, err)
	}

	for _, n := range []int{0, 4, -1} {
		if _, err := registry.Choice(n); err == nil {
			t.Errorf("Choice(%d) should be out of range", n)
		}
	}
}

func TestLoadDefaultNames(t *testing.T) {
	names, err := LoadDefaultNames()
	if err != nil {
		t.Fatalf("Failed to load names: %v", err)
	}

	expected := map[string]bool{"Bob": false, "Joe": false, "Sally": false, "Tim": false, "Steve": false}
	for _, n := range names {
		if _, ok := expected[n]; ok {
			expected[n] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Expected default name %q not found", name)
		}
	}
}

func TestLoadLandmarksOrdered(t *testing.T) {
	landmarks := MustLoadLandmarks()
	if len(landmarks) == 0 {
		t.Fatal("no landmarks loaded")
	}
	if landmarks[0].Mile != 0 {
		t.Errorf("first landmark should start at mile 0, got %d", landmarks[0].Mile)
	}
	for i := 1; i < len(landmarks); i++ {
		if landmarks[i].Mile <= landmarks[i-1].Mile {
			t.Errorf("landmark %q (mile %d) is not after %q (mile %d)",
				landmarks[i].Name, landmarks[i].Mile, landmarks[i-1].Name, landmarks[i-1].Mile)
		}
	}
}

func TestLoadCatalogue(t *testing.T) {
	c, err := LoadCatalogue()
	if err != nil {
		t.Fatalf("LoadCatalogue() error: %v", err)
	}
	if len(c.DefaultNames) == 0 || c.Professions == nil || len(c.Landmarks) == 0 {
		t.Errorf("LoadCatalogue() returned incomplete catalogue: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[NamesFile]("missing.json"); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
