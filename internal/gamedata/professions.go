package gamedata

// ProfessionDef defines a selectable profession loaded from JSON.
type ProfessionDef struct {
	ID          string `json:"id"`          // Unique identifier matching entity.Profession (e.g., "banker")
	Name        string `json:"name"`        // Display name (e.g., "Banker")
	Money       int    `json:"money"`       // Starting cash in dollars
	Description string `json:"description"` // Flavor line shown on the selection screen
}

// ProfessionsFile represents the structure of professions.json.
type ProfessionsFile struct {
	Professions []ProfessionDef `json:"professions"`
}

// LoadProfessions loads profession definitions from the embedded professions.json file.
func LoadProfessions() ([]ProfessionDef, error) {
	file, err := Load[ProfessionsFile]("professions.json")
	if err != nil {
		return nil, err
	}
	return file.Professions, nil
}

// NamesFile represents the structure of names.json.
type NamesFile struct {
	Names []string `json:"names"`
}

// LoadDefaultNames loads the fallback party names used when the player enters nothing.
func LoadDefaultNames() ([]string, error) {
	file, err := Load[NamesFile]("names.json")
	if err != nil {
		return nil, err
	}
	return file.Names, nil
}

// MustLoadDefaultNames loads default names, panicking on error.
func MustLoadDefaultNames() []string {
	names, err := LoadDefaultNames()
	if err != nil {
		panic(err)
	}
	return names
}

// LandmarkDef is a named stop along the trail.
type LandmarkDef struct {
	Name string `json:"name"`
	Mile int    `json:"mile"`
}

// LandmarksFile represents the structure of landmarks.json.
type LandmarksFile struct {
	Landmarks []LandmarkDef `json:"landmarks"`
}

// LoadLandmarks loads the trail's landmarks from the embedded landmarks.json file.
func LoadLandmarks() ([]LandmarkDef, error) {
	file, err := Load[LandmarksFile]("landmarks.json")
	if err != nil {
		return nil, err
	}
	return file.Landmarks, nil
}

// MustLoadLandmarks loads landmarks, panicking on error.
func MustLoadLandmarks() []LandmarkDef {
	landmarks, err := LoadLandmarks()
	if err != nil {
		panic(err)
	}
	return landmarks
}
