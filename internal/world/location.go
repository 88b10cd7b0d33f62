package world

// Location is a landmark at a fixed mile along the trail.
type Location struct {
	Name   string
	Mile   int
	Status LocationStatus
}

// Reached returns true if the given odometer reading is at or past the landmark.
func (l Location) Reached(odometer int) bool {
	return odometer >= l.Mile
}
