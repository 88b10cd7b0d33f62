package world

import (
	"sort"

	"github.com/samdwyer/trailsim/internal/gamedata"
)

// Trail is the ordered list of landmarks between the start and the end of the journey.
// It is a module: statuses persist across windows and are cleared on restart.
type Trail struct {
	Locations []Location
}

// NewTrail creates a trail from landmark definitions, ordered by mile.
// The first landmark starts out as arrived.
func NewTrail(landmarks []gamedata.LandmarkDef) *Trail {
	locations := make([]Location, len(landmarks))
	for i, l := range landmarks {
		locations[i] = Location{Name: l.Name, Mile: l.Mile}
	}
	sort.SliceStable(locations, func(i, j int) bool { return locations[i].Mile < locations[j].Mile })

	t := &Trail{Locations: locations}
	t.Reset()
	return t
}

// Name identifies the module.
func (t *Trail) Name() string { return "trail" }

// Reset marks every landmark unreached except the starting one.
func (t *Trail) Reset() {
	for i := range t.Locations {
		t.Locations[i].Status = StatusUnreached
	}
	if len(t.Locations) > 0 {
		t.Locations[0].Status = StatusArrived
	}
}

// Update moves statuses forward for the given odometer reading.
// The last reached landmark is arrived; earlier ones are departed.
// Returns the index of the newly arrived landmark, or -1 when nothing changed.
func (t *Trail) Update(odometer int) int {
	current := t.CurrentIndex()
	reached := -1
	for i, l := range t.Locations {
		if l.Reached(odometer) {
			reached = i
		}
	}
	if reached <= current {
		return -1
	}
	for i := range t.Locations[:reached] {
		t.Locations[i].Status = StatusDeparted
	}
	t.Locations[reached].Status = StatusArrived
	return reached
}

// CurrentIndex returns the index of the landmark the vehicle is at, or -1 if none.
func (t *Trail) CurrentIndex() int {
	for i, l := range t.Locations {
		if l.Status == StatusArrived {
			return i
		}
	}
	return -1
}

// Next returns the next unreached landmark.
func (t *Trail) Next() (Location, bool) {
	for _, l := range t.Locations {
		if l.Status == StatusUnreached {
			return l, true
		}
	}
	return Location{}, false
}

// Finished returns true once the final landmark has been reached.
func (t *Trail) Finished() bool {
	if len(t.Locations) == 0 {
		return false
	}
	return t.Locations[len(t.Locations)-1].Status != StatusUnreached
}

// Length returns the mile of the final landmark.
func (t *Trail) Length() int {
	if len(t.Locations) == 0 {
		return 0
	}
	return t.Locations[len(t.Locations)-1].Mile
}
