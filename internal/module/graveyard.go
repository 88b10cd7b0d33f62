package module

import (
	"sort"

	"github.com/samdwyer/trailsim/internal/entity"
)

// Graveyard keeps committed tombstones keyed by mile marker, plus the one
// tombstone the player may be composing before it is committed.
type Graveyard struct {
	tombstones map[int]entity.Tombstone
	temp       *entity.Tombstone
}

// NewGraveyard creates an empty graveyard.
func NewGraveyard() *Graveyard {
	return &Graveyard{tombstones: make(map[int]entity.Tombstone)}
}

// Name identifies the module.
func (g *Graveyard) Name() string { return "graveyard" }

// Add stores a copy of the tombstone under its mile marker.
// Only one tombstone may exist per mile; later additions at the same mile are ignored.
func (g *Graveyard) Add(t entity.Tombstone) {
	if _, exists := g.tombstones[t.MileMarker]; exists {
		return
	}
	g.tombstones[t.MileMarker] = t
}

// Find returns the tombstone at the given mile, if any.
func (g *Graveyard) Find(mile int) (entity.Tombstone, bool) {
	t, ok := g.tombstones[mile]
	return t, ok
}

// Temp returns the in-progress tombstone, creating it on first access.
func (g *Graveyard) Temp() *entity.Tombstone {
	if g.temp == nil {
		g.temp = &entity.Tombstone{}
	}
	return g.temp
}

// HasTemp reports whether an in-progress tombstone exists.
func (g *Graveyard) HasTemp() bool { return g.temp != nil }

// ClearTemp discards the in-progress tombstone.
func (g *Graveyard) ClearTemp() {
	g.temp = nil
}

// Len returns the number of committed tombstones.
func (g *Graveyard) Len() int { return len(g.tombstones) }

// All returns every committed tombstone ordered by mile marker.
func (g *Graveyard) All() []entity.Tombstone {
	all := make([]entity.Tombstone, 0, len(g.tombstones))
	for _, t := range g.tombstones {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MileMarker < all[j].MileMarker })
	return all
}

// Reset clears committed and in-progress tombstones.
func (g *Graveyard) Reset() {
	g.tombstones = make(map[int]entity.Tombstone)
	g.temp = nil
}

var _ Module = (*Graveyard)(nil)
