// Package window provides the window + form state machine that decides which screen is active,
// where player input goes, and how screens hand off to one another.
package window

// Type tags a concrete kind of window. Each kind is registered once with the Manager.
type Type int

const (
	// TypeTravel is the base window: the party on the trail.
	TypeTravel Type = iota
	// TypeNewGame collects party names and a profession.
	TypeNewGame
	// TypeTombstone shows a grave marker, or the party's own death notice.
	TypeTombstone
)

// String returns a human-readable window type.
func (t Type) String() string {
	switch t {
	case TypeTravel:
		return "travel"
	case TypeNewGame:
		return "new_game"
	case TypeTombstone:
		return "tombstone"
	default:
		return "unknown"
	}
}
