// Package world provides the trail and the landmarks along it.
package world

// LocationStatus tracks a landmark as the vehicle approaches, visits, and leaves it.
type LocationStatus int

const (
	// StatusUnreached means the vehicle has not reached the landmark yet.
	StatusUnreached LocationStatus = iota
	// StatusArrived means the vehicle is at the landmark right now.
	StatusArrived
	// StatusDeparted means the vehicle visited the landmark and moved on.
	StatusDeparted
)

// String returns a human-readable status name.
func (s LocationStatus) String() string {
	switch s {
	case StatusUnreached:
		return "unreached"
	case StatusArrived:
		return "arrived"
	case StatusDeparted:
		return "departed"
	default:
		return "unknown"
	}
}
