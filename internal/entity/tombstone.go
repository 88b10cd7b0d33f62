package entity

import (
	"fmt"
	"strings"
)

// Tombstone marks where a party leader was buried along the trail.
// It is a plain value: copying it never aliases another record.
type Tombstone struct {
	Name       string `yaml:"name"`
	Cause      string `yaml:"cause"`
	Epitaph    string `yaml:"epitaph,omitempty"`
	MileMarker int    `yaml:"mile_marker"`
}

// String renders the tombstone the way it is shown on the memorial screen.
func (t Tombstone) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here lies %s\n", t.Name)
	if t.Cause != "" {
		fmt.Fprintf(&b, "Died of %s\n", t.Cause)
	}
	if t.Epitaph != "" {
		b.WriteString(t.Epitaph + "\n")
	}
	fmt.Fprintf(&b, "Mile %d", t.MileMarker)
	return b.String()
}
