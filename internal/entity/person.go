// Package entity provides the records the simulation passes around: people, professions and tombstones.
package entity

// Profession represents a party leader's trade before leaving for the trail.
type Profession int

const (
	ProfessionBanker Profession = iota
	ProfessionCarpenter
	ProfessionFarmer
)

// String returns the profession name.
func (p Profession) String() string {
	switch p {
	case ProfessionBanker:
		return "Banker"
	case ProfessionCarpenter:
		return "Carpenter"
	case ProfessionFarmer:
		return "Farmer"
	default:
		return "Unknown"
	}
}

// ID returns the profession identifier for data lookup.
func (p Profession) ID() string {
	switch p {
	case ProfessionBanker:
		return "banker"
	case ProfessionCarpenter:
		return "carpenter"
	case ProfessionFarmer:
		return "farmer"
	default:
		return "unknown"
	}
}

// ProfessionFromID maps a data identifier back to a Profession.
func ProfessionFromID(id string) (Profession, bool) {
	switch id {
	case "banker":
		return ProfessionBanker, true
	case "carpenter":
		return ProfessionCarpenter, true
	case "farmer":
		return ProfessionFarmer, true
	default:
		return 0, false
	}
}

// Person is a single passenger in the vehicle.
type Person struct {
	Name       string
	Profession Profession
	Leader     bool
	HP, MaxHP  int
	Cause      string // Why the person died; empty while alive
}

// NewPerson creates a healthy passenger.
func NewPerson(name string, profession Profession, leader bool) Person {
	return Person{
		Name:       name,
		Profession: profession,
		Leader:     leader,
		HP:         100,
		MaxHP:      100,
	}
}

// IsAlive returns true if the person has HP remaining.
func (p Person) IsAlive() bool { return p.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Person) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Kill drops HP to zero and records the cause.
func (p *Person) Kill(cause string) {
	p.HP = 0
	p.Cause = cause
}
