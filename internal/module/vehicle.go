package module

import "github.com/samdwyer/trailsim/internal/entity"

// Vehicle tracks the party's wagon: who is riding in it, how far it has gone,
// and how much money the party set out with.
type Vehicle struct {
	odometer   int
	money      int
	passengers []entity.Person
}

// NewVehicle creates an empty vehicle at mile zero.
func NewVehicle() *Vehicle {
	return &Vehicle{passengers: []entity.Person{}}
}

// Name identifies the module.
func (v *Vehicle) Name() string { return "vehicle" }

// Odometer returns the miles traveled so far.
func (v *Vehicle) Odometer() int { return v.odometer }

// Advance moves the vehicle forward. Negative distances are ignored.
func (v *Vehicle) Advance(miles int) {
	if miles > 0 {
		v.odometer += miles
	}
}

// Money returns the party's cash.
func (v *Vehicle) Money() int { return v.money }

// SetMoney sets the party's cash.
func (v *Vehicle) SetMoney(amount int) { v.money = amount }

// AddPerson puts a passenger in the vehicle.
func (v *Vehicle) AddPerson(p entity.Person) {
	v.passengers = append(v.passengers, p)
}

// Passengers returns a copy of the passenger list.
func (v *Vehicle) Passengers() []entity.Person {
	out := make([]entity.Person, len(v.passengers))
	copy(out, v.passengers)
	return out
}

// PassengerCount returns the number of passengers, living or dead.
func (v *Vehicle) PassengerCount() int { return len(v.passengers) }

// LivingCount returns the number of passengers still alive.
func (v *Vehicle) LivingCount() int {
	count := 0
	for _, p := range v.passengers {
		if p.IsAlive() {
			count++
		}
	}
	return count
}

// Living returns the names of passengers still alive, in seating order.
func (v *Vehicle) Living() []string {
	names := []string{}
	for _, p := range v.passengers {
		if p.IsAlive() {
			names = append(names, p.Name)
		}
	}
	return names
}

// Leader returns the party leader.
func (v *Vehicle) Leader() (entity.Person, bool) {
	for _, p := range v.passengers {
		if p.Leader {
			return p, true
		}
	}
	return entity.Person{}, false
}

// Kill marks the named passenger dead. Returns false if nobody by that name is alive.
func (v *Vehicle) Kill(name, cause string) bool {
	for i := range v.passengers {
		if v.passengers[i].Name == name && v.passengers[i].IsAlive() {
			v.passengers[i].Kill(cause)
			return true
		}
	}
	return false
}

// Wear deals damage to every living passenger. Anyone it kills is given the
// cause; their names are returned in seating order.
func (v *Vehicle) Wear(amount int, cause string) []string {
	died := []string{}
	for i := range v.passengers {
		p := &v.passengers[i]
		if !p.IsAlive() {
			continue
		}
		p.TakeDamage(amount)
		if !p.IsAlive() {
			p.Kill(cause)
			died = append(died, p.Name)
		}
	}
	return died
}

// Reset empties the vehicle and winds the odometer back to zero.
func (v *Vehicle) Reset() {
	v.odometer = 0
	v.money = 0
	v.passengers = []entity.Person{}
}

var _ Module = (*Vehicle)(nil)
