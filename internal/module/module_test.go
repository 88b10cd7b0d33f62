package module

import (
	"testing"

	"github.com/samdwyer/trailsim/internal/entity"
)

func TestGraveyardFirstWriterWins(t *testing.T) {
	g := NewGraveyard()

	first := entity.Tombstone{Name: "Alice", Cause: "cholera", MileMarker: 40}
	second := entity.Tombstone{Name: "Bob", Cause: "drowning", MileMarker: 40}

	g.Add(first)
	g.Add(second)

	got, ok := g.Find(40)
	if !ok {
		t.Fatal("Find(40) should find the first tombstone")
	}
	if got != first {
		t.Errorf("Find(40) = %+v, want %+v", got, first)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGraveyardStoresCopy(t *testing.T) {
	g := NewGraveyard()

	temp := g.Temp()
	temp.Name = "Alice"
	temp.MileMarker = 12
	g.Add(*temp)

	temp.Name = "Changed"

	got, _ := g.Find(12)
	if got.Name != "Alice" {
		t.Errorf("committed tombstone aliased the temp record: %+v", got)
	}
}

func TestGraveyardFindMissing(t *testing.T) {
	g := NewGraveyard()
	if _, ok := g.Find(7); ok {
		t.Error("Find on empty graveyard should report absence")
	}
}

func TestGraveyardTempLifecycle(t *testing.T) {
	g := NewGraveyard()

	if g.HasTemp() {
		t.Fatal("new graveyard should have no temp tombstone")
	}

	a := g.Temp()
	a.Name = "Alice"
	b := g.Temp()
	if a != b {
		t.Error("Temp() should reuse the same in-progress tombstone")
	}

	g.ClearTemp()
	if g.HasTemp() {
		t.Error("ClearTemp() should discard the in-progress tombstone")
	}
	if g.Temp().Name != "" {
		t.Error("Temp() after ClearTemp() should be a fresh tombstone")
	}
}

func TestGraveyardReset(t *testing.T) {
	g := NewGraveyard()
	for _, mile := range []int{0, 5, 99} {
		g.Add(entity.Tombstone{Name: "X", MileMarker: mile})
	}
	g.Temp().Name = "pending"

	g.Reset()

	for _, mile := range []int{0, 5, 99} {
		if _, ok := g.Find(mile); ok {
			t.Errorf("Find(%d) after Reset() should be absent", mile)
		}
	}
	if g.HasTemp() {
		t.Error("Reset() should clear the in-progress tombstone")
	}
	if g.Len() != 0 {
		t.Errorf("Len() after Reset() = %d, want 0", g.Len())
	}
}

func TestGraveyardAllSorted(t *testing.T) {
	g := NewGraveyard()
	g.Add(entity.Tombstone{Name: "C", MileMarker: 300})
	g.Add(entity.Tombstone{Name: "A", MileMarker: 10})
	g.Add(entity.Tombstone{Name: "B", MileMarker: 150})

	all := g.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d tombstones, want 3", len(all))
	}
	for i, want := range []string{"A", "B", "C"} {
		if all[i].Name != want {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, want)
		}
	}
}

func TestVehiclePassengers(t *testing.T) {
	v := NewVehicle()
	v.AddPerson(entity.NewPerson("Alice", entity.ProfessionBanker, true))
	v.AddPerson(entity.NewPerson("Bob", entity.ProfessionBanker, false))

	if v.PassengerCount() != 2 || v.LivingCount() != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", v.PassengerCount(), v.LivingCount())
	}

	leader, ok := v.Leader()
	if !ok || leader.Name != "Alice" {
		t.Errorf("Leader() = %+v, %v; want Alice", leader, ok)
	}

	if !v.Kill("Bob", "snakebite") {
		t.Error("Kill(Bob) should succeed")
	}
	if v.Kill("Bob", "again") {
		t.Error("Kill on a dead passenger should report false")
	}
	if v.LivingCount() != 1 {
		t.Errorf("LivingCount() = %d, want 1", v.LivingCount())
	}
	if living := v.Living(); len(living) != 1 || living[0] != "Alice" {
		t.Errorf("Living() = %v, want [Alice]", living)
	}

	ps := v.Passengers()
	ps[0].Name = "Mutated"
	if l, _ := v.Leader(); l.Name != "Alice" {
		t.Error("Passengers() should return a copy")
	}
}

func TestVehicleAdvanceAndReset(t *testing.T) {
	v := NewVehicle()
	v.Advance(15)
	v.Advance(-4)
	v.SetMoney(1600)
	v.AddPerson(entity.NewPerson("Alice", entity.ProfessionBanker, true))

	if v.Odometer() != 15 {
		t.Errorf("Odometer() = %d, want 15", v.Odometer())
	}

	v.Reset()
	if v.Odometer() != 0 || v.PassengerCount() != 0 || v.Money() != 0 {
		t.Errorf("Reset() left odometer=%d passengers=%d money=%d", v.Odometer(), v.PassengerCount(), v.Money())
	}
}

func TestVehicleWear(t *testing.T) {
	v := NewVehicle()
	v.AddPerson(entity.NewPerson("Alice", entity.ProfessionBanker, true))
	v.AddPerson(entity.NewPerson("Bob", entity.ProfessionBanker, false))
	v.Kill("Bob", "measles")

	if died := v.Wear(60, "exhaustion"); len(died) != 0 {
		t.Fatalf("Wear(60) killed %v", died)
	}
	died := v.Wear(60, "exhaustion")
	if len(died) != 1 || died[0] != "Alice" {
		t.Fatalf("Wear(60) twice killed %v, want [Alice]", died)
	}

	for _, p := range v.Passengers() {
		want := map[string]string{"Alice": "exhaustion", "Bob": "measles"}[p.Name]
		if p.Cause != want {
			t.Errorf("%s cause = %q, want %q", p.Name, p.Cause, want)
		}
	}
}
