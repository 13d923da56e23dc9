package main

// UnitType identifies the type of a troop
type UnitType int

const (
	UnitSoldier UnitType = 0
	UnitKnight  UnitType = 1
	UnitArcher  UnitType = 2
)

// UnitDef holds the fixed stats for a unit type
type UnitDef struct {
	Speed       float64 // base speed (knights start here and accelerate)
	AttackSpeed float64 // soldier speed while attacking
	Attack      float64 // base damage (knights recompute from speed each tick)
	AttackRange float64 // soldier melee reach
	AttackRate  float64 // attacks per second (soldier/archer)
	MaxSpeed    float64 // knight top speed
	Accel       float64 // knight acceleration, units/s²
	MinRange    float64 // archer minimum firing distance
	MaxRange    float64 // archer maximum firing distance
	Weight      float64
	Shape       string
}

var UnitDefs = [3]UnitDef{
	// Soldier: balanced melee
	{
		Speed: 40, AttackSpeed: 30, Attack: 15, AttackRange: 15,
		AttackRate: 1.0, Weight: 1.0, Shape: "circle",
	},
	// Knight: accelerating charger, damage scales with speed
	{
		Speed: 0, MaxSpeed: 80, Accel: 20, Attack: 0,
		Weight: 2.0, Shape: "triangle",
	},
	// Archer: ranged, weak up close
	{
		Speed: 30, Attack: 20, MinRange: 50, MaxRange: 200,
		AttackRate: 0.5, Weight: 1.0, Shape: "square",
	},
}

// GetUnitDef returns the definition for a unit type
func GetUnitDef(ut UnitType) UnitDef {
	if ut < 0 || int(ut) >= len(UnitDefs) {
		return UnitDefs[UnitSoldier]
	}
	return UnitDefs[ut]
}

// String returns the wire name of the unit type
func (ut UnitType) String() string {
	switch ut {
	case UnitKnight:
		return "knight"
	case UnitArcher:
		return "archer"
	default:
		return "soldier"
	}
}

// ParseUnitType maps a wire name to a unit type. Returns false for
// empty or unrecognized names so the caller can fall back to random.
func ParseUnitType(s string) (UnitType, bool) {
	switch s {
	case "soldier":
		return UnitSoldier, true
	case "knight":
		return UnitKnight, true
	case "archer":
		return UnitArcher, true
	default:
		return UnitSoldier, false
	}
}

// RandomUnitType picks uniformly among the three unit types
func RandomUnitType() UnitType {
	return UnitType(int(randFloat()*3)) % 3
}
