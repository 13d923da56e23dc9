package main

const (
	TroopMaxHealth = 100.0
	MeleeRadius    = 15.0 // collision radius for troop-vs-troop combat
	KnightDrag     = 10.0 // speed lost per unit of colliding weight per second
)

// Troop is a single unit on the battlefield
type Troop struct {
	ID         int64
	OwnerID    int64
	X, Y       float64
	DirX, DirY float64 // unit length except when degenerate (zero)
	Health     float64
	Type       UnitType
	Speed      float64 // current speed; mutable for knights and soldiers
	Attack     float64 // current damage; recomputed per tick for knights
	Weight     float64
	Cooldown   float64 // seconds until next attack (soldier/archer)
	Attacking  bool
	TargetID   int64 // 0 = no target
}

// NewTroop creates a troop of the given type with stats from the unit table
func NewTroop(id, ownerID int64, x, y, dirX, dirY float64, ut UnitType) Troop {
	def := GetUnitDef(ut)
	return Troop{
		ID:      id,
		OwnerID: ownerID,
		X:       x,
		Y:       y,
		DirX:    dirX,
		DirY:    dirY,
		Health:  TroopMaxHealth,
		Type:    ut,
		Speed:   def.Speed,
		Attack:  def.Attack,
		Weight:  def.Weight,
	}
}

// Update advances the troop's kinematics one tick and wraps its position
// onto the toroidal map
func (t *Troop) Update(dt float64) {
	def := GetUnitDef(t.Type)
	switch t.Type {
	case UnitSoldier:
		if t.Attacking && t.TargetID != 0 {
			t.Speed = def.AttackSpeed
			if t.Cooldown > 0 {
				t.Cooldown -= dt
			}
		} else {
			t.Speed = def.Speed
			t.Attacking = false
			t.TargetID = 0
		}
	case UnitKnight:
		if t.Speed < def.MaxSpeed {
			t.Speed += def.Accel * dt
			if t.Speed > def.MaxSpeed {
				t.Speed = def.MaxSpeed
			}
		}
		// Charge damage scales with momentum
		t.Attack = t.Speed / 10
	case UnitArcher:
		if t.Cooldown > 0 {
			t.Cooldown -= dt
		}
	}

	t.X = WrapCoord(t.X+t.DirX*t.Speed*dt, MapWidth)
	t.Y = WrapCoord(t.Y+t.DirY*t.Speed*dt, MapHeight)
}

// ToState converts to protocol state
func (t *Troop) ToState() TroopState {
	return TroopState{
		ID:        t.ID,
		Owner:     t.OwnerID,
		X:         round1(t.X),
		Y:         round1(t.Y),
		DX:        t.DirX,
		DY:        t.DirY,
		HP:        round1(t.Health),
		Type:      t.Type.String(),
		Attacking: t.Attacking,
	}
}
