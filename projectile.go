package main

import "math"

const (
	ArrowSpeed     = 200.0 // units/s
	ArrowLifetime  = 2.0   // seconds
	ArrowHitRadius = 10.0
	ArrowKnockback = 20.0 // impulse blended into the victim's direction
)

// Projectile is an arrow in flight
type Projectile struct {
	ID         int64
	OwnerID    int64
	X, Y       float64
	DirX, DirY float64
	Speed      float64
	Damage     float64 // copied from the firing archer at creation
	Life       float64 // remaining time-to-live, seconds
}

// Update moves the projectile one tick, wraps it onto the map and burns
// down its time-to-live
func (p *Projectile) Update(dt float64) {
	p.X = WrapCoord(p.X+p.DirX*p.Speed*dt, MapWidth)
	p.Y = WrapCoord(p.Y+p.DirY*p.Speed*dt, MapHeight)
	p.Life -= dt
}

// ToState converts to protocol state
func (p *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    p.ID,
		Owner: p.OwnerID,
		X:     round1(p.X),
		Y:     round1(p.Y),
		DX:    p.DirX,
		DY:    p.DirY,
	}
}

// fireArrow spawns a projectile from archer toward target along the
// shorter toroidal path. A zero separation produces no arrow.
func (g *Game) fireArrow(archer, target *Troop) {
	if len(g.projectiles) >= MaxProjectiles {
		return
	}
	dx := WrapDelta(target.X, archer.X, MapWidth)
	dy := WrapDelta(target.Y, archer.Y, MapHeight)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	g.nextProjectileID++
	g.projectiles = append(g.projectiles, Projectile{
		ID:      g.nextProjectileID,
		OwnerID: archer.OwnerID,
		X:       archer.X,
		Y:       archer.Y,
		DirX:    dx / dist,
		DirY:    dy / dist,
		Speed:   ArrowSpeed,
		Damage:  archer.Attack,
		Life:    ArrowLifetime,
	})
}

// hitProjectiles scans live projectiles against enemy troops. Each
// projectile damages at most one troop, knocks it back, then expires.
func (g *Game) hitProjectiles() {
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if p.Life <= 0 {
			continue
		}
		for j := range g.troops {
			t := &g.troops[j]
			if t.OwnerID == p.OwnerID {
				continue
			}
			dx := WrapDelta(p.X, t.X, MapWidth)
			dy := WrapDelta(p.Y, t.Y, MapHeight)
			dist := math.Hypot(dx, dy)
			if dist >= ArrowHitRadius {
				continue
			}
			t.Health -= p.Damage
			if dist > 0 {
				nx := dx / dist
				ny := dy / dist
				t.DirX, t.DirY = Normalize(t.DirX-nx*ArrowKnockback, t.DirY-ny*ArrowKnockback)
			}
			p.Life = 0
			break
		}
	}
}
