package main

import (
	"math"
	"testing"
)

func TestFireArrowStraightDown(t *testing.T) {
	// Archer at (100,100), target at (100,160): 60 apart, inside the
	// [50,200] window, so the arrow flies along (0,1)
	archer := NewTroop(1, 1, 100, 100, 0, 1, UnitArcher)
	target := NewTroop(2, 2, 100, 160, 0, -1, UnitSoldier)
	g := combatGame(archer, target)

	g.fireArrow(&g.troops[0], &g.troops[1])

	if len(g.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(g.projectiles))
	}
	p := g.projectiles[0]
	if p.DirX != 0 || p.DirY != 1 {
		t.Errorf("expected direction (0,1), got (%v, %v)", p.DirX, p.DirY)
	}
	if p.Speed != ArrowSpeed {
		t.Errorf("expected speed %v, got %v", ArrowSpeed, p.Speed)
	}
	if p.Life != ArrowLifetime {
		t.Errorf("expected life %v, got %v", ArrowLifetime, p.Life)
	}
	if p.Damage != 20 {
		t.Errorf("damage should copy the archer's attack, got %v", p.Damage)
	}
	if p.OwnerID != 1 {
		t.Errorf("owner should be the archer's owner, got %d", p.OwnerID)
	}
	if p.X != 100 || p.Y != 100 {
		t.Errorf("arrow should start at the archer, got (%v, %v)", p.X, p.Y)
	}
}

func TestFireArrowZeroDistance(t *testing.T) {
	archer := NewTroop(1, 1, 100, 100, 0, 1, UnitArcher)
	target := NewTroop(2, 2, 100, 100, 0, -1, UnitSoldier)
	g := combatGame(archer, target)

	g.fireArrow(&g.troops[0], &g.troops[1])

	if len(g.projectiles) != 0 {
		t.Error("zero separation should not produce an arrow")
	}
}

func TestFireArrowAcrossMapSeam(t *testing.T) {
	// Shortest path from x=1950 to x=50 crosses the seam going +X
	archer := NewTroop(1, 1, 1950, 100, 0, 1, UnitArcher)
	target := NewTroop(2, 2, 50, 100, 0, -1, UnitSoldier)
	g := combatGame(archer, target)

	g.fireArrow(&g.troops[0], &g.troops[1])

	if len(g.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(g.projectiles))
	}
	if g.projectiles[0].DirX != 1 || g.projectiles[0].DirY != 0 {
		t.Errorf("arrow should fly +X through the seam, got (%v, %v)",
			g.projectiles[0].DirX, g.projectiles[0].DirY)
	}
}

func TestProjectileUpdate(t *testing.T) {
	p := Projectile{X: 100, Y: 100, DirX: 1, DirY: 0, Speed: ArrowSpeed, Life: ArrowLifetime}
	dt := 1.0 / 30
	p.Update(dt)
	wantX := 100 + ArrowSpeed*dt
	if math.Abs(p.X-wantX) > 1e-9 {
		t.Errorf("expected X %v, got %v", wantX, p.X)
	}
	if math.Abs(p.Life-(ArrowLifetime-dt)) > 1e-9 {
		t.Errorf("life should burn down by dt, got %v", p.Life)
	}
}

func TestProjectileWraps(t *testing.T) {
	p := Projectile{X: MapWidth - 1, Y: 100, DirX: 1, DirY: 0, Speed: ArrowSpeed, Life: 1}
	p.Update(0.1)
	if p.X < 0 || p.X >= MapWidth {
		t.Errorf("projectile should wrap, got X %v", p.X)
	}
}

func TestExpiredProjectileReapedSameTick(t *testing.T) {
	// A projectile whose time-to-live reaches exactly 0 within a tick
	// must be gone after that tick's reaping pass
	g := NewGame(nil)
	g.projectiles = append(g.projectiles, Projectile{
		ID: 1, X: 100, Y: 100, DirX: 1, Speed: ArrowSpeed, Life: 1.0 / 30,
	})
	g.step(1.0 / 30)
	if len(g.projectiles) != 0 {
		t.Errorf("projectile at exactly 0 life should be reaped, %d left", len(g.projectiles))
	}
}

func TestProjectileHit(t *testing.T) {
	victim := NewTroop(1, 2, 105, 100, 0, 1, UnitSoldier)
	g := combatGame(victim)
	g.projectiles = append(g.projectiles, Projectile{
		ID: 1, OwnerID: 1, X: 100, Y: 100, DirX: 1, DirY: 0, Speed: ArrowSpeed, Damage: 20, Life: 1,
	})

	g.hitProjectiles()

	if g.troops[0].Health != 80 {
		t.Errorf("victim should take 20 damage, health %v", g.troops[0].Health)
	}
	if g.projectiles[0].Life != 0 {
		t.Error("projectile should expire on hit")
	}
	// Knockback pushes the victim away from the arrow (+X here) and the
	// direction comes out renormalized
	if g.troops[0].DirX <= 0 {
		t.Errorf("victim should be knocked away, DirX %v", g.troops[0].DirX)
	}
	n := math.Hypot(g.troops[0].DirX, g.troops[0].DirY)
	if math.Abs(n-1) > 1e-9 {
		t.Errorf("knocked-back direction should be unit length, got %v", n)
	}
}

func TestProjectileHitsOnlyFirstTroop(t *testing.T) {
	a := NewTroop(1, 2, 103, 100, 0, 1, UnitSoldier)
	b := NewTroop(2, 2, 98, 100, 0, 1, UnitSoldier)
	g := combatGame(a, b)
	g.projectiles = append(g.projectiles, Projectile{
		ID: 1, OwnerID: 1, X: 100, Y: 100, Damage: 20, Life: 1,
	})

	g.hitProjectiles()

	hits := 0
	for i := range g.troops {
		if g.troops[i].Health < 100 {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("expired projectile should stop scanning after one hit, damaged %d troops", hits)
	}
}

func TestProjectileIgnoresOwnTroops(t *testing.T) {
	friendly := NewTroop(1, 1, 102, 100, 0, 1, UnitSoldier)
	g := combatGame(friendly)
	g.projectiles = append(g.projectiles, Projectile{
		ID: 1, OwnerID: 1, X: 100, Y: 100, Damage: 20, Life: 1,
	})

	g.hitProjectiles()

	if g.troops[0].Health != 100 {
		t.Error("arrows should pass through their owner's troops")
	}
	if g.projectiles[0].Life != 1 {
		t.Error("projectile should keep flying")
	}
}

func TestProjectileHitAcrossMapSeam(t *testing.T) {
	victim := NewTroop(1, 2, 3, 100, 0, 1, UnitSoldier)
	g := combatGame(victim)
	g.projectiles = append(g.projectiles, Projectile{
		ID: 1, OwnerID: 1, X: 1998, Y: 100, Damage: 20, Life: 1,
	})

	g.hitProjectiles()

	if g.troops[0].Health != 80 {
		t.Error("hit detection should work across the map seam")
	}
}
