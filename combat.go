package main

import "math"

// resolveCombat runs the pairwise combat pass over every ordered pair of
// troops with different owners. The first troop of the pair acts as the
// attacker. Iteration order is part of the observable behavior: a troop
// damaged early in the tick still attacks later in the same tick, and
// two soldiers in range of each other both land hits before reaping.
func (g *Game) resolveCombat(dt float64) {
	for i := range g.troops {
		attacker := &g.troops[i]
		def := GetUnitDef(attacker.Type)

		// Weight of everything the knight is plowing through this tick
		collidingWeight := 0.0

		for j := range g.troops {
			if i == j {
				continue
			}
			defender := &g.troops[j]
			if attacker.OwnerID == defender.OwnerID {
				continue
			}

			dx := WrapDelta(attacker.X, defender.X, MapWidth)
			dy := WrapDelta(attacker.Y, defender.Y, MapHeight)
			dist := math.Hypot(dx, dy)

			if dist < MeleeRadius {
				switch attacker.Type {
				case UnitSoldier:
					if dist <= def.AttackRange {
						attacker.Attacking = true
						attacker.TargetID = defender.ID
						if attacker.Cooldown <= 0 {
							defender.Health -= attacker.Attack
							attacker.Cooldown = 1 / def.AttackRate
						}
					}
				case UnitKnight:
					// Continuous charge damage, no cooldown
					defender.Health -= attacker.Attack * dt
					collidingWeight += defender.Weight
				case UnitArcher:
					// Archers are weak in close combat
					attacker.Health -= defender.Attack * 1.5 * dt
				}

				// Bounce: blend both directions toward the separation
				// normal and renormalize each independently
				if dist > 0 {
					nx := dx / dist
					ny := dy / dist
					attacker.DirX, attacker.DirY = Normalize(
						nx*0.5+attacker.DirX*0.5, ny*0.5+attacker.DirY*0.5)
					defender.DirX, defender.DirY = Normalize(
						-nx*0.5+defender.DirX*0.5, -ny*0.5+defender.DirY*0.5)
				}
			} else if attacker.Type == UnitArcher {
				if dist >= def.MinRange && dist <= def.MaxRange && attacker.Cooldown <= 0 {
					g.fireArrow(attacker, defender)
					attacker.Cooldown = 1 / def.AttackRate
				}
			}
		}

		// Mass slows the charge: knights lose speed for every defender
		// they are in contact with, floored at a standstill
		if attacker.Type == UnitKnight && collidingWeight > 0 {
			attacker.Speed = math.Max(0, attacker.Speed-collidingWeight*KnightDrag*dt)
		}
	}
}
