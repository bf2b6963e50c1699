package game

import "math"

// Tower is a team's base structure. Exactly one exists per team, created at
// match start. It never moves and is never removed; reaching 0 hp is the
// terminal signal for the match.
type Tower struct {
	id        int
	team      Team
	x, y      float64
	hp, maxHP float64
}

// targetKind tags the three possible outcomes of target acquisition.
type targetKind int

const (
	targetNone targetKind = iota
	targetUnit
	targetTower
)

// target is the acquisition result. References are only valid within the tick
// that produced them — no target lock survives a tick boundary.
type target struct {
	kind  targetKind
	unit  *Unit
	tower *Tower
}

// edgeDistance converts a centre-to-centre horizontal distance into an
// edge-to-edge distance by subtracting both half-widths, clamped at 0.
func edgeDistance(dx, sizeA, sizeB float64) float64 {
	d := math.Abs(dx) - (sizeA+sizeB)/2
	if d < 0 {
		return 0
	}
	return d
}

// ahead reports whether x lies strictly ahead of u in its direction of travel.
func (u *Unit) ahead(x float64) bool {
	if u.team == TeamPlayer {
		return x > u.x
	}
	return x < u.x
}

// nearestEnemyAhead scans the roster for the living opposing unit strictly
// ahead of u with the smallest horizontal distance. Ties (rare with float
// positions) break toward the lower id so the scan is order-independent.
func nearestEnemyAhead(u *Unit, units []*Unit) *Unit {
	var best *Unit
	bestDist := math.Inf(1)
	for _, other := range units {
		if other.team == u.team || !other.alive || !u.ahead(other.x) {
			continue
		}
		dist := math.Abs(other.x - u.x)
		if dist < bestDist || (dist == bestDist && best != nil && other.id < best.id) {
			best = other
			bestDist = dist
		}
	}
	return best
}

// findTarget picks what u should attack this tick: the nearest living enemy
// unit ahead if it is within strike range, otherwise the opposing tower if
// that is within range, otherwise nothing. The tower contributes no size term
// to the edge distance. The reserved category/distance/effect preference
// fields on the unit are not consulted; a future filter chain applies here.
func findTarget(u *Unit, units []*Unit, towers []*Tower) target {
	if enemy := nearestEnemyAhead(u, units); enemy != nil {
		if edgeDistance(enemy.x-u.x, u.size, enemy.size) <= u.attackRange {
			return target{kind: targetUnit, unit: enemy}
		}
	}
	for _, tw := range towers {
		if tw.team == u.team {
			continue
		}
		if edgeDistance(tw.x-u.x, u.size, 0) <= u.attackRange {
			return target{kind: targetTower, tower: tw}
		}
	}
	return target{kind: targetNone}
}
