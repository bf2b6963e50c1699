package game

import (
	"math"
	"sort"
)

const (
	// blockMargin is how far beyond contact an enemy still counts as a
	// physical obstruction, in px of edge-to-edge distance.
	blockMargin = 1.0
	// spacingMargin is the extra gap the anti-overlap sweep keeps between
	// same-team neighbours, in px.
	spacingMargin = 2.0
)

// resolveMovement advances every living unit that is free to move, then runs
// the same-team anti-overlap sweep. It runs after combat's purge, so it never
// sees a unit that died this tick, and it recomputes its own view of the
// battlefield rather than reusing combat's targets — a victim chosen at the
// top of the tick may be gone by now.
func (e *Engine) resolveMovement(delta float64) {
	for _, u := range e.units {
		if !u.alive {
			continue
		}

		blocker := nearestEnemyAhead(u, e.units)
		blocked := false
		inRangeOfEnemy := false
		if blocker != nil {
			edge := edgeDistance(blocker.x-u.x, u.size, blocker.size)
			blocked = edge <= blockMargin
			inRangeOfEnemy = edge <= u.attackRange
		}

		inRangeOfTower := false
		for _, tw := range e.towers {
			if tw.team == u.team {
				continue
			}
			if edgeDistance(tw.x-u.x, u.size, 0) <= u.attackRange {
				inRangeOfTower = true
			}
		}

		switch {
		case inRangeOfEnemy || inRangeOfTower:
			// Holding position; combat handles the rest.
		case blocked:
			// Physically obstructed but out of strike range (possible
			// when a short-ranged unit runs into a wide blocker): snap
			// to exact contact behind the blocker instead of advancing
			// into it.
			contact := (u.size + blocker.size) / 2
			u.x = blocker.x - u.team.direction()*contact
		default:
			stepUnit(u, delta)
		}
	}

	e.enforceSpacing()
}

// enforceSpacing is the same-team anti-overlap pass: one left-to-right sweep
// over the roster sorted by x. When two same-team neighbours sit closer than
// half their combined widths plus a margin, the one nearer its own base
// yields further toward that base, restoring the minimum gap. A single sweep
// can leave residual overlap in chains of three or more units for a tick;
// spawns enter at a fixed point and the lane is one-directional, so chains
// are rare and resolve over the following ticks.
func (e *Engine) enforceSpacing() {
	sorted := make([]*Unit, 0, len(e.units))
	for _, u := range e.units {
		if u.alive {
			sorted = append(sorted, u)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].x < sorted[j].x })

	for i := 0; i+1 < len(sorted); i++ {
		left, right := sorted[i], sorted[i+1]
		if left.team != right.team {
			continue
		}
		gap := (left.size+right.size)/2 + spacingMargin
		if math.Abs(right.x-left.x) >= gap {
			continue
		}
		if left.team == TeamPlayer {
			// Player base is leftward: the left unit is the follower.
			left.x = right.x - gap
		} else {
			right.x = left.x + gap
		}
	}
}
