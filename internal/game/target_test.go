package game

import "testing"

// mkUnit builds a unit for targeting tests without an engine.
func mkUnit(t *testing.T, ids *IDSource, typ UnitType, team Team, x float64) *Unit {
	t.Helper()
	tuning := DefaultTuning()
	return newUnit(ids, &tuning, typ, x, 200, team)
}

func mkTowers() []*Tower {
	return []*Tower{
		{id: 1, team: TeamPlayer, x: 30, y: 200, hp: 1000, maxHP: 1000},
		{id: 2, team: TeamEnemy, x: 870, y: 200, hp: 1000, maxHP: 1000},
	}
}

func TestEdgeDistanceClampsAtZero(t *testing.T) {
	if d := edgeDistance(10, 16, 16); d != 0 {
		t.Errorf("overlapping edge distance = %.3f, want 0", d)
	}
	if d := edgeDistance(-50, 16, 12); d != 36 {
		t.Errorf("edge distance = %.3f, want 36", d)
	}
}

func TestFindTargetPicksNearestEnemyAhead(t *testing.T) {
	ids := NewIDSource(10)
	u := mkUnit(t, ids, UnitRanged, TeamPlayer, 100) // range 90, size 12

	behind := mkUnit(t, ids, UnitMelee, TeamEnemy, 50)  // behind: ignored
	far := mkUnit(t, ids, UnitMelee, TeamEnemy, 190)    // ahead, edge 76
	near := mkUnit(t, ids, UnitMelee, TeamEnemy, 150)   // ahead, edge 36
	friend := mkUnit(t, ids, UnitMelee, TeamPlayer, 120) // same team: ignored

	tgt := findTarget(u, []*Unit{behind, far, near, friend, u}, mkTowers())
	if tgt.kind != targetUnit || tgt.unit != near {
		t.Fatalf("target = %+v, want nearest enemy ahead (id %d)", tgt, near.id)
	}
}

func TestFindTargetIgnoresDeadAndOutOfRange(t *testing.T) {
	ids := NewIDSource(10)
	u := mkUnit(t, ids, UnitMelee, TeamPlayer, 100) // range 18

	dead := mkUnit(t, ids, UnitMelee, TeamEnemy, 120)
	dead.alive = false
	dead.hp = 0
	distant := mkUnit(t, ids, UnitMelee, TeamEnemy, 400)

	tgt := findTarget(u, []*Unit{u, dead, distant}, mkTowers())
	if tgt.kind != targetNone {
		t.Fatalf("target = %+v, want none", tgt)
	}
}

func TestFindTargetTieBreaksByLowerID(t *testing.T) {
	ids := NewIDSource(10)
	u := mkUnit(t, ids, UnitRanged, TeamPlayer, 100)
	first := mkUnit(t, ids, UnitMelee, TeamEnemy, 150)
	second := mkUnit(t, ids, UnitMelee, TeamEnemy, 150)

	// Roster order must not matter: the lower id wins the tie either way.
	tgt := findTarget(u, []*Unit{u, second, first}, mkTowers())
	if tgt.kind != targetUnit || tgt.unit != first {
		t.Fatalf("tie-break picked id %d, want %d", tgt.unit.id, first.id)
	}
	tgt = findTarget(u, []*Unit{u, first, second}, mkTowers())
	if tgt.kind != targetUnit || tgt.unit != first {
		t.Fatalf("tie-break is roster-order dependent")
	}
}

func TestFindTargetFallsBackToTowerOnlyWhenNoUnitInRange(t *testing.T) {
	ids := NewIDSource(10)
	towers := mkTowers()

	// In tower range, no enemy units at all.
	u := mkUnit(t, ids, UnitMelee, TeamPlayer, 850) // tower edge |870-850|-8 = 12
	tgt := findTarget(u, []*Unit{u}, towers)
	if tgt.kind != targetTower || tgt.tower.team != TeamEnemy {
		t.Fatalf("target = %+v, want enemy tower", tgt)
	}

	// An enemy unit in range takes precedence over the tower.
	blocker := mkUnit(t, ids, UnitMelee, TeamEnemy, 860)
	tgt = findTarget(u, []*Unit{u, blocker}, towers)
	if tgt.kind != targetUnit || tgt.unit != blocker {
		t.Fatalf("target = %+v, want enemy unit over tower", tgt)
	}

	// An enemy unit ahead but out of range must not shadow an in-range tower.
	u2 := mkUnit(t, ids, UnitMelee, TeamPlayer, 850)
	distant := mkUnit(t, ids, UnitMelee, TeamEnemy, 910)
	tgt = findTarget(u2, []*Unit{u2, distant}, towers)
	if tgt.kind != targetTower {
		t.Fatalf("target = %+v, want tower despite out-of-range unit ahead", tgt)
	}
}
