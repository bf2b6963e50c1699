package game

import (
	"math"
	"testing"
)

func TestUnblockedUnitAdvances(t *testing.T) {
	m := NewTestMatch(WithNoEnemyScript(), WithPlayerUnit(UnitMelee, 400))
	u := m.Engine.units[0]

	m.RunTicks(60)
	if want := 430.0; math.Abs(u.x-want) > 1e-6 {
		t.Errorf("after 1s: x = %.4f, want %.4f", u.x, want)
	}
}

func TestUnitHoldsWhileEnemyInRange(t *testing.T) {
	m := NewTestMatch(
		WithNoEnemyScript(),
		WithPlayerUnit(UnitRanged, 220), // edge to the melee: 66, within 90
		WithEnemyUnit(UnitMelee, 300),
	)
	ranged := m.Engine.units[0]
	melee := m.Engine.units[1]

	m.RunTicks(1)
	if ranged.x != 220 {
		t.Errorf("ranged unit moved while its target was in range: x = %.3f", ranged.x)
	}
	if melee.x >= 300 {
		t.Errorf("melee unit should close in: x = %.3f", melee.x)
	}
}

func TestMarchStopsAtTowerRangeAndStrikes(t *testing.T) {
	m := NewTestMatch(WithNoEnemyScript(), WithPlayerUnit(UnitMelee, 740))
	u := m.Engine.units[0]

	// The unit walks until the tower's edge distance reaches its strike
	// range, then the first hit lands.
	n := m.RunUntil(func(s Snapshot) bool {
		return towerByTeam(t, s, TeamEnemy).HP < 1000
	}, 600)
	if n < 0 {
		t.Fatalf("tower never took damage; log:\n%s", m.Log.Format())
	}

	snap := m.Engine.Snapshot()
	if hp := towerByTeam(t, snap, TeamEnemy).HP; hp != 970 {
		t.Errorf("tower hp after first strike = %.1f, want 970", hp)
	}
	// Strike range is reached at x = 844 (tower 870, half-size 8, range 18);
	// the fixed tick grid can overshoot by at most one step.
	if u.x < 844-1e-9 || u.x > 844.6 {
		t.Errorf("resting x = %.4f, want within [844, 844.6]", u.x)
	}

	// Once holding, the unit stays put and keeps striking on its cooldown.
	restX := u.x
	m.RunTicks(73) // 1.2s cooldown on the 1/60s grid
	if u.x != restX {
		t.Errorf("holding unit moved: %.4f -> %.4f", restX, u.x)
	}
	if hp := towerByTeam(t, m.Engine.Snapshot(), TeamEnemy).HP; hp != 940 {
		t.Errorf("tower hp after second strike = %.1f, want 940", hp)
	}
}

func TestBlockedUnitSnapsToContact(t *testing.T) {
	m := NewTestMatch(
		WithNoEnemyScript(),
		WithEnemyUnit(UnitMelee, 500),
		WithPlayerUnit(UnitMelee, 483.25), // edge 0.75: obstructed
	)
	u := m.Engine.units[1]
	// Shrink the strike range below the obstruction margin so the unit is
	// blocked without being able to fight, which forces the snap branch.
	u.attackRange = 0.5

	m.RunTicks(1)
	if u.x != 484 {
		t.Errorf("snapped x = %.4f, want exact contact at 484", u.x)
	}
}

func TestSpacingSweepPushesFollowerBack(t *testing.T) {
	m := NewTestMatch(
		WithNoEnemyScript(),
		WithPlayerUnit(UnitMelee, 100),
		WithPlayerUnit(UnitMelee, 104), // too close: min gap is 18
	)
	follower := m.Engine.units[0]
	leader := m.Engine.units[1]

	m.RunTicks(1)
	// Both stepped 0.5 first, then the sweep pushed the follower back.
	if math.Abs(leader.x-104.5) > 1e-6 {
		t.Errorf("leader x = %.4f, want 104.5", leader.x)
	}
	if math.Abs(follower.x-(leader.x-18)) > 1e-6 {
		t.Errorf("follower x = %.4f, want leader-18 = %.4f", follower.x, leader.x-18)
	}
}

func TestSpacingSweepYieldsTowardOwnBase(t *testing.T) {
	m := NewTestMatch(
		WithNoEnemyScript(),
		WithEnemyUnit(UnitMelee, 800), // leader, marching -x
		WithEnemyUnit(UnitMelee, 804), // follower, nearer the enemy base
	)
	leader := m.Engine.units[0]
	follower := m.Engine.units[1]

	m.RunTicks(1)
	if math.Abs(leader.x-799.5) > 1e-6 {
		t.Errorf("leader x = %.4f, want 799.5", leader.x)
	}
	// The enemy base is rightward, so the follower yields rightward.
	if math.Abs(follower.x-(leader.x+18)) > 1e-6 {
		t.Errorf("follower x = %.4f, want leader+18 = %.4f", follower.x, leader.x+18)
	}
}
