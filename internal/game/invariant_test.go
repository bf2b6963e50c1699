package game

import "testing"

// checkRoster asserts the structural invariants of a live roster: every unit
// on it is alive with hp in (0, maxHP], and dead units never linger.
func checkRoster(t *testing.T, snap Snapshot) {
	t.Helper()
	for _, u := range snap.Units {
		if u.HP <= 0 || u.HP > u.MaxHP {
			t.Fatalf("t=%.2f: unit #%d hp %.2f outside (0, %.0f]", snap.Time, u.ID, u.HP, u.MaxHP)
		}
		if u.Y != snap.Height/2 {
			t.Fatalf("t=%.2f: unit #%d drifted off the lane: y=%.2f", snap.Time, u.ID, u.Y)
		}
	}
	for _, tw := range snap.Towers {
		if tw.HP < 0 || tw.HP > tw.MaxHP {
			t.Fatalf("t=%.2f: tower #%d hp %.2f outside [0, %.0f]", snap.Time, tw.ID, tw.HP, tw.MaxHP)
		}
	}
}

// checkResources asserts energy and cooldowns never go negative.
func checkResources(t *testing.T, snap Snapshot) {
	t.Helper()
	for team := TeamPlayer; team <= TeamEnemy; team++ {
		if snap.Energy[team] < 0 {
			t.Fatalf("t=%.2f: %s energy negative: %.2f", snap.Time, team, snap.Energy[team])
		}
		for typ := UnitMelee; typ <= UnitRanged; typ++ {
			if snap.Cooldowns[team][typ] < 0 {
				t.Fatalf("t=%.2f: %s %s cooldown negative: %.4f", snap.Time, team, typ, snap.Cooldowns[team][typ])
			}
		}
	}
}

// A two-minute scripted brawl with a simple player policy. The point is not
// the outcome but that the structural invariants hold on every sampled tick
// and the bookkeeping stays consistent with the event log.
func TestInvariantsHoldThroughScriptedBattle(t *testing.T) {
	m := NewTestMatch()

	lastTime := 0.0
	lastKills := [2]int{}
	for tick := 1; tick <= 7200; tick++ {
		m.RunTicks(1)
		if tick%60 == 0 {
			m.Engine.SpawnUnit(TeamPlayer, UnitMelee)
		}
		if tick%300 == 0 {
			m.Engine.SpawnUnit(TeamPlayer, UnitRanged)
		}

		if tick%30 != 0 {
			continue
		}
		snap := m.Engine.Snapshot()
		checkRoster(t, snap)
		checkResources(t, snap)

		if snap.Time < lastTime {
			t.Fatalf("time went backwards: %.3f -> %.3f", lastTime, snap.Time)
		}
		lastTime = snap.Time
		for team := TeamPlayer; team <= TeamEnemy; team++ {
			if snap.Kills[team] < lastKills[team] {
				t.Fatalf("%s kill counter decreased: %d -> %d", team, lastKills[team], snap.Kills[team])
			}
		}
		lastKills = snap.Kills

		if snap.GameOver != nil {
			break
		}
	}

	snap := m.Engine.Snapshot()
	// Every combat kill writes exactly one log entry; forced wipes on the
	// terminal tick write none.
	logged := m.Log.CountCategory("kill")
	if want := snap.Kills[TeamPlayer] + snap.Kills[TeamEnemy]; logged != want {
		t.Errorf("kill log entries = %d, kill counters = %d", logged, want)
	}
	if snap.GameOver != nil {
		if n := len(unitsByTeam(snap, snap.GameOver.Winner.Opponent())); n != 0 {
			t.Errorf("losing side kept %d units after the match ended", n)
		}
	}
}
