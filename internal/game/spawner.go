package game

// trySpawn is the single gate every spawn goes through, player command and
// scripted enemy alike. It returns false, with no state change at all, when
// the team cannot afford the unit or the per-type respawn cooldown has not
// elapsed. On success it debits energy, arms the cooldown and places the new
// unit just in front of the team's own tower.
func (e *Engine) trySpawn(team Team, typ UnitType) bool {
	if e.gameOver != nil {
		return false
	}
	st := e.tuning.Stats(typ)
	if e.energy[team] < st.Cost {
		e.emitDebug("spawn", "%s %s denied: energy %.0f < cost %.0f", team, typ, e.energy[team], st.Cost)
		return false
	}
	if e.cooldowns[team][typ] > 0 {
		e.emitDebug("spawn", "%s %s denied: cooldown %.2fs remaining", team, typ, e.cooldowns[team][typ])
		return false
	}

	e.energy[team] -= st.Cost
	e.cooldowns[team][typ] = st.Respawn

	x := e.towers[team].x + team.direction()*e.tuning.SpawnOffset
	u := newUnit(e.ids, &e.tuning, typ, x, e.height/2, team)
	if team == TeamPlayer {
		// New player units inherit whatever order is currently broadcast.
		u.order = e.playerOrder
		if e.playerOrder == OrderMoveToFlag && e.flag != nil {
			f := *e.flag
			u.flagTarget = &f
		}
	}
	e.units = append(e.units, u)

	e.emitInfo("spawn", "%s %s #%d at x=%.0f, energy %.0f, cooldown %.1fs", team, typ, u.id, u.x, e.energy[team], st.Respawn)
	return true
}

// runEnemySpawner is the scripted opponent. It makes one spawn decision per
// accumulated second of simulated time: ranged if affordable and
// off-cooldown, else melee if affordable and off-cooldown, else nothing.
// The heuristic is deterministic and keeps no state beyond the accumulator.
func (e *Engine) runEnemySpawner(delta float64) {
	if !e.enemyAI {
		return
	}
	e.enemyAccum += delta
	if e.enemyAccum < 1 {
		return
	}
	e.enemyAccum -= 1

	if e.trySpawn(TeamEnemy, UnitRanged) {
		return
	}
	e.trySpawn(TeamEnemy, UnitMelee)
}
