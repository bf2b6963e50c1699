package game

import "math"

// resolveCombat runs the simultaneous combat pass for one tick. Attack timers
// have already been advanced for every living unit by the orchestrator.
//
// Damage is gathered into per-victim accumulators before any of it is
// applied, so two attackers striking the same victim in one tick both count
// and no unit gains an advantage from iteration order. Attackers only reset
// their timers after all damage has landed, and the dead are purged before
// movement runs so a unit that died this tick can neither block nor be
// targeted on the next.
func (e *Engine) resolveCombat() {
	unitDamage := make(map[int]float64)
	towerDamage := make(map[int]float64)
	var attackers []*Unit

	for _, u := range e.units {
		if !u.alive || u.attackTimer < u.attackCooldown {
			continue
		}
		tgt := findTarget(u, e.units, e.towers)
		switch tgt.kind {
		case targetNone:
			continue
		case targetUnit:
			unitDamage[tgt.unit.id] += u.dmg
		case targetTower:
			towerDamage[tgt.tower.id] += u.dmg
		}
		attackers = append(attackers, u)
	}

	for _, u := range e.units {
		total, ok := unitDamage[u.id]
		if !ok {
			continue
		}
		before := u.hp
		u.hp = math.Max(0, u.hp-total)
		e.damageDealt[u.team.Opponent()] += before - u.hp
		if before > 0 && u.hp == 0 {
			u.alive = false
			// Kill attribution is deliberately team-level: the team
			// opposite the victim is credited, regardless of which of
			// its units contributed the final blow.
			e.kills[u.team.Opponent()]++
			e.emitInfo("kill", "%s %s #%d down (%.0f dmg this tick), kills %s=%d",
				u.team, u.typ, u.id, total, u.team.Opponent(), e.kills[u.team.Opponent()])
		}
	}

	for _, tw := range e.towers {
		total, ok := towerDamage[tw.id]
		if !ok {
			continue
		}
		before := tw.hp
		tw.hp = math.Max(0, tw.hp-total)
		e.damageDealt[tw.team.Opponent()] += before - tw.hp
		e.emitDebug("tower", "%s tower hit for %.0f, hp %.0f/%.0f", tw.team, total, tw.hp, tw.maxHP)
	}

	for _, tw := range e.towers {
		if tw.hp > 0 || e.gameOver != nil {
			continue
		}
		winner := tw.team.Opponent()
		e.gameOver = &GameOver{Winner: winner}
		// The losing side is wiped in the same tick; its units do not get
		// to act again. Forced deaths are not credited as kills.
		for _, u := range e.units {
			if u.team == tw.team && u.alive {
				u.alive = false
				u.hp = 0
			}
		}
		e.emitInfo("match", "%s tower destroyed, %s wins at t=%.2fs", tw.team, winner, e.time)
	}

	if e.gameOver != nil {
		// Terminal tick: no attacker timer resets, just the final purge.
		e.purgeDead()
		return
	}

	for _, u := range attackers {
		u.attackTimer = 0
	}
	e.purgeDead()
}

// purgeDead removes non-alive units from the live roster in place.
func (e *Engine) purgeDead() {
	live := e.units[:0]
	for _, u := range e.units {
		if u.alive {
			live = append(live, u)
		}
	}
	for i := len(live); i < len(e.units); i++ {
		e.units[i] = nil
	}
	e.units = live
}
