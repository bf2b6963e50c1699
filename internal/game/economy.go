package game

// updateEconomy runs the per-tick energy income and cooldown decay.
//
// Income uses a threshold accumulator: delta is added, and once the
// accumulator reaches the income interval it is decremented by the interval
// (not zeroed, preserving fractional overflow) and both teams are paid. At
// most one income grant happens per update call even if the accumulator
// crossed the threshold more than once — the orchestrator's delta clamp makes
// multi-crossing impossible in practice, and granting once per call is the
// reference balance behaviour.
func (e *Engine) updateEconomy(delta float64) {
	for team := range e.cooldowns {
		for typ := range e.cooldowns[team] {
			e.cooldowns[team][typ] -= delta
			if e.cooldowns[team][typ] < 0 {
				e.cooldowns[team][typ] = 0
			}
		}
	}

	e.incomeAccum += delta
	if e.incomeAccum >= e.tuning.IncomeInterval {
		e.incomeAccum -= e.tuning.IncomeInterval
		e.energy[TeamPlayer] += e.tuning.IncomeAmount
		e.energy[TeamEnemy] += e.tuning.IncomeAmount
		e.emitDebug("economy", "income +%.0f, energy player=%.0f enemy=%.0f",
			e.tuning.IncomeAmount, e.energy[TeamPlayer], e.energy[TeamEnemy])
	}
}
