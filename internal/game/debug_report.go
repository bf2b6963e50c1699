package game

import (
	"fmt"
	"strings"
)

// BuildDebugReport renders a snapshot and the recent battle log tail as a
// plain-text report, suitable for pasting into a bug ticket. The app binds it
// to a clipboard key.
func BuildDebugReport(snap Snapshot, recent []BattleEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Lane Clash debug report ---\n")
	fmt.Fprintf(&b, "t=%.2fs arena=%.0fx%.0f order=%s\n", snap.Time, snap.Width, snap.Height, snap.CurrentOrder)
	if snap.GameOver != nil {
		fmt.Fprintf(&b, "game over: %s wins\n", snap.GameOver.Winner)
	}
	if snap.Flag != nil {
		fmt.Fprintf(&b, "flag: (%.0f,%.0f)\n", snap.Flag.X, snap.Flag.Y)
	}
	b.WriteByte('\n')

	for _, team := range []Team{TeamPlayer, TeamEnemy} {
		fmt.Fprintf(&b, "== %s ==\n", team)
		fmt.Fprintf(&b, "energy=%.0f kills=%d damage_dealt=%.0f\n",
			snap.Energy[team], snap.Kills[team], snap.DamageDealt[team])
		fmt.Fprintf(&b, "cooldowns: melee=%.2fs ranged=%.2fs\n",
			snap.Cooldowns[team][UnitMelee], snap.Cooldowns[team][UnitRanged])
		for _, tw := range snap.Towers {
			if tw.Team == team {
				fmt.Fprintf(&b, "tower #%d hp=%.0f/%.0f at x=%.0f\n", tw.ID, tw.HP, tw.MaxHP, tw.X)
			}
		}
		n := 0
		for _, u := range snap.Units {
			if u.Team != team {
				continue
			}
			fmt.Fprintf(&b, "  %s #%d x=%.1f hp=%.0f/%.0f order=%s\n", u.Type, u.ID, u.X, u.HP, u.MaxHP, u.Order)
			n++
		}
		if n == 0 {
			b.WriteString("  (no units)\n")
		}
		b.WriteByte('\n')
	}

	b.WriteString("== recent log ==\n")
	if len(recent) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, e := range recent {
		fmt.Fprintf(&b, "%6.1f %-5s %s\n", e.Time, e.Level, e.Message)
	}
	return b.String()
}
