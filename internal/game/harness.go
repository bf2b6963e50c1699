package game

// TestMatch is a headless match harness used by tests and the report runner.
// It drives the engine at a fixed tick rate, stamps simulated time onto a
// SimLog, and can pre-place units at arbitrary lane positions, bypassing the
// economy, so scenarios start exactly where they need to.
type TestMatch struct {
	Engine *Engine
	Log    *SimLog
}

// matchTickDelta is the fixed step used by the harness: 60 ticks per second.
const matchTickDelta = 1.0 / 60

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptInfra matchOptionKind = iota // arena, tuning, log, scripts — before engine build
	matchOptSetup                        // units, energy, tower hp — after engine build
)

// MatchOption is a builder function applied to a TestMatch during
// construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*matchConfig, *TestMatch)
}

type matchConfig struct {
	width, height float64
	tuning        Tuning
	verbose       bool
	enemyScript   bool
}

// WithArena sets the lane dimensions.
func WithArena(w, h float64) MatchOption {
	return MatchOption{matchOptInfra, func(c *matchConfig, _ *TestMatch) {
		c.width = w
		c.height = h
	}}
}

// WithBalance replaces the default tuning.
func WithBalance(t Tuning) MatchOption {
	return MatchOption{matchOptInfra, func(c *matchConfig, _ *TestMatch) {
		c.tuning = t
	}}
}

// WithVerboseLog keeps debug-level entries in the SimLog.
func WithVerboseLog() MatchOption {
	return MatchOption{matchOptInfra, func(c *matchConfig, _ *TestMatch) {
		c.verbose = true
	}}
}

// WithNoEnemyScript disables the scripted enemy spawner, leaving a sandbox
// where only the harness and explicit SpawnUnit calls create units.
func WithNoEnemyScript() MatchOption {
	return MatchOption{matchOptInfra, func(c *matchConfig, _ *TestMatch) {
		c.enemyScript = false
	}}
}

// WithPlayerUnit pre-places a player unit of the given type at lane position x.
func WithPlayerUnit(typ UnitType, x float64) MatchOption {
	return MatchOption{matchOptSetup, func(_ *matchConfig, m *TestMatch) {
		m.Engine.placeUnit(typ, TeamPlayer, x)
	}}
}

// WithEnemyUnit pre-places an enemy unit of the given type at lane position x.
func WithEnemyUnit(typ UnitType, x float64) MatchOption {
	return MatchOption{matchOptSetup, func(_ *matchConfig, m *TestMatch) {
		m.Engine.placeUnit(typ, TeamEnemy, x)
	}}
}

// WithEnergy overrides both teams' starting energy.
func WithEnergy(player, enemy float64) MatchOption {
	return MatchOption{matchOptSetup, func(_ *matchConfig, m *TestMatch) {
		m.Engine.energy[TeamPlayer] = player
		m.Engine.energy[TeamEnemy] = enemy
	}}
}

// WithTowerHP overrides one tower's remaining hp.
func WithTowerHP(team Team, hp float64) MatchOption {
	return MatchOption{matchOptSetup, func(_ *matchConfig, m *TestMatch) {
		for _, tw := range m.Engine.towers {
			if tw.team == team {
				tw.hp = hp
			}
		}
	}}
}

// NewTestMatch builds a harness in two ordered passes: infrastructure first
// (arena, tuning, log, scripts), then setup (pre-placed units, energy and
// tower overrides) once the engine exists.
func NewTestMatch(opts ...MatchOption) *TestMatch {
	cfg := matchConfig{
		width:       900,
		height:      400,
		tuning:      DefaultTuning(),
		enemyScript: true,
	}
	m := &TestMatch{}
	for _, o := range opts {
		if o.kind == matchOptInfra {
			o.fn(&cfg, m)
		}
	}

	m.Log = NewSimLog(cfg.verbose)
	m.Engine = New(cfg.width, cfg.height,
		WithTuning(cfg.tuning),
		WithEmitter(m.Log),
		WithScriptedEnemy(cfg.enemyScript),
	)

	for _, o := range opts {
		if o.kind == matchOptSetup {
			o.fn(&cfg, m)
		}
	}
	return m
}

// RunTicks advances the match n fixed-rate ticks.
func (m *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		m.Log.SetTime(m.Engine.Time() + matchTickDelta)
		m.Engine.Update(matchTickDelta)
	}
}

// RunSeconds advances the match by whole seconds of simulated time.
func (m *TestMatch) RunSeconds(s float64) {
	m.RunTicks(int(s / matchTickDelta))
}

// RunUntil advances up to maxTicks, stopping early when the predicate holds
// for the post-tick snapshot. Returns the number of ticks run, or -1 if the
// predicate never held.
func (m *TestMatch) RunUntil(predicate func(Snapshot) bool, maxTicks int) int {
	for i := 1; i <= maxTicks; i++ {
		m.Log.SetTime(m.Engine.Time() + matchTickDelta)
		m.Engine.Update(matchTickDelta)
		if predicate(m.Engine.Snapshot()) {
			return i
		}
	}
	return -1
}

// placeUnit inserts a fully-initialised unit directly into the roster,
// bypassing the spawn gates. Harness and tests only.
func (e *Engine) placeUnit(typ UnitType, team Team, x float64) *Unit {
	u := newUnit(e.ids, &e.tuning, typ, x, e.height/2, team)
	e.units = append(e.units, u)
	return u
}
