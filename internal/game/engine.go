package game

import "sync"

// GameOver is the terminal match record. It is set exactly once, when a tower
// falls, and never cleared; once present the state is frozen apart from the
// final purge of the losing side's units in the same tick.
type GameOver struct {
	Winner Team
}

// Engine owns the single mutable match state and sequences one simulation
// tick per Update call. It is step-driven: nothing advances unless the host
// calls Update, and there are no internal timers or goroutines.
//
// All commands and Update are serialised behind one mutex, so a command is
// applied either strictly before or strictly after a tick, never in the
// middle of one. Readers must only ever observe through Snapshot.
type Engine struct {
	mu sync.Mutex

	tuning  Tuning
	ids     *IDSource
	emitter Emitter

	width, height float64
	time          float64

	units  []*Unit
	towers []*Tower

	energy      [2]float64
	cooldowns   [2][2]float64 // [team][unit type] seconds remaining
	kills       [2]int
	damageDealt [2]float64 // diagnostic running totals, no gameplay effect

	playerOrder Order
	flag        *Point
	gameOver    *GameOver

	incomeAccum float64
	enemyAccum  float64
	enemyAI     bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithTuning replaces the default balance constants.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithEmitter attaches a diagnostic log sink. The engine only ever writes to
// it; gameplay never depends on delivery.
func WithEmitter(em Emitter) Option {
	return func(e *Engine) { e.emitter = em }
}

// WithIDSource injects the unit id source, for tests that assert on ids.
func WithIDSource(ids *IDSource) Option {
	return func(e *Engine) { e.ids = ids }
}

// WithScriptedEnemy enables or disables the scripted enemy spawner.
// Disabled it leaves a sandbox where only explicit SpawnUnit calls create
// enemy units.
func WithScriptedEnemy(enabled bool) Option {
	return func(e *Engine) { e.enemyAI = enabled }
}

// New creates a match on an arena of the given size: one tower per team near
// each lane end, starting energy for both sides, no units.
func New(width, height float64, opts ...Option) *Engine {
	e := &Engine{
		tuning:  DefaultTuning(),
		width:   width,
		height:  height,
		enemyAI: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ids == nil {
		e.ids = NewIDSource(1)
	}

	e.energy[TeamPlayer] = e.tuning.StartEnergy
	e.energy[TeamEnemy] = e.tuning.StartEnergy
	e.towers = []*Tower{
		{id: e.ids.Next(), team: TeamPlayer, x: e.tuning.TowerInset, y: height / 2, hp: e.tuning.TowerHP, maxHP: e.tuning.TowerHP},
		{id: e.ids.Next(), team: TeamEnemy, x: width - e.tuning.TowerInset, y: height / 2, hp: e.tuning.TowerHP, maxHP: e.tuning.TowerHP},
	}
	e.emitInfo("match", "match start, arena %.0fx%.0f, tower hp %.0f, energy %.0f", width, height, e.tuning.TowerHP, e.tuning.StartEnergy)
	return e
}

// Update advances the simulation by delta seconds (clamped to the tuning's
// safe upper bound so a stalled host clock cannot destabilise a tick).
// Sequence: time, economy, attack timers, combat, then — unless the match
// just ended — enemy spawner and movement.
func (e *Engine) Update(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver != nil || delta <= 0 {
		return
	}
	if delta > e.tuning.MaxDelta {
		e.emitWarn("clock", "delta %.3fs clamped to %.3fs", delta, e.tuning.MaxDelta)
		delta = e.tuning.MaxDelta
	}

	e.time += delta
	e.updateEconomy(delta)

	for _, u := range e.units {
		if u.alive {
			u.attackTimer += delta
		}
	}

	e.resolveCombat()
	if e.gameOver != nil {
		return
	}

	e.runEnemySpawner(delta)
	e.resolveMovement(delta)
}

// SpawnUnit is the player-facing spawn command (it also works for the enemy
// team, which the headless runner uses to script both sides). It reports
// whether the spawn passed the energy and cooldown gates.
func (e *Engine) SpawnUnit(team Team, typ UnitType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trySpawn(team, typ)
}

// SetPlayerOrder broadcasts an order to every live player unit and makes it
// the order inherited by future player spawns. Any flag target is cleared
// unless the new order is OrderMoveToFlag.
func (e *Engine) SetPlayerOrder(order Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gameOver != nil {
		return
	}

	e.playerOrder = order
	if order != OrderMoveToFlag {
		e.flag = nil
	}
	for _, u := range e.units {
		if u.team != TeamPlayer || !u.alive {
			continue
		}
		u.order = order
		if order != OrderMoveToFlag {
			u.flagTarget = nil
		}
	}
	e.emitInfo("order", "player order set to %s", order)
}

// PlaceFlag sets the shared flag point and forces every live player unit into
// OrderMoveToFlag toward it.
func (e *Engine) PlaceFlag(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gameOver != nil {
		return
	}

	e.flag = &Point{X: x, Y: y}
	e.playerOrder = OrderMoveToFlag
	for _, u := range e.units {
		if u.team != TeamPlayer || !u.alive {
			continue
		}
		u.order = OrderMoveToFlag
		f := *e.flag
		u.flagTarget = &f
	}
	e.emitInfo("order", "flag placed at (%.0f,%.0f)", x, y)
}

// Time returns the elapsed simulated match time in seconds.
func (e *Engine) Time() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.time
}

func (e *Engine) emitInfo(category, format string, args ...any) {
	if e.emitter != nil {
		e.emitter.Info(category, format, args...)
	}
}

func (e *Engine) emitDebug(category, format string, args ...any) {
	if e.emitter != nil {
		e.emitter.Debug(category, format, args...)
	}
}

func (e *Engine) emitWarn(category, format string, args ...any) {
	if e.emitter != nil {
		e.emitter.Warn(category, format, args...)
	}
}
