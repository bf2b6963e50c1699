package game

// UnitSnapshot is a value copy of one unit's observable state.
type UnitSnapshot struct {
	ID     int
	Type   UnitType
	Team   Team
	X, Y   float64
	Size   float64
	HP     float64
	MaxHP  float64
	Order  Order
	Flag   *Point

	// Reserved targeting-filter metadata, carried for forward
	// compatibility.
	Category string
}

// TowerSnapshot is a value copy of one tower's observable state.
type TowerSnapshot struct {
	ID    int
	Team  Team
	X, Y  float64
	HP    float64
	MaxHP float64
}

// Snapshot is a structurally independent copy of the match state. The render
// layer (and anything else outside the engine) reads only snapshots; nothing
// reachable from one aliases live simulation state.
type Snapshot struct {
	Time          float64
	Width, Height float64

	Units  []UnitSnapshot
	Towers []TowerSnapshot

	Energy      [2]float64
	Cooldowns   [2][2]float64 // [team][unit type] seconds remaining
	Kills       [2]int
	DamageDealt [2]float64

	CurrentOrder Order
	Flag         *Point
	GameOver     *GameOver
}

// Snapshot returns a defensive copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Time:         e.time,
		Width:        e.width,
		Height:       e.height,
		Energy:       e.energy,
		Cooldowns:    e.cooldowns,
		Kills:        e.kills,
		DamageDealt:  e.damageDealt,
		CurrentOrder: e.playerOrder,
	}

	snap.Units = make([]UnitSnapshot, 0, len(e.units))
	for _, u := range e.units {
		us := UnitSnapshot{
			ID:       u.id,
			Type:     u.typ,
			Team:     u.team,
			X:        u.x,
			Y:        u.y,
			Size:     u.size,
			HP:       u.hp,
			MaxHP:    u.maxHP,
			Order:    u.order,
			Category: u.category,
		}
		if u.flagTarget != nil {
			f := *u.flagTarget
			us.Flag = &f
		}
		snap.Units = append(snap.Units, us)
	}

	snap.Towers = make([]TowerSnapshot, 0, len(e.towers))
	for _, tw := range e.towers {
		snap.Towers = append(snap.Towers, TowerSnapshot{
			ID:    tw.id,
			Team:  tw.team,
			X:     tw.x,
			Y:     tw.y,
			HP:    tw.hp,
			MaxHP: tw.maxHP,
		})
	}

	if e.flag != nil {
		f := *e.flag
		snap.Flag = &f
	}
	if e.gameOver != nil {
		g := *e.gameOver
		snap.GameOver = &g
	}
	return snap
}
