package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnitStats is one row of the archetype stat table.
type UnitStats struct {
	HP             float64 `yaml:"hp"`
	Damage         float64 `yaml:"damage"`
	Speed          float64 `yaml:"speed"`           // px per second
	Range          float64 `yaml:"range"`           // edge-to-edge strike range, px
	AttackCooldown float64 `yaml:"attack_cooldown"` // seconds between attacks
	Size           float64 `yaml:"size"`            // collision/visual width, px
	Cost           float64 `yaml:"cost"`            // energy debited on spawn
	Respawn        float64 `yaml:"respawn"`         // per-type spawn cooldown, seconds
	Category       string  `yaml:"category"`        // reserved targeting-filter metadata
}

// Tuning bundles every balance constant of a match. The compiled-in defaults
// are the reference balance; LoadTuning overrides them from a YAML file for
// headless experiments.
type Tuning struct {
	TowerHP        float64   `yaml:"tower_hp"`
	StartEnergy    float64   `yaml:"start_energy"`
	IncomeAmount   float64   `yaml:"income_amount"`
	IncomeInterval float64   `yaml:"income_interval"` // seconds between income grants
	MaxDelta       float64   `yaml:"max_delta"`       // clamp on a single update step, seconds
	TowerInset     float64   `yaml:"tower_inset"`     // tower distance from the arena edge
	SpawnOffset    float64   `yaml:"spawn_offset"`    // spawn distance in front of the own tower
	Melee          UnitStats `yaml:"melee"`
	Ranged         UnitStats `yaml:"ranged"`
}

// DefaultTuning returns the reference balance.
func DefaultTuning() Tuning {
	return Tuning{
		TowerHP:        1000,
		StartEnergy:    200,
		IncomeAmount:   50,
		IncomeInterval: 5,
		MaxDelta:       0.05,
		TowerInset:     30,
		SpawnOffset:    40,
		Melee: UnitStats{
			HP:             140,
			Damage:         30,
			Speed:          30,
			Range:          18,
			AttackCooldown: 1.2,
			Size:           16,
			Cost:           100,
			Respawn:        4,
			Category:       "ground",
		},
		Ranged: UnitStats{
			HP:             80,
			Damage:         16,
			Speed:          45,
			Range:          90,
			AttackCooldown: 1.6,
			Size:           12,
			Cost:           150,
			Respawn:        6,
			Category:       "ground",
		},
	}
}

// Stats returns the stat row for a unit type.
func (t *Tuning) Stats(typ UnitType) UnitStats {
	if typ == UnitMelee {
		return t.Melee
	}
	return t.Ranged
}

// validate rejects tunings that would stall or destabilise the simulation.
func (t *Tuning) validate() error {
	if t.TowerHP <= 0 {
		return fmt.Errorf("tuning: tower_hp must be > 0, got %v", t.TowerHP)
	}
	if t.IncomeInterval <= 0 {
		return fmt.Errorf("tuning: income_interval must be > 0, got %v", t.IncomeInterval)
	}
	if t.MaxDelta <= 0 {
		return fmt.Errorf("tuning: max_delta must be > 0, got %v", t.MaxDelta)
	}
	for _, typ := range []UnitType{UnitMelee, UnitRanged} {
		st := t.Stats(typ)
		if st.HP <= 0 || st.Speed <= 0 || st.AttackCooldown <= 0 {
			return fmt.Errorf("tuning: %s stats must have positive hp/speed/attack_cooldown", typ)
		}
	}
	return nil
}

// LoadTuning reads a YAML tuning file on top of the defaults, so a file only
// needs to name the values it changes.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}
