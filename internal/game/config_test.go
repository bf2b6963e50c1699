package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	tuning := DefaultTuning()
	if err := tuning.validate(); err != nil {
		t.Fatalf("reference balance rejected: %v", err)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := writeTuningFile(t, `
tower_hp: 500
melee:
  hp: 200
  damage: 30
  speed: 30
  range: 18
  attack_cooldown: 1.2
  size: 16
  cost: 100
  respawn: 4
`)
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if tuning.TowerHP != 500 {
		t.Errorf("tower_hp = %.0f, want 500", tuning.TowerHP)
	}
	if tuning.Melee.HP != 200 {
		t.Errorf("melee hp = %.0f, want 200", tuning.Melee.HP)
	}
	// Values the file does not name keep their defaults.
	if tuning.StartEnergy != 200 || tuning.Ranged.HP != 80 {
		t.Errorf("defaults lost under overlay: start=%.0f ranged_hp=%.0f", tuning.StartEnergy, tuning.Ranged.HP)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := writeTuningFile(t, "tower_hp: -5\n")
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("negative tower_hp accepted")
	}

	path = writeTuningFile(t, "melee:\n  hp: 0\n")
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("zero melee hp accepted")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
