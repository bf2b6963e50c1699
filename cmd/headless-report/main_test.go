package main

import (
	"testing"

	"github.com/Garsondee/Lane-Clash/internal/game"
)

func TestCountSpawnsSplitsTeamsAndDenials(t *testing.T) {
	log := game.NewSimLog(true)
	log.Info("spawn", "player melee #3 at x=70, energy 100, cooldown 4.0s")
	log.Info("spawn", "enemy ranged #4 at x=830, energy 50, cooldown 6.0s")
	log.Debug("spawn", "player melee denied: cooldown 3.20s remaining")
	log.Debug("spawn", "enemy melee denied: energy 50 < cost 100")
	log.Info("kill", "player melee #3 down (46 dmg this tick), kills enemy=1")

	if got := countSpawns(log, "player"); got != 1 {
		t.Fatalf("expected 1 player spawn, got %d", got)
	}
	if got := countSpawns(log, "enemy"); got != 1 {
		t.Fatalf("expected 1 enemy spawn, got %d", got)
	}
	if got := countDenied(log); got != 2 {
		t.Fatalf("expected 2 denied spawns, got %d", got)
	}
}

func TestTickMarkFormatsMissingAsNA(t *testing.T) {
	if got := tickMark(-1); got != "n/a" {
		t.Fatalf("expected n/a for negative marker, got %q", got)
	}
	if got := tickMark(12.34); got != "12.3s" {
		t.Fatalf("expected 12.3s, got %q", got)
	}
}

func TestAvgMark(t *testing.T) {
	if got := avgMark(nil); got != "n/a" {
		t.Fatalf("expected n/a for empty set, got %q", got)
	}
	if got := avgMark([]float64{2, 4}); got != "3.0s" {
		t.Fatalf("expected 3.0s, got %q", got)
	}
}
