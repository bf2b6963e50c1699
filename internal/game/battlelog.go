package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 11
)

// BattleEntry is a single line in the on-screen battle log.
type BattleEntry struct {
	Time    float64
	Level   string
	Message string
}

// BattleLog is a fixed-capacity ring buffer of engine events rendered in a
// side panel. It exists purely for on-screen diagnostics: the engine writes
// to it through the Emitter interface and never reads it back, and dropping
// old entries has no effect on gameplay. Debug-level events are skipped to
// keep the panel readable.
type BattleLog struct {
	entries []BattleEntry
	head    int
	count   int
	now     float64
}

// NewBattleLog creates a battle log with a fixed capacity.
func NewBattleLog() *BattleLog {
	return &BattleLog{
		entries: make([]BattleEntry, logMaxEntries),
	}
}

// SetTime sets the simulated time stamped onto subsequent entries. The app
// pushes this once per frame before driving the engine.
func (bl *BattleLog) SetTime(t float64) { bl.now = t }

func (bl *BattleLog) add(level, category, format string, args ...any) {
	bl.entries[bl.head] = BattleEntry{
		Time:    bl.now,
		Level:   level,
		Message: fmt.Sprintf("%s: %s", category, fmt.Sprintf(format, args...)),
	}
	bl.head = (bl.head + 1) % logMaxEntries
	if bl.count < logMaxEntries {
		bl.count++
	}
}

// Info implements Emitter.
func (bl *BattleLog) Info(category, format string, args ...any) {
	bl.add("info", category, format, args...)
}

// Debug implements Emitter. Too chatty for the panel; dropped.
func (bl *BattleLog) Debug(category, format string, args ...any) {}

// Warn implements Emitter.
func (bl *BattleLog) Warn(category, format string, args ...any) {
	bl.add("warn", category, format, args...)
}

// Error implements Emitter.
func (bl *BattleLog) Error(category, format string, args ...any) {
	bl.add("error", category, format, args...)
}

// Recent returns entries in chronological order (oldest first).
func (bl *BattleLog) Recent() []BattleEntry {
	result := make([]BattleEntry, bl.count)
	for i := 0; i < bl.count; i++ {
		idx := (bl.head - bl.count + i + logMaxEntries) % logMaxEntries
		result[i] = bl.entries[idx]
	}
	return result
}

// Draw renders the battle log panel on the right side of the screen.
func (bl *BattleLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "BATTLE LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := bl.Recent()

	// Draw from bottom up so newest is at bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}

	visible := entries[startIdx:]
	recent := 3 // how many latest entries to highlight

	y := 20
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}

		// Warn/error entries get a marker dot.
		if e.Level != "info" {
			vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, color.RGBA{R: 220, G: 180, B: 60, A: 255}, false)
		}

		line := fmt.Sprintf("%6.1f %s", e.Time, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
