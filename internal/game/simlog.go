package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded engine event during a headless run.
type SimLogEntry struct {
	Seq      int     // monotonically increasing per log
	Time     float64 // simulated seconds, as last pushed by the driver
	Level    string  // info, debug, warn, error
	Category string  // e.g. spawn, kill, tower, match
	Message  string
}

// String formats the entry as a fixed-width log line.
//
//	[t=012.45] info  kill      enemy melee #7 down ...
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[t=%06.2f] %-5s %-9s %s", e.Time, e.Level, e.Category, e.Message)
}

// SimLog is an unbounded, machine-readable Emitter used by tests and the
// headless report runner. The engine's emit interface carries no clock, so
// the driver pushes the current simulated time with SetTime before each
// Update call; everything is single-threaded, so entries are stamped exactly.
// When verbose is off, debug entries are dropped.
type SimLog struct {
	entries []SimLogEntry
	now     float64
	verbose bool
}

// NewSimLog creates a SimLog. Verbose mode keeps debug-level entries too.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// SetTime sets the simulated time stamped onto subsequent entries.
func (sl *SimLog) SetTime(t float64) { sl.now = t }

func (sl *SimLog) add(level, category, format string, args ...any) {
	sl.entries = append(sl.entries, SimLogEntry{
		Seq:      len(sl.entries),
		Time:     sl.now,
		Level:    level,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Info implements Emitter.
func (sl *SimLog) Info(category, format string, args ...any) {
	sl.add("info", category, format, args...)
}

// Debug implements Emitter. Dropped unless verbose.
func (sl *SimLog) Debug(category, format string, args ...any) {
	if !sl.verbose {
		return
	}
	sl.add("debug", category, format, args...)
}

// Warn implements Emitter.
func (sl *SimLog) Warn(category, format string, args ...any) {
	sl.add("warn", category, format, args...)
}

// Error implements Emitter.
func (sl *SimLog) Error(category, format string, args ...any) {
	sl.add("error", category, format, args...)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given level and/or category. Pass empty
// string to match any value for that field.
func (sl *SimLog) Filter(level, category string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if level != "" && e.Level != level {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries carry the given category.
func (sl *SimLog) CountCategory(category string) int {
	return len(sl.Filter("", category))
}

// FirstOf returns the earliest entry matching category and message substring,
// or false if none. Pass empty strings to match anything.
func (sl *SimLog) FirstOf(category, substr string) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if substr != "" && !strings.Contains(e.Message, substr) {
			continue
		}
		return e, true
	}
	return SimLogEntry{}, false
}

// LastOf returns the most recent entry matching category and message
// substring, or false if none.
func (sl *SimLog) LastOf(category, substr string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		e := sl.entries[i]
		if category != "" && e.Category != category {
			continue
		}
		if substr != "" && !strings.Contains(e.Message, substr) {
			continue
		}
		return e, true
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether at least one entry matches category and message
// substring.
func (sl *SimLog) HasEntry(category, substr string) bool {
	_, ok := sl.FirstOf(category, substr)
	return ok
}

// Format returns the full log as one string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
