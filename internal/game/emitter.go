package game

// Emitter is the categorised diagnostic sink the engine writes to. The engine
// never reads anything back and no gameplay decision depends on delivery;
// a nil emitter is valid and silently drops everything.
//
// Categories in use: match, spawn, order, kill, tower, economy, clock.
type Emitter interface {
	Info(category, format string, args ...any)
	Debug(category, format string, args ...any)
	Warn(category, format string, args ...any)
	Error(category, format string, args ...any)
}
