package chip

import "github.com/rs/zerolog"

// logger traces structural transitions (focus, split, merge, rebuild).
// Disabled by default so the per-frame path stays silent in applications
// that don't care.
var logger = zerolog.Nop()

// SetLogger installs a logger for transition tracing. Pass zerolog.Nop()
// to silence it again.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "chip").Logger()
}
