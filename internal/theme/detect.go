package theme

import "github.com/muesli/termenv"

// Preference values accepted from config and the -theme flag
const (
	PrefAuto  = "auto"
	PrefLight = "light"
	PrefDark  = "dark"
)

// ModeFromPreference maps a configured preference onto a Mode. "auto"
// (and anything unrecognized) probes the terminal background, so a
// stale or hand-edited config value degrades to detection rather than
// an error.
func ModeFromPreference(pref string) Mode {
	switch pref {
	case PrefLight:
		return Light
	case PrefDark:
		return Dark
	default:
		return Detect()
	}
}

// Detect probes the ambient terminal background. Terminals that do
// not answer the query are treated as dark.
func Detect() Mode {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}
