// Package logging derives the component loggers used across chipselect from
// the global zerolog logger configured in main.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns a logger tagged with name under the "cmp" key.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ForControl returns a component logger that also names the control it
// serves, so events from several dropdowns on one page stay apart.
func ForControl(component, controlID string) zerolog.Logger {
	return log.With().Str("cmp", component).Str("control", controlID).Logger()
}

// ForDocument returns a component logger bound to the page file at path.
func ForDocument(component, path string) zerolog.Logger {
	return log.With().Str("cmp", component).Str("document", path).Logger()
}
