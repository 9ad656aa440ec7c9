// Shared helpers for opsdeck CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/metrics"
)

// attachStore resolves configuration, creates a store, and attaches it.
// The caller must defer st.Detach().
func attachStore() (*store.Store, error) {
	cfg, err := storeConfig()
	if err != nil {
		return nil, err
	}

	st := store.New(store.WithLogger(cliLogger()))
	if err := st.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return st, nil
}

// cliLogger returns the logger commands hand to the store. Persistence
// warnings surface on stderr; debug detail only with --verbose.
func cliLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// failUser prints the message to stderr and exits with the user-error code.
func failUser(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitUserError)
}

// failSys prints the message to stderr and exits with the system-error code.
func failSys(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitSysError)
}

// renderTrend formats a metric's change for terminal output: a colored
// arrow plus the percentage.
func renderTrend(m metrics.Metric) string {
	switch m.Trend {
	case metrics.TrendUp:
		return color.New(color.FgGreen).Sprintf("↑ %s", m.Change)
	case metrics.TrendDown:
		return color.New(color.FgRed).Sprintf("↓ %s", m.Change)
	default:
		return color.New(color.FgHiBlack).Sprintf("= %s", m.Change)
	}
}
