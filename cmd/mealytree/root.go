package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mealytree/alphabet"
	"github.com/katalvlaran/mealytree/tree"
)

// errConflicts is returned by commands when some traces contradicted earlier ones.
var errConflicts = errors.New("conflicting traces")

// options holds global flags shared by every subcommand.
type options struct {
	logLevel      string
	omitUndefined bool
	log           zerolog.Logger
}

// newRootCmd wires the command tree. A fresh tree per call keeps tests isolated.
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "mealytree",
		Short:         "Incremental Mealy tree builder and hypothesis checker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.omitUndefined, "omit-undefined", false,
		"treat undefined hypothesis transitions as inconclusive (overrides scenario)")

	root.AddCommand(newCheckCmd(opts), newLookupCmd(opts), newGraphCmd(opts))

	return root
}

// newLogger builds a console zerolog logger writing to w.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stderr
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

// session is a scenario whose traces were recorded into a tree.
type session struct {
	scenario  *Scenario
	alpha     *alphabet.Alphabet[string]
	tree      *tree.Synchronized[string, string]
	conflicts int
}

// buildSession loads the scenario at path and records all of its traces.
// Conflicting traces are logged and counted, not fatal.
func buildSession(opts *options, path string) (*session, error) {
	sc, alpha, err := loadScenario(path)
	if err != nil {
		return nil, err
	}

	ss := &session{scenario: sc, alpha: alpha, tree: tree.NewSynchronized[string, string](alpha)}
	for i, tr := range sc.Traces {
		err := ss.tree.Insert(tr.Input, tr.Output)
		var ce *tree.ConflictError[string]
		switch {
		case errors.As(err, &ce):
			ss.conflicts++
			opts.log.Warn().
				Int("trace", i).
				Int("position", ce.Position).
				Str("recorded", ce.Recorded).
				Str("observed", ce.Observed).
				Msg("trace contradicts earlier observation")
		case err != nil:
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
	}
	opts.log.Debug().
		Int("traces", len(sc.Traces)).
		Int("nodes", ss.tree.Size()).
		Int("conflicts", ss.conflicts).
		Msg("tree built")

	return ss, nil
}
