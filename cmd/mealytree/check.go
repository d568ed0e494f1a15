package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mealytree/mealy"
	"github.com/katalvlaran/mealytree/tree"
	"github.com/katalvlaran/mealytree/ts"
)

// verdict is the outcome of checking one hypothesis.
type verdict struct {
	name       string
	word       []string // nil when consistent
	recorded   []string
	hypothesis []string
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Check every hypothesis against the recorded traces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := buildSession(opts, args[0])
			if err != nil {
				return err
			}
			omit := ss.scenario.OmitUndefined || opts.omitUndefined

			verdicts, err := checkAll(ss, omit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range verdicts {
				if v.word == nil {
					fmt.Fprintf(out, "%s: consistent\n", v.name)
					continue
				}
				fmt.Fprintf(out, "%s: separating word %s (recorded %s, hypothesis %s)\n",
					v.name, join(v.word), join(v.recorded), join(v.hypothesis))
			}

			if ss.conflicts > 0 {
				return fmt.Errorf("%d %w", ss.conflicts, errConflicts)
			}
			return nil
		},
	}
}

// checkAll searches for separating words of all hypotheses concurrently.
// Insertion is complete at this point, so every search is a reader.
func checkAll(ss *session, omitUndefined bool) ([]verdict, error) {
	hyps := ss.scenario.Hypotheses
	verdicts := make([]verdict, len(hyps))
	inputs := ss.alpha.Symbols()

	var g errgroup.Group
	for i, h := range hyps {
		i, h := i, h
		g.Go(func() error {
			m, err := h.machine(ss.alpha)
			if err != nil {
				return err
			}
			verdicts[i] = verdict{name: h.Name}

			return ss.tree.Read(func(b *tree.Builder[string, string]) error {
				word, found := tree.FindSeparatingWord[int, *mealy.Transition[string]](b, m, inputs, omitUndefined)
				if !found {
					return nil
				}
				_, recorded := b.Lookup(word)
				hyp, _ := ts.Run[int, string, *mealy.Transition[string], string](m, word)
				verdicts[i] = verdict{name: h.Name, word: word, recorded: recorded, hypothesis: hyp}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return verdicts, nil
}

// join renders a word as space-separated symbols; the empty word is ε.
func join(word []string) string {
	if len(word) == 0 {
		return "ε"
	}

	return strings.Join(word, " ")
}
