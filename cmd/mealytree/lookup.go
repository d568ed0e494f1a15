package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <scenario.yaml> <word>",
		Short: "Print what the recorded traces say about a comma-separated word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := buildSession(opts, args[0])
			if err != nil {
				return err
			}

			word := splitWord(args[1])
			if err := checkSymbols(ss.alpha, word); err != nil {
				return err
			}

			matched, outputs := ss.tree.Lookup(word)
			fmt.Fprintf(cmd.OutOrStdout(), "matched=%t outputs=%s\n", matched, join(outputs))
			return nil
		},
	}
}

// splitWord parses "a,b,a" into symbols; an empty string is the empty word.
func splitWord(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
