package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mealytree/tree"
)

func newGraphCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <scenario.yaml>",
		Short: "List the nodes and edges of the recorded tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := buildSession(opts, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return ss.tree.Read(func(b *tree.Builder[string, string]) error {
				g := b.Graph()
				nodes := g.Nodes()
				fmt.Fprintf(out, "nodes: %d, depth: %d\n", len(nodes), b.Depth())
				for _, e := range g.Edges() {
					fmt.Fprintf(out, "n%d -%s/%s-> n%d\n", e.Source, e.Input, e.Output, e.Target)
				}
				return nil
			})
		},
	}
}
