// Command mealytree records observed input/output traces into an incremental
// Mealy tree and checks hypothesis machines against them.
//
// Usage:
//
//	mealytree check  scenario.yaml
//	mealytree lookup scenario.yaml a,b,a
//	mealytree graph  scenario.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
