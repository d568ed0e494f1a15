// Package mealytree is an in-memory toolkit for recording observed
// input/output behavior of a reactive system and testing hypothesis
// automata against it.
//
// What is in the box?
//
//	• alphabet/  — fixed, totally ordered input alphabets with dense indices
//	• ts/        — deterministic transducer and graph capability contracts
//	• traversal/ — iterative depth-first traversal over any ts.Graph
//	• mealy/     — dense, possibly partial deterministic Mealy machines
//	• tree/      — the incremental Mealy tree builder: Insert, Lookup,
//	               HasDefinitiveInformation, FindSeparatingWord, views
//	• cmd/mealytree — CLI checking YAML scenarios of traces and hypotheses
//
// Quick ASCII example, traces ("ab","xy") and ("b","z") recorded:
//
//	      root
//	  a/x /  \ b/z
//	     n1   n3
//	 b/y |
//	     n2
//
// A hypothesis that answers "x" on every a and b is separated by the word "ab".
//
//	go get github.com/katalvlaran/mealytree
package mealytree
