// Package halfsum is a small toolkit for the two-way partition problem:
// split a multiset of non-negative integers into two groups whose sums
// are as close as possible.
//
// 🚀 What is inside?
//
//	• partition/   — the solver: reachability-table DP, rolling-row mode,
//	                 subset recovery, two-way split, diagnostic renderer
//	• cmd/halfsum/ — command-line host with YAML config and structured logs
//	• examples/    — a runnable scheduling scenario
//
// ✨ Why?
//
//   - Exact answers in O(total·n) time, no heuristics
//   - Explicit errors: negative input and oversized tables never produce
//     a silently wrong number
//   - Pure functions, no shared state, safe to call from many goroutines
//
// Quick example:
//
//	elements = [1, 2, 5]   total = 8, half = 4
//	best smaller half = 3  ({1,2} vs {5}, difference 2)
//
//	go get github.com/katalvlaran/halfsum/partition
package halfsum
