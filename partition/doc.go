// Package partition splits a multiset of non-negative integers into two
// groups whose sums are as close as possible, using bottom-up dynamic
// programming over a boolean reachability table.
//
// 🚀 What is the partition problem?
//
//	Given elements x1..xn, find the largest subset sum s with
//	s ≤ floor(total/2). The two groups then sum to s and total-s, and
//	their difference total-2s is the smallest achievable. Typical uses:
//	  • Balancing two workers, shards or queues by job weight
//	  • Splitting a bill or a playlist into two fair halves
//	  • Pre-checking whether an exact 50/50 split exists
//
// ✨ Key features:
//   - full-table mode: O(total·n) memory, supports subset recovery and
//     the diagnostic renderer
//   - rolling-row mode: O(total) memory, answer only
//   - explicit errors instead of silent wrong answers: negative elements
//     fail with ErrInvalidInput, oversized totals or tables with ErrOverflow
//   - Render prints the table for inspection without recomputing it
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/halfsum/partition"
//
//	best, err := partition.MaxHalfSum([]int{1, 2, 3, 4})
//	// best == 5
//
//	p, err := partition.Split([]int{1, 2, 5})
//	// p.SmallerSum == 3, p.LargerSum == 5, p.Diff == 2
//
//	t, err := partition.BuildTable([]int{1, 2, 5})
//	_ = partition.Render(os.Stdout, t, "filled table:")
//
// Table layout:
//
//	cell(s, j) is true iff some subset of the first j elements sums to s.
//	Rows s = 0..floor(total/2), columns j = 0..n.
//	Row 0 is all true (the empty subset); column 0 is true only at s = 0.
//
// Performance:
//
//   - Time:   O(total·n)
//   - Memory: O(total·n) (FullTable) or O(total) (RollingRow)
package partition
