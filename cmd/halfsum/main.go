// Command halfsum prints the best achievable smaller half of a two-way
// partition of non-negative integers.
//
// Usage:
//
//	halfsum [flags] N1 N2 ...
//	echo "1 2 5" | halfsum -split -table
//
// Flags override values from the optional -config YAML file:
//
//	mode: full        # or rolling
//	maxCells: 1000000
//	logLevel: info
//	table: false
//	split: false
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
