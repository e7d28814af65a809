package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/halfsum/partition"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run is main without process globals: it parses args, reads integers
// from args or stdin, solves and prints. It returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fs := flag.NewFlagSet("halfsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	mode := fs.String("mode", "", "memory mode: full or rolling")
	maxCells := fs.Int("max-cells", 0, "table budget in cells (0 = default)")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	table := fs.Bool("table", false, "render the filled DP table")
	split := fs.Bool("split", false, "print both groups")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(*configPath, defaultConfig())
	if err != nil {
		log.WithError(err).Error("config")

		return exitUsage
	}
	// explicitly set flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "max-cells":
			cfg.MaxCells = *maxCells
		case "log-level":
			cfg.LogLevel = *logLevel
		case "table":
			cfg.Table = *table
		case "split":
			cfg.Split = *split
		}
	})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Error("log level")

		return exitUsage
	}
	log.SetLevel(level)

	opts, err := cfg.options()
	if err != nil {
		log.WithError(err).Error("config")

		return exitUsage
	}

	elements, err := readElements(fs.Args(), stdin)
	if err != nil {
		log.WithError(err).Error("input")

		return exitError
	}
	log.WithFields(logrus.Fields{
		"n":    len(elements),
		"mode": cfg.Mode,
	}).Debug("solving")

	if err = solve(stdout, elements, cfg, opts); err != nil {
		entry := log.WithError(err)
		switch {
		case errors.Is(err, partition.ErrInvalidInput):
			entry.Error("invalid input")
		case errors.Is(err, partition.ErrOverflow):
			entry.Error("input too large")
		default:
			entry.Error("solve")
		}

		return exitError
	}

	return exitOK
}

// solve prints the answer and, if requested, the split and the table.
func solve(w io.Writer, elements []int, cfg Config, opts []partition.Option) error {
	if !cfg.Table && !cfg.Split {
		best, err := partition.MaxHalfSum(elements, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "max_half_sum=%d\n", best)

		return err
	}

	t, err := partition.BuildTable(elements, opts...)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "max_half_sum=%d\n", t.MaxSum()); err != nil {
		return err
	}
	if cfg.Split {
		p, err := t.Split()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "smaller=%v sum=%d\nlarger=%v sum=%d\ndiff=%d\n",
			pick(elements, p.Smaller), p.SmallerSum, pick(elements, p.Larger), p.LargerSum, p.Diff); err != nil {
			return err
		}
	}
	if cfg.Table {
		return partition.Render(w, t, "reachability table:")
	}

	return nil
}

// readElements parses positional args, or whitespace-separated integers
// from r when there are none.
func readElements(args []string, r io.Reader) ([]int, error) {
	if len(args) > 0 {
		return parseInts(args)
	}

	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return parseInts(words)
}

func parseInts(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// pick maps indices back to element values.
func pick(elements, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = elements[j]
	}

	return out
}
