package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zeusync/coulomb/internal/core/observability/log"
	"github.com/zeusync/coulomb/internal/scenario"
)

func main() {
	logger := log.New(log.LevelInfo)
	defer func() { _ = logger.Sync() }()

	if err := run(os.Stdout, logger); err != nil {
		logger.Error("failed to solve scenario", log.Error(err))
		os.Exit(1)
	}
}

// run solves the built-in scenario and prints the net force on the target,
// then its direction in degrees.
func run(w io.Writer, logger log.Log) error {
	res, err := scenario.NewSolver(logger).Solve(scenario.Default())
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "%#v\n", res.Net); err != nil {
		return fmt.Errorf("write net force: %w", err)
	}
	if _, err = fmt.Fprintln(w, res.Degrees()); err != nil {
		return fmt.Errorf("write degrees: %w", err)
	}
	return nil
}
