// Command branchlab runs the branch/root-solver exercise suite and solves
// individual a·x⁴ + b·x² + c = 0 equations from the command line.
//
//	branchlab run [--strict]
//	branchlab solve A B C
//
// Configuration comes from BRANCHLAB_* environment variables; flags win.
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/branchlab/internal/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	cmd := newRootCmd(cfg)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
