// Command occuprob computes isomer occupation probabilities and the heat
// capacity of a cluster in the superposition approximation.
//
// Usage:
//
//	occuprob -s -q -r --max_temp 1000 --plot pt5.xyz
//
// writes pt5_p.dat (temperature, then one probability column per isomer) and
// pt5_c.dat (temperature, Cv/k), plus pt5_p.pdf and pt5_c.pdf.
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/occuprob/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelError).Error("occuprob failed", "error", err)
		os.Exit(1)
	}
}
