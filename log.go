package aoc

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the logger used by the runner and by solvers for diagnostics.
// Answers are printed to stdout; everything else goes through Log.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Log.SetLevel(logrus.InfoLevel)
}
