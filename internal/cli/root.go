// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	tableDir string
	workers  int
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Twisty cube solver",
	Long: `cubesolver - solves 2x2x2 and 3x3x3 Rubik's cubes.

The 2x2x2 is solved optimally by a bidirectional breadth-first search.
The 3x3x3 is solved by iterative-deepening A* guided by three pattern
distance tables, which "cubesolver tables generate" writes once.

Logging is controlled by the klog flags, for example -v=1 for search
progress.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	rootCmd.PersistentFlags().AddGoFlagSet(fset)

	rootCmd.PersistentFlags().StringVar(&tableDir, "tables", defaultTableDir(), "Pattern table directory (env CUBE_TABLES)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", runtime.NumCPU(), "Worker goroutines for searches and table generation")
}

// defaultTableDir returns $CUBE_TABLES, or ./tables when unset.
func defaultTableDir() string {
	if dir := os.Getenv("CUBE_TABLES"); dir != "" {
		return dir
	}
	return "tables"
}
