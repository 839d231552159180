package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/tables"
)

var tablesMaxDepth int

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the 3x3x3 pattern tables",
	Long: `Commands for generating and checking the pattern distance tables the
3x3x3 solver uses as its heuristic.

Tables:
  corners      8 corners, 88,179,840 entries (42 MB)
  first-edges  edges 1-6, 42,577,920 entries (21 MB)
  last-edges   edges 7-12, 42,577,920 entries (21 MB)`,
}

var tablesGenerateCmd = &cobra.Command{
	Use:   "generate [table...]",
	Short: "Generate pattern tables",
	Long: `Generate pattern tables by breadth-first search from the solved cube and
write them to --tables. With no arguments all three tables are generated.`,
	RunE: runTablesGenerate,
}

var tablesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the pattern tables",
	Long:  `Load every pattern table from --tables, check it and print its distance histogram.`,
	RunE:  runTablesVerify,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.AddCommand(tablesGenerateCmd)
	tablesGenerateCmd.Flags().IntVar(&tablesMaxDepth, "max-depth", -1, "Stop after this many layers (-1 = complete)")

	tablesCmd.AddCommand(tablesVerifyCmd)
}

func selectPatterns(names []string) ([]tables.Pattern, error) {
	if len(names) == 0 {
		return tables.Patterns, nil
	}
	var out []tables.Pattern
	for _, name := range names {
		p, ok := tables.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func runTablesGenerate(cmd *cobra.Command, args []string) error {
	patterns, err := selectPatterns(args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(tableDir, 0o755); err != nil {
		return errors.Wrap(err, "create table directory")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	for _, p := range patterns {
		start := time.Now()
		fmt.Printf("Generating %s (%d entries)...\n", p.Name, p.Size)
		t, err := tables.Generate(ctx, p,
			tables.WithGenerateWorkers(workers),
			tables.WithGenerateMaxDepth(tablesMaxDepth),
			tables.WithGenerateProgress(func(depth, count int) {
				fmt.Printf("  depth %2d: %d\n", depth, count)
			}),
		)
		if err != nil {
			return errors.Wrapf(err, "generate %s", p.Name)
		}
		path := filepath.Join(tableDir, p.File)
		if err := t.Save(path); err != nil {
			return err
		}
		klog.Infof("wrote %s in %v", path, time.Since(start))
		fmt.Printf("Wrote %s (%v)\n", path, time.Since(start).Round(time.Second))
	}
	return nil
}

func runTablesVerify(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, p := range tables.Patterns {
		path := filepath.Join(tableDir, p.File)
		t, err := tables.Load(path, p)
		if err == nil {
			err = t.Verify()
		}
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("%-12s %v", p.Name, err)))
			failed++
			continue
		}

		fmt.Printf("%-12s ok\n", p.Name)
		for d, n := range t.Histogram() {
			if n == 0 {
				continue
			}
			label := fmt.Sprintf("%d", d)
			if d == tables.Unvisited {
				label = "unvisited"
			}
			fmt.Printf("  %9s: %d\n", label, n)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tables failed", failed, len(tables.Patterns))
	}
	return nil
}
