package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/parsekit/jsondiag"
	"github.com/parsekit/jsondiag/cli/internal/config"
	"github.com/parsekit/jsondiag/cli/internal/ui"
	"github.com/parsekit/jsondiag/cli/internal/watch"
	"github.com/parsekit/jsondiag/internal/debug"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> [file...]",
	Short: "Parse JSON files and report diagnostics",
	Long: `Parse one or more JSON files with the strict parser.

Valid files are reported as such; for malformed files the parse failure is
printed with its location and a code frame excerpt of the source.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var (
	checkWatch      bool
	checkLinesAbove int
	checkLinesBelow int
)

func init() {
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-check the file whenever it changes")
	checkCmd.Flags().IntVar(&checkLinesAbove, "lines-above", 0, "Context lines shown above the failure")
	checkCmd.Flags().IntVar(&checkLinesBelow, "lines-below", 0, "Context lines shown below the failure")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	above := checkLinesAbove
	if above <= 0 {
		above = cfg.LinesAbove
	}
	below := checkLinesBelow
	if below <= 0 {
		below = cfg.LinesBelow
	}

	if checkWatch {
		if len(args) != 1 {
			return errors.New("--watch takes exactly one file")
		}
		return watchFile(args[0], above, below, cfg)
	}

	failed := 0
	rows := make([][]string, 0, len(args))
	for _, path := range args {
		if err := checkFile(path, above, below); err != nil {
			failed++
			rows = append(rows, []string{path, "invalid"})
		} else {
			rows = append(rows, []string{path, "valid"})
		}
	}

	if len(args) > 1 {
		fmt.Println()
		ui.PrintTable([]string{"File", "Status"}, rows)
		fmt.Println()
		if failed == 0 {
			ui.PrintSuccess("%d files checked, all valid", len(args))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}

// checkFile parses a single file and prints the outcome. The returned
// error has already been reported; callers only use it to set the exit
// status.
func checkFile(path string, above, below int) error {
	data, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		ui.PrintError("cannot read %s: %v", path, err)
		return err
	}
	debug.Debug("checking file", "path", path, "bytes", len(data))

	_, err = jsondiag.ParseWithOptions(string(data), jsondiag.Options{
		FileName:   path,
		LinesAbove: above,
		LinesBelow: below,
	})
	if err == nil {
		ui.PrintSuccess("%s is valid JSON", path)
		return nil
	}

	var diag *jsondiag.Diagnostic
	if !errors.As(err, &diag) {
		ui.PrintError("%s: %v", path, err)
		return err
	}

	// Non-terminal consumers get the unstyled frame.
	if color.NoColor {
		diag.CodeFrame = diag.RawCodeFrame
	}
	ui.PrintError("%s failed to parse", path)
	fmt.Fprintf(os.Stderr, "\n%s\n", diag.Message())
	return err
}

func watchFile(path string, above, below int, cfg *config.Config) error {
	ui.PrintInfo("watching %s (interrupt to stop)", path)

	watcher, err := watch.NewWatcher(path, cfg.WatchDebounce, func() error {
		// A parse failure is a reported outcome, not a reason to stop
		// watching.
		if err := checkFile(path, above, below); err != nil {
			debug.Debug("watched file invalid", "path", path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh
	return watcher.Stop()
}
