package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"catkit/internal/catio"
	"catkit/internal/config"
	"catkit/internal/driver"
	"catkit/internal/observ"
	"catkit/internal/version"
)

const programName = "cat"

const examples = `  cat f - g  Output f's contents, then standard input, then g's contents.
  cat        Copy standard input to standard output.`

// optionFlag binds one command-line switch to the options it turns on.
type optionFlag struct {
	name      string
	shorthand string
	opts      catio.Options
	usage     string
}

var optionFlags = []optionFlag{
	{"show-all", "A", catio.ShowAll, "equivalent to -vET"},
	{"number-nonblank", "b", catio.NumberAll | catio.NumberNonBlank, "number nonempty output lines, overrides -n"},
	{"show-nonprinting-ends", "e", catio.ShowNonPrinting | catio.ShowEnds, "equivalent to -vE"},
	{"show-ends", "E", catio.ShowEnds, "display $ at end of each line"},
	{"number", "n", catio.NumberAll, "number all output lines"},
	{"squeeze-blank", "s", catio.SqueezeBlank, "suppress repeated empty output lines"},
	{"show-nonprinting-tabs", "t", catio.ShowNonPrinting | catio.ShowTabs, "equivalent to -vT"},
	{"show-tabs", "T", catio.ShowTabs, "display TAB characters as ^I"},
	{"unbuffered", "u", 0, "(ignored)"},
	{"show-nonprinting", "v", catio.ShowNonPrinting, "use ^ and M- notation, except for LFD and TAB"},
}

// newRootCmd builds the cat command. Every invocation gets fresh flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " [OPTION]... [FILE]...",
		Short: "Concatenate FILE(s) to standard output",
		Long: `Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.`,
		Example:       examples,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCat,
	}
	cmd.SetVersionTemplate(versionTemplate)

	flags := cmd.Flags()
	for _, f := range optionFlags {
		flags.BoolP(f.name, f.shorthand, false, f.usage)
	}
	flags.String("config", "", "read default options from this TOML file")
	flags.String("color", "auto", "colorize diagnostics (auto|on|off)")
	flags.Bool("timings", false, "print per-file timing information to stderr")
	flags.String("trace", "", "write trace events to this file (- for stderr)")
	flags.String("trace-level", "off", "trace verbosity (off|run|source)")
	flags.String("trace-format", "auto", "trace output format (auto|text|ndjson)")

	// pflag needs a long name; GNU cat only has the short -e and -t.
	for _, name := range []string{"show-nonprinting-ends", "show-nonprinting-tabs"} {
		_ = flags.MarkHidden(name)
	}
	return cmd
}

// main runs the cat command and exits with status 1 if anything failed.
func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, driver.ErrPartialFailure) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		}
		os.Exit(1)
	}
}

func runCat(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}
	// Configured options are defaults; flags only ever add to them.
	opts |= cfg.Options

	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	runErr := driver.Run(cmd.Context(), driver.Config{
		Operands:   args,
		Options:    opts,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		BufferSize: cfg.BufferSize,
		Prefix:     diagnosticPrefix(mode, cmd.ErrOrStderr()),
		Timer:      timer,
	})

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return runErr
}

// readOptions folds every set option flag into one Options value.
func readOptions(cmd *cobra.Command) (catio.Options, error) {
	var opts catio.Options
	for _, f := range optionFlags {
		on, err := cmd.Flags().GetBool(f.name)
		if err != nil {
			return 0, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		if on {
			opts |= f.opts
		}
	}
	return opts, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
