package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newRootCmd builds the echo command. Flag parsing is disabled so that
// arguments such as "-n" or "--help" are echoed like any other word.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "echo [STRING]...",
		Short:              "Display a line of text",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return echo(cmd.OutOrStdout(), args)
		},
	}
}

// echo writes args separated by single spaces, with no space before the
// newline. This is POSIX echo output, not a space after every word.
func echo(w io.Writer, args []string) error {
	_, err := io.WriteString(w, strings.Join(args, " ")+"\n")
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "echo: %v\n", err)
		os.Exit(1)
	}
}
