package main

import (
	"strings"

	"github.com/spf13/cobra"

	"catkit/internal/version"
)

func init() {
	cobra.AddTemplateFunc("catVersion", versionText)
}

// versionTemplate defers to versionText so the output can honor --color,
// which is only known once flags are parsed.
const versionTemplate = "{{catVersion .}}"

// versionText renders the --version output: name and version, any build
// metadata recorded at link time, then the copyright line.
func versionText(cmd *cobra.Command) string {
	colorFlag, _ := cmd.Flags().GetString("color")
	mode, err := readColorMode(colorFlag)
	if err != nil {
		mode = colorModeAuto
	}

	var sb strings.Builder
	sb.WriteString(programName + " " + version.Colored(shouldColor(mode, cmd.OutOrStdout())) + "\n")
	if commit := strings.TrimSpace(version.GitCommit); commit != "" {
		sb.WriteString("commit: " + commit + "\n")
	}
	if date := strings.TrimSpace(version.BuildDate); date != "" {
		sb.WriteString("built:  " + date + "\n")
	}
	sb.WriteString(version.Copyright + "\n")
	return sb.String()
}
