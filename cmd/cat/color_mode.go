package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on", "always":
		return colorModeOn, nil
	case "off", "never":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// shouldColor resolves mode for output written to w. In auto mode only a
// terminal gets colors.
func shouldColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}

// diagnosticPrefix returns the program name used in front of error
// messages, in bold red when colors are enabled.
func diagnosticPrefix(mode colorMode, stderr io.Writer) string {
	if !shouldColor(mode, stderr) {
		return programName
	}
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c.Sprint(programName)
}
