package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the catkit tools.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = []color.Attribute{color.FgYellow, color.Bold}
	versionMinorColor = []color.Attribute{color.FgGreen, color.Bold}
	versionPatchColor = []color.Attribute{color.FgBlue, color.Bold}

	// Version is the semantic version of the tools.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Copyright is printed under the version line.
const Copyright = "Copyright (C) 2024 the catkit authors"

// Colored returns Version with its major, minor and patch parts colorized
// when enabled is true. Anything that is not a plain MAJOR.MINOR.PATCH
// with an optional -suffix or +suffix is returned as is.
func Colored(enabled bool) string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.Split(core, ".")
	if !enabled || len(parts) != 3 {
		return Version
	}
	return paint(versionMajorColor, parts[0]) + "." +
		paint(versionMinorColor, parts[1]) + "." +
		paint(versionPatchColor, parts[2]) + suffix
}

func paint(attrs []color.Attribute, s string) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
