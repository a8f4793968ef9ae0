package catio

import "strings"

// Options is the set of visibility transformations applied by a Writer.
// Flags are additive: setting one never clears another.
type Options uint8

const (
	// NumberAll numbers every output line.
	NumberAll Options = 1 << iota
	// NumberNonBlank turns counting on but skips blank lines.
	NumberNonBlank
	// ShowEnds prints '$' before every newline.
	ShowEnds
	// ShowTabs prints TAB as ^I.
	ShowTabs
	// ShowNonPrinting uses ^ and M- notation for control and high-bit bytes.
	ShowNonPrinting
	// SqueezeBlank collapses runs of blank lines to one.
	SqueezeBlank
)

// ShowAll is the -A combination.
const ShowAll = ShowNonPrinting | ShowEnds | ShowTabs

var optionNames = [...]struct {
	flag Options
	name string
}{
	{NumberAll, "number"},
	{NumberNonBlank, "number-nonblank"},
	{ShowEnds, "show-ends"},
	{ShowTabs, "show-tabs"},
	{ShowNonPrinting, "show-nonprinting"},
	{SqueezeBlank, "squeeze-blank"},
}

// Has reports whether every flag in f is set.
func (o Options) Has(f Options) bool { return o&f == f }

// Counting reports whether lines receive numbers at all.
func (o Options) Counting() bool { return o&(NumberAll|NumberNonBlank) != 0 }

// String returns the long flag names joined by '|', or "none".
func (o Options) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
