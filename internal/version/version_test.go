package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	_ = GitCommit
	_ = BuildDate
}

func TestColored_PlainWhenDisabled(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	for _, v := range []string{"0.1.0", "1.2.3-rc.1", "1.2.3+build.7", "dev", "1.2"} {
		Version = v
		if got := Colored(false); got != v {
			t.Errorf("Colored(false) with %q = %q", v, got)
		}
	}
}

func TestColored_AddsEscapesWhenEnabled(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-dev"
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Fatalf("expected colorized output, got %q", got)
	}
	Version = "nightly"
	if got := Colored(true); got != "nightly" {
		t.Fatalf("non-semver version should be untouched, got %q", got)
	}
}
