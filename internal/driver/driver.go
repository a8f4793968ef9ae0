// Package driver concatenates cat operands through a catio.Writer.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"catkit/internal/catio"
	"catkit/internal/config"
	"catkit/internal/linesplit"
	"catkit/internal/observ"
	"catkit/internal/source"
	"catkit/internal/trace"
)

// ErrPartialFailure is returned when at least one operand could not be
// copied. Every other operand has still been processed.
var ErrPartialFailure = errors.New("some operands failed")

// Config describes one run.
type Config struct {
	Operands   []string // empty means standard input
	Options    catio.Options
	Fs         afero.Fs // nil means the OS filesystem
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	BufferSize int           // <= 0 means config.DefaultBufferSize
	Prefix     string        // diagnostic prefix, "cat" when empty
	Timer      *observ.Timer // optional
}

// Run copies every operand to cfg.Stdout in order. A failing operand is
// reported on cfg.Stderr and skipped; numbering and squeeze state carry
// over to the next one.
func Run(ctx context.Context, cfg Config) error {
	tr := trace.FromContext(ctx)

	size := cfg.BufferSize
	if size <= 0 {
		size = config.DefaultBufferSize
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "cat"
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	w := catio.NewWriter(bufio.NewWriterSize(cfg.Stdout, size), cfg.Options)
	opener := source.NewOpener(cfg.Fs, cfg.Stdin)
	operands := source.Operands(cfg.Operands)

	run := trace.Begin(tr, trace.ScopeRun, "run", 0)
	run.WithExtra("options", cfg.Options.String())

	failed := 0
	for _, name := range operands {
		if err := ctx.Err(); err != nil {
			run.End("canceled")
			return err
		}
		if err := copyOperand(tr, run.ID(), cfg.Timer, opener, w, name); err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %s: %v\n", prefix, name, err)
			trace.Point(tr, trace.ScopeSource, name, err.Error(), run.ID())
		}
	}

	run.WithExtra("lines", strconv.FormatUint(w.Lines(), 10)).
		End(fmt.Sprintf("%d operands, %d failed", len(operands), failed))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPartialFailure, failed, len(operands))
	}
	return nil
}

func copyOperand(tr trace.Tracer, parent uint64, timer *observ.Timer, opener *source.Opener, w *catio.Writer, name string) (err error) {
	span := trace.Begin(tr, trace.ScopeSource, name, parent)
	idx := -1
	if timer != nil {
		idx = timer.Begin(name)
	}
	var n int64
	defer func() {
		note := ""
		if err != nil {
			note = err.Error()
		}
		if timer != nil {
			timer.End(idx, n, note)
		}
		span.WithExtra("bytes", strconv.FormatInt(n, 10)).End(note)
	}()

	src, err := opener.Open(name)
	if err != nil {
		return err
	}
	var dst io.Writer = w
	if src.IsStdin() {
		// Interactive input (a pipe from tail -f, a terminal) must show up
		// line by line, not when stdin hits EOF.
		dst = lineFlusher{w}
	}
	n, err = linesplit.Copy(dst, src)
	if cerr := src.Close(); err == nil {
		err = cerr
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

// lineFlusher flushes the writer after every segment.
type lineFlusher struct{ w *catio.Writer }

func (f lineFlusher) Write(segment []byte) (int, error) {
	n, err := f.w.Write(segment)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}
