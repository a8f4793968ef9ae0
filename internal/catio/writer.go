package catio

import (
	"bytes"
	"io"
	"strconv"
)

// NumberWidth is the field width line numbers are right-aligned in.
const NumberWidth = 6

var blankLine = []byte{'\n'}

// Writer applies Options to a stream of line segments and forwards the
// result to an underlying writer.
//
// Each call to Write must carry exactly one segment: one input line
// including its trailing newline, if the input had one. Unlike a plain
// io.Writer, Write reports the number of bytes it wrote to the underlying
// writer, which is 0 for a squeezed blank line and usually more than
// len(p) once numbering or escaping kicks in.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w         io.Writer
	opts      Options
	counter   Counter
	prevBlank bool
	buf       []byte
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Options returns the option set the writer was built with.
func (cw *Writer) Options() Options { return cw.opts }

// Lines returns the last line number emitted, 0 if numbering is off.
func (cw *Writer) Lines() uint64 { return cw.counter.Value() }

// Write transforms one segment. Errors from the underlying writer are
// returned unchanged.
func (cw *Writer) Write(segment []byte) (int, error) {
	blank := bytes.Equal(segment, blankLine)
	if !blank {
		cw.prevBlank = false
	}
	if cw.opts.Has(SqueezeBlank) && cw.prevBlank {
		return 0, nil
	}

	out := cw.buf[:0]
	if cw.opts.Counting() && !(blank && cw.opts.Has(NumberNonBlank)) {
		out = appendNumber(out, cw.counter.Next())
	}
	if blank {
		cw.prevBlank = true
	}
	for _, b := range segment {
		out = AppendEscaped(out, b, cw.opts)
	}
	cw.buf = out

	return cw.w.Write(out)
}

// Flush delivers anything buffered by the underlying writer. It is a no-op
// when the underlying writer does not buffer.
func (cw *Writer) Flush() error {
	if f, ok := cw.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// appendNumber appends n right-aligned to NumberWidth, then a TAB.
func appendNumber(dst []byte, n uint64) []byte {
	var digits [20]byte
	d := strconv.AppendUint(digits[:0], n, 10)
	for i := len(d); i < NumberWidth; i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, d...)
	return append(dst, '\t')
}
