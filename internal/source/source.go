// Package source resolves cat operands into readable byte streams.
package source

import (
	"errors"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// StdinName is the operand that selects standard input.
const StdinName = "-"

// ErrIsDirectory is returned when an operand names a directory.
var ErrIsDirectory = errors.New("is a directory")

// Source is an opened operand.
type Source struct {
	Name string
	io.Reader
	closer io.Closer
}

// IsStdin reports whether the source reads standard input.
func (s *Source) IsStdin() bool { return s.closer == nil }

// Close releases the underlying file. Standard input is never closed.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Opener opens operands against a filesystem.
type Opener struct {
	Fs    afero.Fs
	Stdin io.Reader
}

// NewOpener returns an Opener backed by fs. A nil fs means the OS filesystem.
func NewOpener(fs afero.Fs, stdin io.Reader) *Opener {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Opener{Fs: fs, Stdin: stdin}
}

// Operands returns args, or a lone "-" when args is empty.
func Operands(args []string) []string {
	if len(args) == 0 {
		return []string{StdinName}
	}
	return args
}

// Open opens a single operand.
func (o *Opener) Open(name string) (*Source, error) {
	if name == StdinName {
		return &Source{Name: name, Reader: o.Stdin}, nil
	}
	f, err := o.Fs.Open(name)
	if err != nil {
		return nil, unwrapPathError(err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, unwrapPathError(err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrIsDirectory
	}
	return &Source{Name: name, Reader: f, closer: f}, nil
}

// unwrapPathError drops the op/path decoration of *fs.PathError so the
// caller can print "cat: name: reason" without repeating the name.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
