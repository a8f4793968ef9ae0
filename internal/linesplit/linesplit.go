// Package linesplit cuts byte streams into newline-inclusive segments.
package linesplit

import (
	"bufio"
	"errors"
	"io"
)

// DefaultReadSize is the read buffer size used by Copy.
const DefaultReadSize = 64 * 1024

// Copy reads src and calls dst.Write once per segment, in order. Lines
// longer than the read buffer are accumulated and delivered whole.
//
// It returns the number of bytes read from src. The byte counts returned
// by dst are ignored: a transforming writer legitimately reports more or
// fewer bytes than it was given.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	return CopySize(dst, src, DefaultReadSize)
}

// CopySize is Copy with an explicit read buffer size.
func CopySize(dst io.Writer, src io.Reader, size int) (int64, error) {
	br := bufio.NewReaderSize(src, size)
	var (
		read int64
		long []byte
	)
	for {
		chunk, err := br.ReadSlice('\n')
		read += int64(len(chunk))
		if errors.Is(err, bufio.ErrBufferFull) {
			long = append(long, chunk...)
			continue
		}
		seg := chunk
		if len(long) > 0 {
			long = append(long, chunk...)
			seg = long
		}
		if len(seg) > 0 {
			if _, werr := dst.Write(seg); werr != nil {
				return read, werr
			}
		}
		long = long[:0]
		if err != nil {
			if err == io.EOF {
				return read, nil
			}
			return read, err
		}
	}
}
