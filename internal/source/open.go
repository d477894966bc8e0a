// Package source opens allele tables from local files, standard input or
// S3-compatible object storage, transparently decompressing gzip, zstd and
// lz4 frames.
package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// OpenError reports an input that could not be opened.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("can not open file '%s': %v", e.Path, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }

// multiReadCloser closes every closer, innermost first.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Open returns a reader over the decompressed content of path.
// Failures are reported as *OpenError.
func Open(ctx context.Context, path string, s3cfg S3Config) (io.ReadCloser, error) {
	var (
		raw io.ReadCloser
		err error
	)
	switch {
	case path == Stdin:
		raw = io.NopCloser(os.Stdin)
	case strings.HasPrefix(path, s3Scheme):
		raw, err = openS3(ctx, path, s3cfg)
	default:
		raw, err = os.Open(path)
	}
	if err != nil {
		return nil, &OpenError{Path: path, Cause: err}
	}
	rc, err := Decompress(raw)
	if err != nil {
		_ = raw.Close()
		return nil, &OpenError{Path: path, Cause: err}
	}
	return rc, nil
}

// Decompress sniffs the leading bytes of raw and wraps it in the matching
// decoder. Uncompressed input is passed through buffered.
func Decompress(raw io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(raw, 64<<10)
	sig, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(sig, magicGzip):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, raw}}, nil
	case bytes.HasPrefix(sig, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), raw}}, nil
	case bytes.HasPrefix(sig, magicLZ4):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: []io.Closer{raw}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{raw}}, nil
}
