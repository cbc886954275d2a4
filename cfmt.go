package cfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrOverflow        = errors.New("fixed buffer overflow")
	ErrUnknownCode     = errors.New("unknown format code")
	ErrBadTemplate     = errors.New("malformed template")
	ErrBadWidth        = errors.New("width or precision out of range")
	ErrMissingArgument = errors.New("missing argument")
	ErrBadArgument     = errors.New("bad argument")
)

// Fputf formats to a byte-at-a-time callback and returns the number of
// bytes the callback accepted.
func Fputf(put StreamSink, tmpl string, args ...any) (int, error) {
	cs := &countingSink{Sink: put}
	err := format(cs, tmpl, args)
	return cs.n, err
}

// Fprintf formats to w and returns the number of bytes written.
func Fprintf(w io.Writer, tmpl string, args ...any) (int, error) {
	bw := bufio.NewWriter(w)
	n, err := Fputf(bw.WriteByte, tmpl, args...)
	if ferr := bw.Flush(); ferr != nil {
		n -= bw.Buffered()
		if err == nil {
			err = ferr
		}
	}
	return n, err
}

// Printf formats to standard output.
func Printf(tmpl string, args ...any) (int, error) {
	return Fprintf(os.Stdout, tmpl, args...)
}

// Eprintf formats to standard error.
func Eprintf(tmpl string, args ...any) (int, error) {
	return Fprintf(os.Stderr, tmpl, args...)
}

// Bprintf formats into buf without ever writing past len(buf). It returns
// the number of bytes written. When the output does not fit it returns
// [ErrOverflow] and buf holds the bytes that did fit.
func Bprintf(buf []byte, tmpl string, args ...any) (int, error) {
	fs := NewFixedSink(buf)
	err := format(fs, tmpl, args)
	return fs.Len(), err
}

// Sprintf formats into a new string.
func Sprintf(tmpl string, args ...any) (string, error) {
	g := NewGrowableSink(defaultGrowableSize)
	if err := format(g, tmpl, args); err != nil {
		return "", err
	}
	return string(g.Bytes()), nil
}

// Strf formats into a new [Str].
func Strf(tmpl string, args ...any) (*Str, error) {
	s := &Str{}
	if _, err := s.Appendf(0, tmpl, args...); err != nil {
		return nil, err
	}
	return s, nil
}

// Sscanf matches input against tmpl and stores the converted values in
// slots, which must be pointers (or other slot types) matching the
// conversion codes in order. It returns how many values were stored.
//
// A count lower than the number of converting directives is a partial
// match, not an error: callers must check it. Errors are reserved for
// template problems and slots of the wrong type.
func Sscanf(input, tmpl string, slots ...any) (int, error) {
	return scan(input, tmpl, slots)
}

// Bscanf is [Sscanf] over a byte buffer that ends at its first NUL byte,
// or at its length if it has none.
func Bscanf(input []byte, tmpl string, slots ...any) (int, error) {
	if i := bytes.IndexByte(input, 0); i >= 0 {
		input = input[:i]
	}
	return scan(string(input), tmpl, slots)
}

// Fscanln reads one line from r and scans it with tmpl. The line ending is
// not part of the scanned input. At end of input it returns io.EOF.
func Fscanln(r *bufio.Reader, tmpl string, slots ...any) (int, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, err
	}
	line = strings.TrimRight(line, "\r\n")
	return scan(line, tmpl, slots)
}

// MustSprintf is like [Sprintf] but panics on error. It is meant for
// templates fixed at compile time.
func MustSprintf(tmpl string, args ...any) string {
	s, err := Sprintf(tmpl, args...)
	if err != nil {
		panic(fmt.Sprintf("cfmt: %v", err))
	}
	return s
}
