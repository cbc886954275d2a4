package cfmt

import (
	"io"
)

// defaultGrowableSize is the starting capacity of the GrowableSink used by
// Sprintf and Str.
const defaultGrowableSize = 32

// Sink accepts formatted output one byte at a time.
type Sink interface {
	PutByte(c byte) error
}

// FixedSink writes into caller-owned memory and never reallocates. Once the
// buffer is full every further PutByte fails with [ErrOverflow]; the buffer
// is never written past its length.
type FixedSink struct {
	buf []byte
	n   int
}

// NewFixedSink returns a sink whose capacity is len(buf).
func NewFixedSink(buf []byte) *FixedSink {
	return &FixedSink{buf: buf}
}

// PutByte implements [Sink].
func (s *FixedSink) PutByte(c byte) error {
	if s.n >= len(s.buf) {
		return ErrOverflow
	}
	s.buf[s.n] = c
	s.n++
	return nil
}

// Len returns the number of bytes written so far.
func (s *FixedSink) Len() int { return s.n }

// Cap returns the declared capacity.
func (s *FixedSink) Cap() int { return len(s.buf) }

// Bytes returns the written prefix of the caller's buffer.
func (s *FixedSink) Bytes() []byte { return s.buf[:s.n] }

// GrowableSink owns its storage. When full, its capacity doubles and the
// written bytes are copied across, so capacity is always the initial size
// times a power of two.
type GrowableSink struct {
	buf []byte
}

// NewGrowableSink returns an empty sink with the given starting capacity.
// A non-positive size is replaced by 1.
func NewGrowableSink(initial int) *GrowableSink {
	if initial <= 0 {
		initial = 1
	}
	return &GrowableSink{buf: make([]byte, 0, initial)}
}

// PutByte implements [Sink]. It only fails if the runtime cannot allocate.
func (s *GrowableSink) PutByte(c byte) error {
	if len(s.buf) == cap(s.buf) {
		s.grow()
	}
	s.buf = append(s.buf, c)
	return nil
}

func (s *GrowableSink) grow() {
	nb := make([]byte, len(s.buf), max(2*cap(s.buf), 1))
	copy(nb, s.buf)
	s.buf = nb
}

// Len returns the number of bytes written.
func (s *GrowableSink) Len() int { return len(s.buf) }

// Cap returns the current capacity.
func (s *GrowableSink) Cap() int { return cap(s.buf) }

// Bytes hands the backing storage to the caller.
func (s *GrowableSink) Bytes() []byte { return s.buf }

// StreamSink forwards every byte to a caller-supplied function. Closures
// take the place of a callback plus opaque context.
type StreamSink func(c byte) error

// PutByte implements [Sink].
func (f StreamSink) PutByte(c byte) error { return f(c) }

// WriterSink adapts an [io.Writer]. Writers that also implement
// [io.ByteWriter] receive WriteByte calls; all others get one-byte writes.
func WriterSink(w io.Writer) Sink {
	if bw, ok := w.(io.ByteWriter); ok {
		return StreamSink(bw.WriteByte)
	}
	var one [1]byte
	return StreamSink(func(c byte) error {
		one[0] = c
		_, err := w.Write(one[:])
		return err
	})
}

// countingSink tracks how many bytes reached the underlying sink.
type countingSink struct {
	Sink
	n int
}

func (s *countingSink) PutByte(c byte) error {
	if err := s.Sink.PutByte(c); err != nil {
		return err
	}
	s.n++
	return nil
}

func putBytes(s Sink, p []byte) error {
	for _, c := range p {
		if err := s.PutByte(c); err != nil {
			return err
		}
	}
	return nil
}

func pad(s Sink, n int, c byte) error {
	for ; n > 0; n-- {
		if err := s.PutByte(c); err != nil {
			return err
		}
	}
	return nil
}
