package cfmt

// Str is a growable managed string. It is the destination of [Strf] and
// [Str.Appendf], a %S argument when printing, and a %S or %z slot when
// scanning.
//
// The zero value is an empty string ready to use.
type Str struct {
	b []byte
}

// NewStr returns a Str holding a copy of s.
func NewStr(s string) *Str {
	return &Str{b: []byte(s)}
}

// Len returns the length in bytes.
func (s *Str) Len() int { return len(s.b) }

// Cap returns the capacity of the backing storage.
func (s *Str) Cap() int { return cap(s.b) }

// Bytes returns the contents. The slice aliases the Str.
func (s *Str) Bytes() []byte { return s.b }

// String returns the contents as a string.
func (s *Str) String() string { return string(s.b) }

// Reset empties the string, keeping its storage.
func (s *Str) Reset() { s.b = s.b[:0] }

// Write appends p. It never fails.
func (s *Str) Write(p []byte) (int, error) {
	s.b = append(s.b, p...)
	return len(p), nil
}

// Appendf formats at position pos, replacing anything from pos on, and
// returns the new length. A pos outside [0, Len()] is clamped. On error the
// string is cut back to pos.
func (s *Str) Appendf(pos int, tmpl string, args ...any) (int, error) {
	pos = min(max(pos, 0), len(s.b))
	if cap(s.b) == 0 {
		s.b = make([]byte, 0, defaultGrowableSize)
	}
	g := &GrowableSink{buf: s.b[:pos]}
	err := format(g, tmpl, args)
	s.b = g.buf
	if err != nil {
		s.b = s.b[:pos]
		return pos, err
	}
	return len(s.b), nil
}
