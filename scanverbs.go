package cfmt

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/willf/bitset"
)

// Assigner is the capability a %S scan slot needs. *Str and *bytes.Buffer
// both satisfy it.
type Assigner interface {
	Reset()
	Write(p []byte) (int, error)
}

func badSlot(sp *scanTarget) error {
	return fmt.Errorf("%w: %%%c cannot store into %T", ErrBadArgument, sp.code, sp.slot)
}

// limit cuts in to the directive width.
func limit(in string, width int) string {
	if width > 0 && width < len(in) {
		return in[:width]
	}
	return in
}

func word(in string, width int) string {
	return in[:run(in, classes().word, width)]
}

// number returns the longest prefix of in that is an optionally signed run
// of class digits, with an optional 0x prefix when hexPrefix is set.
func number(in string, class *bitset.BitSet, width int, hexPrefix bool) string {
	s := limit(in, width)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if hexPrefix && len(s)-i > 2 && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && class.Test(uint(s[i+2])) {
		i += 2
	}
	d := run(s[i:], class, 0)
	if d == 0 {
		return ""
	}
	return s[:i+d]
}

// float returns the longest prefix of in shaped like a decimal float.
func float(in string, width int) string {
	s := limit(in, width)
	dec := classes().dec
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	whole := run(s[i:], dec, 0)
	i += whole
	frac := 0
	if i < len(s) && s[i] == '.' {
		frac = run(s[i+1:], dec, 0)
		if whole+frac > 0 {
			i += 1 + frac
		}
	}
	if whole+frac == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if e := run(s[j:], dec, 0); e > 0 {
			i = j + e
		}
	}
	return s[:i]
}

func scanText(sp *scanTarget, in string) (int, bool, error) {
	tok := word(in, sp.width)
	if tok == "" {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case nil:
	case *string:
		*p = tok
	case *[]byte:
		*p = []byte(tok)
	case []byte:
		// Caller-owned buffer: the token must fit. A trailing NUL is added
		// when there is room for it.
		if len(p) < len(tok) {
			return 0, false, nil
		}
		copy(p, tok)
		if len(p) > len(tok) {
			p[len(tok)] = 0
		}
	default:
		return 0, false, badSlot(sp)
	}
	return len(tok), true, nil
}

func scanManaged(sp *scanTarget, in string) (int, bool, error) {
	tok := word(in, sp.width)
	if tok == "" {
		return 0, false, nil
	}
	if sp.converting() {
		a, ok := sp.slot.(Assigner)
		if !ok || isNil(a) {
			return 0, false, badSlot(sp)
		}
		a.Reset()
		if _, err := a.Write([]byte(tok)); err != nil {
			return 0, false, err
		}
	}
	return len(tok), true, nil
}

// scanAlloc stores into a slot that is allocated when empty and reused
// otherwise.
func scanAlloc(sp *scanTarget, in string) (int, bool, error) {
	tok := word(in, sp.width)
	if tok == "" {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case nil:
	case *[]byte:
		if *p == nil {
			*p = make([]byte, len(tok))
			copy(*p, tok)
		} else {
			*p = append((*p)[:0], tok...)
		}
	case **Str:
		if *p == nil {
			*p = NewStr(tok)
		} else {
			(*p).Reset()
			_, _ = (*p).Write([]byte(tok))
		}
	default:
		return 0, false, badSlot(sp)
	}
	return len(tok), true, nil
}

func scanSigned(sp *scanTarget, in string) (int, bool, error) {
	bits := 64
	switch sp.slot.(type) {
	case nil, *int64:
	case *int:
		bits = strconv.IntSize
	case *int8:
		bits = 8
	case *int16:
		bits = 16
	case *int32:
		bits = 32
	default:
		return 0, false, badSlot(sp)
	}
	if sp.length == LengthShort {
		bits = min(bits, 16)
	}
	tok := number(in, classes().dec, sp.width, false)
	if tok == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case *int:
		*p = int(v)
	case *int8:
		*p = int8(v)
	case *int16:
		*p = int16(v)
	case *int32:
		*p = int32(v)
	case *int64:
		*p = v
	}
	return len(tok), true, nil
}

func scanUnsigned(sp *scanTarget, in string) (int, bool, error) {
	bits := 64
	switch sp.slot.(type) {
	case nil, *uint64:
	case *uint, *uintptr:
		bits = strconv.IntSize
	case *uint8:
		bits = 8
	case *uint16:
		bits = 16
	case *uint32:
		bits = 32
	default:
		return 0, false, badSlot(sp)
	}
	if sp.length == LengthShort {
		bits = min(bits, 16)
	}

	base, class := 10, classes().dec
	switch sp.code {
	case 'o':
		base, class = 8, classes().oct
	case 'x', 'p':
		base, class = 16, classes().hex
	}
	tok := number(in, class, sp.width, base == 16)
	if tok == "" {
		return 0, false, nil
	}
	digits := tok
	switch digits[0] {
	case '-':
		return 0, false, nil
	case '+':
		digits = digits[1:]
	}
	if base == 16 && len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case *uint:
		*p = uint(v)
	case *uintptr:
		*p = uintptr(v)
	case *uint8:
		*p = uint8(v)
	case *uint16:
		*p = uint16(v)
	case *uint32:
		*p = uint32(v)
	case *uint64:
		*p = v
	}
	return len(tok), true, nil
}

func scanFloat(sp *scanTarget, in string) (int, bool, error) {
	bits := 64
	switch sp.slot.(type) {
	case nil, *float64:
	case *float32:
		bits = 32
	default:
		return 0, false, badSlot(sp)
	}
	tok := float(in, sp.width)
	if tok == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(tok, bits)
	if err != nil {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return len(tok), true, nil
}

// scanChar reads exactly one character; a width other than 1 fails.
func scanChar(sp *scanTarget, in string) (int, bool, error) {
	if sp.width > 1 || in == "" {
		return 0, false, nil
	}
	switch p := sp.slot.(type) {
	case nil:
	case *byte:
		*p = in[0]
	case *rune:
		r, n := utf8.DecodeRuneInString(in)
		*p = r
		return n, true, nil
	default:
		return 0, false, badSlot(sp)
	}
	return 1, true, nil
}

func scanBool(sp *scanTarget, in string) (int, bool, error) {
	p, ok := sp.slot.(*bool)
	if sp.converting() && !ok {
		return 0, false, badSlot(sp)
	}
	tok := word(in, sp.width)
	v, ok := parseBool(tok, sp.code == 'B')
	if !ok {
		return 0, false, nil
	}
	if p != nil {
		*p = v
	}
	return len(tok), true, nil
}

// parseBool accepts a single Y/y/T/t or N/n/F/f, a number (non-zero is
// true), and with words set the spellings Yes and No.
func parseBool(tok string, words bool) (bool, bool) {
	if words {
		switch tok {
		case "Yes":
			return true, true
		case "No":
			return false, true
		}
	}
	if len(tok) == 1 {
		switch tok[0] {
		case 'Y', 'y', 'T', 't':
			return true, true
		case 'N', 'n', 'F', 'f':
			return false, true
		}
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return false, false
	}
	return n != 0, true
}
