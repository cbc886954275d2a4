package cfmt

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

const nullText = "<null>"

// Text is the capability the %S conversion needs: a length and the bytes
// behind it. *Str and *bytes.Buffer both satisfy it.
type Text interface {
	Len() int
	Bytes() []byte
}

// Named is the capability the %F conversion needs. *os.File satisfies it.
type Named interface {
	Name() string
}

func cvtText(sp *layout, args *argCursor, s Sink) error {
	v, err := args.next(sp.code)
	if err != nil {
		return err
	}
	var text []byte
	switch t := v.(type) {
	case nil:
		text = []byte(nullText)
	case string:
		text = []byte(t)
	case []byte:
		if t == nil {
			text = []byte(nullText)
		} else {
			text = t
		}
	case *string:
		if t == nil {
			text = []byte(nullText)
		} else {
			text = []byte(*t)
		}
	case error:
		if isNil(t) {
			text = []byte(nullText)
		} else {
			text = []byte(t.Error())
		}
	case fmt.Stringer:
		if isNil(t) {
			text = []byte(nullText)
		} else {
			text = []byte(t.String())
		}
	default:
		return args.bad(sp.code, v)
	}
	return puts(s, text, sp)
}

func cvtManaged(sp *layout, args *argCursor, s Sink) error {
	v, err := args.next(sp.code)
	if err != nil {
		return err
	}
	if isNil(v) {
		return puts(s, []byte(nullText), sp)
	}
	t, ok := v.(Text)
	if !ok {
		return args.bad(sp.code, v)
	}
	b := t.Bytes()
	if n := t.Len(); n >= 0 && n < len(b) {
		b = b[:n]
	}
	return puts(s, b, sp)
}

func cvtSigned(sp *layout, args *argCursor, s Sink) error {
	n, err := args.signed(sp.code)
	if err != nil {
		return err
	}
	if sp.length == LengthShort {
		n = int64(int16(n))
	}
	var buf [24]byte
	return putd(s, strconv.AppendInt(buf[:0], n, 10), sp)
}

func cvtUnsigned(sp *layout, args *argCursor, s Sink) error {
	u, err := args.unsigned(sp.code)
	if err != nil {
		return err
	}
	if sp.length == LengthShort {
		u = uint64(uint16(u))
	}
	var buf [24]byte
	return putd(s, strconv.AppendUint(buf[:0], u, 10), sp)
}

func cvtOctal(sp *layout, args *argCursor, s Sink) error {
	u, err := args.unsigned(sp.code)
	if err != nil {
		return err
	}
	if sp.length == LengthShort {
		u = uint64(uint16(u))
	}
	var buf [24]byte
	digits := strconv.AppendUint(buf[1:1], u, 8)
	if sp.flags.Has(FlagSharp) {
		switch {
		case u == 0 && sp.prec == 0:
			// %#.0o of zero still prints its single 0.
			sp.prec = -1
		case u != 0 && sp.prec <= len(digits):
			buf[0] = '0'
			digits = buf[:len(digits)+1]
		}
	}
	return putd(s, digits, sp)
}

func cvtHex(sp *layout, args *argCursor, s Sink) error {
	u, err := args.unsigned(sp.code)
	if err != nil {
		return err
	}
	if sp.length == LengthShort {
		u = uint64(uint16(u))
	}
	return putHex(s, u, sp, sp.code == 'X')
}

func putHex(s Sink, u uint64, sp *layout, upper bool) error {
	var buf [24]byte
	digits := buf[:0]
	if sp.flags.Has(FlagSharp) && u != 0 {
		digits = append(digits, '0', 'x')
	}
	digits = strconv.AppendUint(digits, u, 16)
	if upper {
		for i, c := range digits {
			if 'a' <= c && c <= 'z' {
				digits[i] = c - 'a' + 'A'
			}
		}
	}
	return putd(s, digits, sp)
}

func cvtPointer(sp *layout, args *argCursor, s Sink) error {
	p, err := args.pointer(sp.code)
	if err != nil {
		return err
	}
	sp.prec = -1
	return putHex(s, uint64(p), sp, false)
}

func cvtChar(sp *layout, args *argCursor, s Sink) error {
	r, raw, err := args.char(sp.code)
	if err != nil {
		return err
	}
	var buf [utf8.UTFMax]byte
	text := buf[:1]
	if raw {
		buf[0] = byte(r)
	} else {
		text = utf8.AppendRune(buf[:0], r)
	}
	// One character, so the field is padded with width-1 spaces.
	left := sp.flags.Has(FlagMinus)
	if !left {
		if err := pad(s, sp.width-1, ' '); err != nil {
			return err
		}
	}
	if err := putBytes(s, text); err != nil {
		return err
	}
	if left {
		return pad(s, sp.width-1, ' ')
	}
	return nil
}

// defaultFloatPrecision applies when a float directive has no precision.
const defaultFloatPrecision = 6

func cvtFloat(sp *layout, args *argCursor, s Sink) error {
	f, err := args.float(sp.code)
	if err != nil {
		return err
	}
	prec := sp.prec
	if prec < 0 {
		prec = defaultFloatPrecision
	}
	var digits []byte
	if math.IsInf(f, 0) || math.IsNaN(f) {
		digits = nonFinite(f, sp.code == 'E' || sp.code == 'G')
		sp.flags &^= FlagZero
	} else {
		var buf [64]byte
		digits = strconv.AppendFloat(buf[:0], f, sp.code, prec, 64)
		if sp.flags.Has(FlagSharp) && prec == 0 {
			digits = forcePoint(digits, sp.code)
		}
	}
	// The float renderer already applied the precision.
	sp.prec = -1
	return putd(s, digits, sp)
}

func nonFinite(f float64, upper bool) []byte {
	var text string
	switch {
	case math.IsNaN(f):
		text = "nan"
	case f > 0:
		text = "inf"
	default:
		text = "-inf"
	}
	b := []byte(text)
	if upper {
		for i, c := range b {
			if 'a' <= c && c <= 'z' {
				b[i] = c - 'a' + 'A'
			}
		}
	}
	return b
}

// forcePoint inserts the decimal point %#.0f and %#.0e keep.
func forcePoint(digits []byte, code byte) []byte {
	switch code {
	case 'f':
		return append(digits, '.')
	case 'e', 'E':
		for i, c := range digits {
			if c == 'e' || c == 'E' {
				out := make([]byte, 0, len(digits)+1)
				out = append(out, digits[:i]...)
				out = append(out, '.')
				return append(out, digits[i:]...)
			}
		}
	}
	return digits
}

func cvtBool(sp *layout, args *argCursor, s Sink) error {
	b, err := args.boolean(sp.code)
	if err != nil {
		return err
	}
	var text string
	switch {
	case sp.code == 'B' && b:
		text = "Yes"
	case sp.code == 'B':
		text = "No"
	case b:
		text = "Y"
	default:
		text = "N"
	}
	return puts(s, []byte(text), sp)
}

func cvtDate(sp *layout, args *argCursor, s Sink) error {
	v, err := args.next(sp.code)
	if err != nil {
		return err
	}
	var d *Date
	switch t := v.(type) {
	case nil:
	case *Date:
		d = t
	case Date:
		d = &t
	case time.Time:
		d = &Date{Time: t}
	case *time.Time:
		if t != nil {
			d = &Date{Time: *t}
		}
	default:
		return args.bad(sp.code, v)
	}
	if d == nil {
		return puts(s, []byte(nullText), sp)
	}
	text, err := d.Format()
	if err != nil {
		return err
	}
	return puts(s, []byte(text), sp)
}

func cvtFile(sp *layout, args *argCursor, s Sink) error {
	v, err := args.next(sp.code)
	if err != nil {
		return err
	}
	if isNil(v) {
		return puts(s, []byte(nullText), sp)
	}
	f, ok := v.(Named)
	if !ok {
		return args.bad(sp.code, v)
	}
	name := f.Name()
	if name == "" {
		name = nullText
	}
	return puts(s, []byte(name), sp)
}
