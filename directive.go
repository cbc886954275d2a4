package cfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxBound caps literal and argument-supplied widths and precisions.
const maxBound = math.MaxInt32

// Flags is the set of flag characters given in a directive.
type Flags uint8

const (
	FlagMinus Flags = 1 << iota // '-' left-justify
	FlagPlus                    // '+' always print a sign
	FlagSpace                   // ' ' space in place of a plus sign
	FlagZero                    // '0' pad with zeros
	FlagSharp                   // '#' alternate form
)

var flagChars = [...]struct {
	c byte
	f Flags
}{
	{'-', FlagMinus},
	{'+', FlagPlus},
	{' ', FlagSpace},
	{'0', FlagZero},
	{'#', FlagSharp},
}

func flagOf(c byte) Flags {
	for _, fc := range flagChars {
		if fc.c == c {
			return fc.f
		}
	}
	return 0
}

// Has reports whether all of x are set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// String returns the flag characters in canonical order.
func (f Flags) String() string {
	var sb strings.Builder
	for _, fc := range flagChars {
		if f.Has(fc.f) {
			sb.WriteByte(fc.c)
		}
	}
	return sb.String()
}

// BoundKind tells where a width or precision comes from.
type BoundKind uint8

const (
	BoundNone BoundKind = iota
	BoundLiteral
	BoundFromArgument
)

// Bound is a width or precision as written in the template.
type Bound struct {
	Kind  BoundKind
	Value int // valid when Kind is BoundLiteral
}

// String returns the bound as it appears in a template.
func (b Bound) String() string {
	switch b.Kind {
	case BoundLiteral:
		return strconv.Itoa(b.Value)
	case BoundFromArgument:
		return "*"
	default:
		return ""
	}
}

// Length is a length modifier.
type Length uint8

const (
	LengthNone     Length = iota
	LengthShort           // h
	LengthLong            // l
	LengthLongLong        // L
)

// String returns the modifier letter, or "" for LengthNone.
func (l Length) String() string {
	switch l {
	case LengthShort:
		return "h"
	case LengthLong:
		return "l"
	case LengthLongLong:
		return "L"
	default:
		return ""
	}
}

func lengthOf(c byte) Length {
	switch c {
	case 'h':
		return LengthShort
	case 'l':
		return LengthLong
	case 'L':
		return LengthLongLong
	default:
		return LengthNone
	}
}

// Directive is one %-directive of a template.
//
// Output directives follow %[flags][width|*][.precision|.*][h|l|L]code.
// Scan directives follow %[*][width][h|l|L]code, with Suppress set for %*.
type Directive struct {
	Offset    int // byte offset of the '%'
	Flags     Flags
	Width     Bound
	Precision Bound
	Length    Length
	Code      byte
	Suppress  bool

	scan bool
}

// String rebuilds the directive text.
func (d Directive) String() string {
	var sb strings.Builder
	sb.WriteByte('%')
	if d.Suppress {
		sb.WriteByte('*')
	}
	sb.WriteString(d.Flags.String())
	sb.WriteString(d.Width.String())
	if d.Precision.Kind != BoundNone {
		sb.WriteByte('.')
		sb.WriteString(d.Precision.String())
	}
	sb.WriteString(d.Length.String())
	sb.WriteByte(d.Code)
	return sb.String()
}

// Argument describes what the directive consumes from the argument list,
// or "" when it consumes nothing.
func (d Directive) Argument() string {
	if d.scan {
		if d.Suppress {
			return ""
		}
		if c := scanTable()[d.Code]; c != nil {
			return c.slot
		}
		return ""
	}
	if c := outputTable()[d.Code]; c != nil {
		return c.arg
	}
	return ""
}

// IsScan reports whether d came from a scan template.
func (d Directive) IsScan() bool { return d.scan }

// parseDirective parses an output directive whose '%' is at tmpl[at].
// It returns the index just past the conversion code.
func parseDirective(tmpl string, at int) (Directive, int, error) {
	d := Directive{Offset: at}
	i := at + 1
	for i < len(tmpl) {
		f := flagOf(tmpl[i])
		if f == 0 {
			break
		}
		d.Flags |= f
		i++
	}

	var err error
	if d.Width, i, err = parseBound(tmpl, i); err != nil {
		return d, i, err
	}
	if i < len(tmpl) && tmpl[i] == '.' {
		i++
		if d.Precision, i, err = parseBound(tmpl, i); err != nil {
			return d, i, err
		}
		if d.Precision.Kind == BoundNone {
			d.Precision = Bound{Kind: BoundLiteral}
		}
	}
	if i < len(tmpl) {
		if d.Length = lengthOf(tmpl[i]); d.Length != LengthNone {
			i++
		}
	}
	if i >= len(tmpl) {
		return d, i, fmt.Errorf("%w: directive at offset %d has no conversion code", ErrBadTemplate, at)
	}
	d.Code = tmpl[i]
	return d, i + 1, nil
}

// parseScanDirective parses a scan directive whose '%' is at tmpl[at].
func parseScanDirective(tmpl string, at int) (Directive, int, error) {
	d := Directive{Offset: at, scan: true}
	i := at + 1
	if i < len(tmpl) && tmpl[i] == '*' {
		d.Suppress = true
		i++
	}
	var err error
	if i < len(tmpl) && isDigit(tmpl[i]) {
		if d.Width, i, err = parseBound(tmpl, i); err != nil {
			return d, i, err
		}
	}
	if i < len(tmpl) {
		if d.Length = lengthOf(tmpl[i]); d.Length != LengthNone {
			i++
		}
	}
	if i >= len(tmpl) {
		return d, i, fmt.Errorf("%w: directive at offset %d has no conversion code", ErrBadTemplate, at)
	}
	d.Code = tmpl[i]
	return d, i + 1, nil
}

// parseBound reads '*' or a decimal digit run starting at tmpl[i].
func parseBound(tmpl string, i int) (Bound, int, error) {
	if i < len(tmpl) && tmpl[i] == '*' {
		return Bound{Kind: BoundFromArgument}, i + 1, nil
	}
	start := i
	n := 0
	for i < len(tmpl) && isDigit(tmpl[i]) {
		d := int(tmpl[i] - '0')
		if n > (maxBound-d)/10 {
			return Bound{}, i, fmt.Errorf("%w: %q at offset %d", ErrBadWidth, tmpl[start:i+1], start)
		}
		n = n*10 + d
		i++
	}
	if i == start {
		return Bound{}, i, nil
	}
	return Bound{Kind: BoundLiteral, Value: n}, i, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Parse splits an output template into its directives without formatting
// anything. It fails on the same template errors as [Sprintf], including
// unknown conversion codes.
func Parse(tmpl string) ([]Directive, error) {
	var ds []Directive
	table := outputTable()
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '%' {
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			i += 2
			continue
		}
		d, next, err := parseDirective(tmpl, i)
		if err != nil {
			return nil, err
		}
		if table[d.Code] == nil {
			return nil, unknownCode(d)
		}
		ds = append(ds, d)
		i = next
	}
	return ds, nil
}

// ParseScan splits a scan template into its directives.
func ParseScan(tmpl string) ([]Directive, error) {
	var ds []Directive
	table := scanTable()
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '%' {
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			i += 2
			continue
		}
		d, next, err := parseScanDirective(tmpl, i)
		if err != nil {
			return nil, err
		}
		if table[d.Code] == nil {
			return nil, unknownCode(d)
		}
		ds = append(ds, d)
		i = next
	}
	return ds, nil
}

func unknownCode(d Directive) error {
	return fmt.Errorf("%w: %q at offset %d", ErrUnknownCode, d.Code, d.Offset)
}
