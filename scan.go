package cfmt

import (
	"sync"
)

// scanTarget is a scan directive paired with the slot it stores into.
type scanTarget struct {
	code   byte
	width  int // 0 when absent
	length Length
	slot   any // nil for %* directives
}

// converting reports whether the directive stores a value.
func (sp *scanTarget) converting() bool { return sp.slot != nil }

// scanConv is one entry of the scan conversion table. fn reads a token from
// the front of in and, for converting directives, stores it in sp.slot. It
// returns the bytes consumed and whether the token matched. A non-nil error
// means the slot has the wrong type and aborts the whole scan.
type scanConv struct {
	slot string // what the directive writes to, for Describe
	fn   func(sp *scanTarget, in string) (n int, ok bool, err error)
}

// scanTable is built on first use and read-only afterwards.
var scanTable = sync.OnceValue(func() *[256]*scanConv {
	var t [256]*scanConv
	t['s'] = &scanConv{"*string, *[]byte or []byte", scanText}
	t['S'] = &scanConv{"managed string", scanManaged}
	t['z'] = &scanConv{"*[]byte or **Str", scanAlloc}
	t['d'] = &scanConv{"*int, *int8, *int16, *int32 or *int64", scanSigned}
	t['u'] = &scanConv{"*uint, *uint8, *uint16, *uint32 or *uint64", scanUnsigned}
	t['o'] = &scanConv{"*uint, *uint8, *uint16, *uint32 or *uint64", scanUnsigned}
	t['x'] = &scanConv{"*uint, *uint8, *uint16, *uint32 or *uint64", scanUnsigned}
	t['p'] = &scanConv{"*uintptr", scanUnsigned}
	t['f'] = &scanConv{"*float32 or *float64", scanFloat}
	t['c'] = &scanConv{"*byte or *rune", scanChar}
	t['b'] = &scanConv{"*bool", scanBool}
	t['B'] = &scanConv{"*bool", scanBool}
	return &t
})

// scan matches input against tmpl and returns how many values were stored.
// Whitespace in either string is skipped independently; any other template
// byte must match the input exactly. Scanning stops at the first mismatch
// without consuming it.
func scan(input, tmpl string, slots []any) (int, error) {
	cur := &argCursor{args: slots}
	table := scanTable()
	count := 0
	ip, tp := 0, 0
	for ip < len(input) && tp < len(tmpl) {
		switch {
		case isSpace(input[ip]):
			ip++
			continue
		case isSpace(tmpl[tp]):
			tp++
			continue
		case tmpl[tp] != '%':
			if tmpl[tp] != input[ip] {
				return count, nil
			}
			ip++
			tp++
			continue
		case tp+1 < len(tmpl) && tmpl[tp+1] == '%':
			if input[ip] != '%' {
				return count, nil
			}
			ip++
			tp += 2
			continue
		}

		d, next, err := parseScanDirective(tmpl, tp)
		if err != nil {
			return count, err
		}
		conv := table[d.Code]
		if conv == nil {
			return count, unknownCode(d)
		}
		sp := &scanTarget{code: d.Code, width: d.Width.Value, length: d.Length}
		if !d.Suppress {
			if sp.slot, err = cur.next(d.Code); err != nil {
				return count, err
			}
			if isNil(sp.slot) {
				return count, cur.bad(d.Code, sp.slot)
			}
		}
		n, ok, err := conv.fn(sp, input[ip:])
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		ip += n
		if sp.converting() {
			count++
		}
		tp = next
	}
	return count, nil
}
