package cfmt

import (
	"sync"
)

// outputConv is one entry of the output conversion table.
type outputConv struct {
	arg string // what the directive consumes, for Describe
	fn  func(sp *layout, args *argCursor, s Sink) error
}

// outputTable is built on first use and read-only afterwards.
var outputTable = sync.OnceValue(func() *[256]*outputConv {
	var t [256]*outputConv
	set := func(codes string, c *outputConv) {
		for i := 0; i < len(codes); i++ {
			t[codes[i]] = c
		}
	}
	set("s", &outputConv{"text or nil", cvtText})
	set("S", &outputConv{"managed string or nil", cvtManaged})
	set("di", &outputConv{"signed integer", cvtSigned})
	set("u", &outputConv{"unsigned integer", cvtUnsigned})
	set("o", &outputConv{"unsigned integer", cvtOctal})
	set("xX", &outputConv{"unsigned integer", cvtHex})
	set("p", &outputConv{"pointer", cvtPointer})
	set("c", &outputConv{"character", cvtChar})
	set("feEgG", &outputConv{"floating point", cvtFloat})
	set("bB", &outputConv{"boolean", cvtBool})
	set("D", &outputConv{"date or nil", cvtDate})
	set("F", &outputConv{"named file or nil", cvtFile})
	return &t
})

// format walks tmpl, copying text through and dispatching each directive.
// It stops at the first error; bytes already accepted by s stay there.
func format(s Sink, tmpl string, args []any) error {
	cur := &argCursor{args: args}
	table := outputTable()
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '%' {
			if err := s.PutByte(c); err != nil {
				return err
			}
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			if err := s.PutByte('%'); err != nil {
				return err
			}
			i += 2
			continue
		}

		d, next, err := parseDirective(tmpl, i)
		if err != nil {
			return err
		}
		conv := table[d.Code]
		if conv == nil {
			return unknownCode(d)
		}
		sp, err := resolve(d, cur)
		if err != nil {
			return err
		}
		if err := conv.fn(sp, cur, s); err != nil {
			return err
		}
		i = next
	}
	return nil
}

// resolve turns a parsed directive into a layout, consuming '*' arguments
// for the width and then the precision.
func resolve(d Directive, cur *argCursor) (*layout, error) {
	sp := &layout{code: d.Code, flags: d.Flags, prec: -1, length: d.Length}
	switch d.Width.Kind {
	case BoundLiteral:
		sp.width = d.Width.Value
	case BoundFromArgument:
		w, err := cur.bound(d.Code)
		if err != nil {
			return nil, err
		}
		if w < 0 {
			sp.flags |= FlagMinus
			w = -w
		}
		sp.width = w
	}
	switch d.Precision.Kind {
	case BoundLiteral:
		sp.prec = d.Precision.Value
	case BoundFromArgument:
		p, err := cur.bound(d.Code)
		if err != nil {
			return nil, err
		}
		if p >= 0 {
			sp.prec = p
		}
	}
	return sp, nil
}
