package cfmt

// layout is a directive with its width and precision resolved.
type layout struct {
	code   byte
	flags  Flags
	width  int // 0 when absent
	prec   int // -1 when absent
	length Length
}

// putd lays out a number that has already been converted to digits in the
// right base. The digits may carry a leading sign and, with FlagSharp, a
// 0x or 0X prefix. Sign, prefix, precision zeros and field padding are
// applied here.
func putd(s Sink, digits []byte, sp *layout) error {
	var sign byte
	switch {
	case len(digits) > 0 && (digits[0] == '-' || digits[0] == '+'):
		sign = digits[0]
		digits = digits[1:]
	case sp.flags.Has(FlagPlus):
		sign = '+'
	case sp.flags.Has(FlagSpace):
		sign = ' '
	}

	var prefix []byte
	if sp.flags.Has(FlagSharp) && len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		prefix = digits[:2]
		digits = digits[2:]
	}

	prec := sp.prec
	if prec == 0 && len(digits) == 1 && digits[0] == '0' {
		digits = digits[:0]
	}
	zeros := 0
	if prec > len(digits) {
		zeros = prec - len(digits)
	}
	n := len(digits) + zeros + len(prefix)
	if sign != 0 {
		n++
	}

	head := func() error {
		if sign != 0 {
			if err := s.PutByte(sign); err != nil {
				return err
			}
		}
		return putBytes(s, prefix)
	}

	switch {
	case sp.flags.Has(FlagMinus):
		if err := head(); err != nil {
			return err
		}
	case sp.flags.Has(FlagZero):
		if err := head(); err != nil {
			return err
		}
		if err := pad(s, sp.width-n, '0'); err != nil {
			return err
		}
	default:
		if err := pad(s, sp.width-n, ' '); err != nil {
			return err
		}
		if err := head(); err != nil {
			return err
		}
	}
	if err := pad(s, zeros, '0'); err != nil {
		return err
	}
	if err := putBytes(s, digits); err != nil {
		return err
	}
	if sp.flags.Has(FlagMinus) {
		return pad(s, sp.width-n, ' ')
	}
	return nil
}

// puts lays out text: truncated to the precision, padded to the width.
func puts(s Sink, text []byte, sp *layout) error {
	if sp.prec >= 0 && sp.prec < len(text) {
		text = text[:sp.prec]
	}
	return putField(s, text, sp.width, sp.flags.Has(FlagMinus))
}

func putField(s Sink, text []byte, width int, left bool) error {
	if !left {
		if err := pad(s, width-len(text), ' '); err != nil {
			return err
		}
	}
	if err := putBytes(s, text); err != nil {
		return err
	}
	if left {
		return pad(s, width-len(text), ' ')
	}
	return nil
}
