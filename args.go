package cfmt

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// argCursor hands out the caller's values strictly in order. Every accessor
// consumes one value and reports a missing or mistyped value as an error.
type argCursor struct {
	args []any
	pos  int
}

func (c *argCursor) next(code byte) (any, error) {
	if c.pos >= len(c.args) {
		return nil, fmt.Errorf("%w: %%%c wants argument %d, got %d", ErrMissingArgument, code, c.pos+1, len(c.args))
	}
	v := c.args[c.pos]
	c.pos++
	return v, nil
}

func (c *argCursor) bad(code byte, v any) error {
	return fmt.Errorf("%w: %%%c cannot take %T (argument %d)", ErrBadArgument, code, v, c.pos)
}

// signed consumes any integer and returns it as an int64. Unsigned values
// above math.MaxInt64 keep their bit pattern.
func (c *argCursor) signed(code byte) (int64, error) {
	v, err := c.next(code)
	if err != nil {
		return 0, err
	}
	if n, ok := asInt64(v); ok {
		return n, nil
	}
	return 0, c.bad(code, v)
}

// unsigned consumes any integer and returns its two's complement bits.
func (c *argCursor) unsigned(code byte) (uint64, error) {
	n, err := c.signed(code)
	return uint64(n), err
}

// bound consumes a '*' width or precision.
func (c *argCursor) bound(code byte) (int, error) {
	v, err := c.next(code)
	if err != nil {
		return 0, err
	}
	n, ok := asInt64(v)
	if !ok {
		return 0, c.bad(code, v)
	}
	if n > maxBound || n < -maxBound {
		return 0, fmt.Errorf("%w: %d from argument %d", ErrBadWidth, n, c.pos)
	}
	return int(n), nil
}

func (c *argCursor) float(code byte) (float64, error) {
	v, err := c.next(code)
	if err != nil {
		return 0, err
	}
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	}
	if rv := reflect.ValueOf(v); rv.IsValid() {
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return float64(rv.Uint()), nil
		}
	}
	if n, ok := asInt64(v); ok {
		return float64(n), nil
	}
	return 0, c.bad(code, v)
}

func (c *argCursor) boolean(code byte) (bool, error) {
	v, err := c.next(code)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if rv := reflect.ValueOf(v); rv.IsValid() && rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}
	if n, ok := asInt64(v); ok {
		return n != 0, nil
	}
	return false, c.bad(code, v)
}

// char consumes a byte, rune or int. Bytes are returned with ok8 set so
// they can be written raw.
func (c *argCursor) char(code byte) (r rune, ok8 bool, err error) {
	v, err := c.next(code)
	if err != nil {
		return 0, false, err
	}
	switch ch := v.(type) {
	case byte:
		return rune(ch), true, nil
	case rune:
		return ch, false, nil
	case int:
		if ch < 0 || ch > math.MaxInt32 {
			return 0, false, c.bad(code, v)
		}
		return rune(ch), false, nil
	}
	return 0, false, c.bad(code, v)
}

func (c *argCursor) pointer(code byte) (uintptr, error) {
	v, err := c.next(code)
	if err != nil {
		return 0, err
	}
	switch p := v.(type) {
	case nil:
		return 0, nil
	case uintptr:
		return p, nil
	case unsafe.Pointer:
		return uintptr(p), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.Pointer(), nil
	}
	return 0, c.bad(code, v)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uintptr:
		return int64(n), true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true
	}
	return 0, false
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
