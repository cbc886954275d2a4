package cfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutd(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		digits string
		sp     layout
		want   string
	}{
		"bare":               {digits: "42", sp: layout{prec: -1}, want: "42"},
		"width":              {digits: "42", sp: layout{width: 5, prec: -1}, want: "   42"},
		"zero pad negative":  {digits: "-42", sp: layout{flags: FlagZero, width: 6, prec: -1}, want: "-00042"},
		"left with plus":     {digits: "42", sp: layout{flags: FlagMinus | FlagPlus, width: 5, prec: -1}, want: "+42  "},
		"space sign":         {digits: "5", sp: layout{flags: FlagSpace, prec: -1}, want: " 5"},
		"embedded sign wins": {digits: "-5", sp: layout{flags: FlagPlus, prec: -1}, want: "-5"},
		"zero no digits":     {digits: "0", sp: layout{prec: 0}, want: ""},
		"zero no digits pad": {digits: "0", sp: layout{width: 3, prec: 0}, want: "   "},
		"prefix then zeros":  {digits: "0xff", sp: layout{flags: FlagSharp, prec: 4}, want: "0x00ff"},
		"prefix zero pad":    {digits: "0XFF", sp: layout{flags: FlagSharp | FlagZero, width: 7, prec: -1}, want: "0X000FF"},
		"prefix ignored":     {digits: "0xff", sp: layout{prec: -1}, want: "0xff"},
		// The zero flag still pads when a precision is given.
		"zero flag and prec": {digits: "7", sp: layout{flags: FlagZero, width: 5, prec: 3}, want: "00007"},
		"minus beats zero":   {digits: "7", sp: layout{flags: FlagMinus | FlagZero, width: 3, prec: -1}, want: "7  "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := NewGrowableSink(1)
			sp := tt.sp
			require.NoError(t, putd(g, []byte(tt.digits), &sp))
			assert.Equal(t, tt.want, string(g.Bytes()))
		})
	}
}

func TestPutsTruncates(t *testing.T) {
	t.Parallel()
	g := NewGrowableSink(1)
	require.NoError(t, puts(g, []byte("abcdef"), &layout{width: 4, prec: 2}))
	assert.Equal(t, "  ab", string(g.Bytes()))
}

func TestParseDirective(t *testing.T) {
	t.Parallel()
	tmpl := "%-+ 0#12.5lx"
	d, next, err := parseDirective(tmpl, 0)
	require.NoError(t, err)
	assert.Equal(t, len(tmpl), next)
	assert.Equal(t, FlagMinus|FlagPlus|FlagSpace|FlagZero|FlagSharp, d.Flags)
	assert.Equal(t, Bound{Kind: BoundLiteral, Value: 12}, d.Width)
	assert.Equal(t, Bound{Kind: BoundLiteral, Value: 5}, d.Precision)
	assert.Equal(t, LengthLong, d.Length)
	assert.Equal(t, byte('x'), d.Code)
}

func TestParseBound(t *testing.T) {
	t.Parallel()
	b, next, err := parseBound("2147483647d", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, next)
	assert.Equal(t, Bound{Kind: BoundLiteral, Value: maxBound}, b)

	_, _, err = parseBound("2147483648d", 0)
	require.ErrorIs(t, err, ErrBadWidth)

	b, next, err = parseBound("*d", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, BoundFromArgument, b.Kind)

	b, next, err = parseBound("d", 0)
	require.NoError(t, err)
	assert.Zero(t, next)
	assert.Equal(t, BoundNone, b.Kind)
}

func TestTablesBuiltOnce(t *testing.T) {
	t.Parallel()
	assert.Same(t, outputTable(), outputTable())
	assert.Same(t, scanTable(), scanTable())
	assert.Same(t, classes(), classes())
}

func TestTablesCoverCodes(t *testing.T) {
	t.Parallel()
	for _, c := range []byte("sSdiuoxXpcfeEgGbBDF") {
		assert.NotNil(t, outputTable()[c], "output %c", c)
	}
	for _, c := range []byte("sSzduoxpfcbB") {
		assert.NotNil(t, scanTable()[c], "scan %c", c)
	}
	assert.Nil(t, outputTable()['q'])
	assert.Nil(t, scanTable()['e'])
}

// --- Sinks ---

func TestFixedSinkNeverOverruns(t *testing.T) {
	t.Parallel()
	backing := make([]byte, 6)
	s := NewFixedSink(backing[:3])
	for _, c := range []byte("abcdef") {
		_ = s.PutByte(c)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, "abc", string(s.Bytes()))
	assert.Equal(t, []byte{0, 0, 0}, backing[3:])
	assert.ErrorIs(t, s.PutByte('x'), ErrOverflow)
}

func TestGrowableSinkDoubles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		initial  int
		wantBase int
	}{
		"four":     {initial: 4, wantBase: 4},
		"three":    {initial: 3, wantBase: 3},
		"zero":     {initial: 0, wantBase: 1},
		"negative": {initial: -8, wantBase: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := NewGrowableSink(tt.initial)
			want := make([]byte, 0, 100)
			for i := range 100 {
				c := byte('a' + i%26)
				require.NoError(t, s.PutByte(c))
				want = append(want, c)

				assert.GreaterOrEqual(t, s.Cap(), s.Len())
				ratio := s.Cap() / tt.wantBase
				assert.Zero(t, s.Cap()%tt.wantBase)
				assert.Zero(t, ratio&(ratio-1), "capacity %d is not %d times a power of two", s.Cap(), tt.wantBase)
			}
			assert.Equal(t, want, s.Bytes())
		})
	}
}

func TestGrowableSinkZeroValue(t *testing.T) {
	t.Parallel()
	var s GrowableSink
	require.NoError(t, s.PutByte('a'))
	require.NoError(t, s.PutByte('b'))
	assert.Equal(t, "ab", string(s.Bytes()))
	assert.Equal(t, 2, s.Cap())
}

func TestCountingSink(t *testing.T) {
	t.Parallel()
	cs := &countingSink{Sink: NewFixedSink(make([]byte, 2))}
	require.NoError(t, putBytes(cs, []byte("ab")))
	require.ErrorIs(t, putBytes(cs, []byte("c")), ErrOverflow)
	assert.Equal(t, 2, cs.n)
}

// --- Scanning helpers ---

func TestCharClasses(t *testing.T) {
	t.Parallel()
	for _, c := range []byte(" \t\n\v\f\r") {
		assert.True(t, isSpace(c), "%q", c)
		assert.False(t, classes().word.Test(uint(c)), "%q", c)
	}
	assert.False(t, isSpace('a'))
	assert.True(t, classes().word.Test(0xff))
	assert.True(t, classes().hex.Test('F'))
	assert.False(t, classes().oct.Test('8'))
}

func TestRun(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, run("  ab", classes().space, 0))
	assert.Equal(t, 2, run("aaaa", classes().word, 2))
	assert.Zero(t, run("", classes().dec, 0))
}

func TestNumberToken(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in    string
		hex   bool
		width int
		want  string
	}{
		"decimal":          {in: "123abc", want: "123"},
		"signed":           {in: "-45 ", want: "-45"},
		"sign only":        {in: "+", want: ""},
		"width":            {in: "12345", width: 3, want: "123"},
		"hex prefix":       {in: "-0x1fz", hex: true, want: "-0x1f"},
		"hex prefix alone": {in: "0x", hex: true, want: "0"},
		"hex no prefix":    {in: "beefy", hex: true, want: "beef"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			class := classes().dec
			if tt.hex {
				class = classes().hex
			}
			assert.Equal(t, tt.want, number(tt.in, class, tt.width, tt.hex))
		})
	}
}

func TestFloatToken(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.5e+3", float("1.5e+3x", 0))
	assert.Equal(t, "1.", float("1.x", 0))
	assert.Equal(t, "1.5", float("1.5e+3", 3))
	assert.Empty(t, float("-.e1", 0))
}

func TestParseBool(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tok   string
		words bool
		want  bool
		ok    bool
	}{
		"y":        {tok: "y", want: true, ok: true},
		"F":        {tok: "F", want: false, ok: true},
		"number":   {tok: "-3", want: true, ok: true},
		"zero":     {tok: "00", want: false, ok: true},
		"yes":      {tok: "Yes", words: true, want: true, ok: true},
		"yes off":  {tok: "Yes", ok: false},
		"lower no": {tok: "no", words: true, ok: false},
		"empty":    {tok: "", ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseBool(tt.tok, tt.words)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Float helpers ---

func TestForcePoint(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "3.", string(forcePoint([]byte("3"), 'f')))
	assert.Equal(t, "3.E+00", string(forcePoint([]byte("3E+00"), 'E')))
	assert.Equal(t, "3", string(forcePoint([]byte("3"), 'g')))
}

func TestNonFinite(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "NAN", string(nonFinite(math.NaN(), true)))
	assert.Equal(t, "-inf", string(nonFinite(math.Inf(-1), false)))
}
