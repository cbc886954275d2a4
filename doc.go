// Package cfmt formats values through printf-style templates and scans
// them back out again.
//
// The central entry points are [Sprintf], [Bprintf], [Fprintf] and [Sscanf].
// Every entry point parses the template itself, so unlike the standard
// library the set of conversion codes and their layout rules are the ones
// documented here, bit for bit.
//
// # Templates
//
// An output directive has the form
//
//	%[flags][width|*][.precision|.*][h|l|L]code
//
// Flags are any of "-+ 0#" in any order. A '*' width or precision takes its
// value from the next argument, width first; a negative '*' width means
// left-justify. "%%" is a literal percent sign.
//
// # Output codes
//
//   - s: string, []byte, *string, error or fmt.Stringer; nil prints <null>
//   - S: any [Text] (such as [Str] or *bytes.Buffer); nil prints <null>
//   - d i: signed decimal
//   - u: unsigned decimal
//   - o: octal; '#' adds a leading 0
//   - x X: hexadecimal; '#' adds 0x or 0X
//   - p: pointer as lowercase hex, precision ignored
//   - c: one character (byte, rune or int)
//   - f e E g G: floating point, default precision 6
//   - b: boolean as Y or N
//   - B: boolean as Yes or No
//   - D: [Date], time.Time or nil, through a strftime pattern
//   - F: any [Named] value such as *os.File; nil prints <null>
//
// The h modifier narrows integers to 16 bits. Without it integers keep all
// 64 bits, so l and L change nothing.
//
// # Arguments
//
// Arguments are consumed strictly in template order. A missing argument is
// reported as [ErrMissingArgument] and an argument of the wrong kind as
// [ErrBadArgument]; neither writes anything for the failing directive.
//
// # Destinations
//
// Output goes to a [Sink], one byte at a time:
//
//   - [FixedSink]: caller memory; fails with [ErrOverflow] when full
//   - [GrowableSink]: owned memory that doubles when full
//   - [StreamSink]: a func(byte) error, see [Fputf] and [WriterSink]
//
// [Bprintf] guarantees it never writes past the end of its buffer:
//
//	buf := make([]byte, 4)
//	n, err := cfmt.Bprintf(buf, "%d", 12345) // n == 4, errors.Is(err, cfmt.ErrOverflow)
//
// # Scanning
//
// A scan directive has the form %[*][width][h|l|L]code. Whitespace in the
// template and in the input is skipped independently and any other template
// byte must match exactly. A '*' reads a token without storing it.
//
//	var name string
//	var start, end int
//	n, err := cfmt.Sscanf("chr1 100 200", "%s %d %d", &name, &start, &end)
//
// The return value counts stored values. Scanning stops quietly at the
// first mismatch, so a short count is a partial match and not an error:
// always compare it with the number of values you expected.
//
// # Catalogs
//
// [LoadCatalog] reads named templates from YAML and checks every one of
// them up front. [Parse], [ParseScan] and [Describe] expose the directive
// structure of a template for debugging.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrOverflow]: a fixed buffer is full
//   - [ErrUnknownCode]: the template uses a code with no handler
//   - [ErrBadTemplate]: a directive is cut short, or a catalog entry is bad
//   - [ErrBadWidth]: a width or precision exceeds math.MaxInt32
//   - [ErrMissingArgument], [ErrBadArgument]: argument list mismatch
//   - [ErrDuplicateTemplate], [ErrTemplateNotFound]: catalog lookups
package cfmt
