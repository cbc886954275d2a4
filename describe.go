package cfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Style selects how [Describe] lays out directives.
type Style int

const (
	StyleRounded Style = iota // ╭─╮╰╯│┬┴├┤┼
	StyleASCII                // +-+|
	StylePlain                // no borders, space-separated columns
	StyleYAML                 // one YAML mapping per directive
)

// alignment controls column text alignment.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[Style]borderChars{
	StyleRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	StyleASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

var describeHeader = []string{"#", "Offset", "Directive", "Flags", "Width", "Precision", "Length", "Argument"}

var describeAligns = []alignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignCenter, alignLeft}

// Describe writes one row per directive. Pass the result of [Parse] or
// [ParseScan]; title, when not empty, is printed above bordered tables.
func Describe(w io.Writer, title string, ds []Directive, style Style) error {
	if style == StyleYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	}
	bc, ok := borderSets[style]
	if !ok && style != StylePlain {
		return fmt.Errorf("%w: style %d", ErrBadArgument, style)
	}

	rows := make([][]string, 0, len(ds)+1)
	rows = append(rows, describeHeader)
	for i, d := range ds {
		rows = append(rows, directiveRow(i+1, d))
	}
	if style == StylePlain {
		return renderPlain(w, rows, describeAligns)
	}
	return renderBordered(w, title, rows, describeAligns, bc)
}

func directiveRow(n int, d Directive) []string {
	flags := d.Flags.String()
	if d.Suppress {
		flags = "*" + flags
	}
	arg := d.Argument()
	if arg == "" {
		arg = "-"
	}
	return []string{
		strconv.Itoa(n),
		strconv.Itoa(d.Offset),
		d.String(),
		flags,
		d.Width.String(),
		d.Precision.String(),
		d.Length.String(),
		arg,
	}
}

type directiveDoc struct {
	Offset    int    `yaml:"offset"`
	Text      string `yaml:"text"`
	Code      string `yaml:"code"`
	Flags     string `yaml:"flags,omitempty"`
	Width     string `yaml:"width,omitempty"`
	Precision string `yaml:"precision,omitempty"`
	Length    string `yaml:"length,omitempty"`
	Suppress  bool   `yaml:"suppress,omitempty"`
	Argument  string `yaml:"argument,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (d Directive) MarshalYAML() (any, error) {
	doc := directiveDoc{
		Offset:    d.Offset,
		Text:      d.String(),
		Code:      string(d.Code),
		Flags:     d.Flags.String(),
		Width:     d.Width.String(),
		Precision: d.Precision.String(),
		Length:    d.Length.String(),
		Suppress:  d.Suppress,
		Argument:  d.Argument(),
	}
	return doc, nil
}

// grid is the column geometry shared by every table style.
type grid struct {
	widths []int
	aligns []alignment
}

func newGrid(rows [][]string, aligns []alignment) *grid {
	g := &grid{widths: make([]int, len(aligns)), aligns: aligns}
	for _, row := range rows {
		for i, cell := range row {
			g.widths[i] = max(g.widths[i], runewidth.StringWidth(cell))
		}
	}
	return g
}

// inner is the display width between the outer borders: every cell plus
// its two padding spaces, and one separator between neighbours.
func (g *grid) inner() int {
	n := len(g.widths) - 1
	for _, w := range g.widths {
		n += w + 2
	}
	return n
}

// rule draws a horizontal border with the given corner and tee pieces.
func (g *grid) rule(sb *strings.Builder, fill, left, mid, right string) {
	sb.WriteString(left)
	for i, w := range g.widths {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(fill, w+2))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

// row draws one bordered row.
func (g *grid) row(sb *strings.Builder, cells []string, vert string) {
	sb.WriteString(vert)
	for i, w := range g.widths {
		sb.WriteByte(' ')
		sb.WriteString(alignCell(cells[i], w, g.aligns[i]))
		sb.WriteByte(' ')
		sb.WriteString(vert)
	}
	sb.WriteByte('\n')
}

// plainRow draws one row separated by two spaces, without trailing blanks.
func (g *grid) plainRow(sb *strings.Builder, cells []string) {
	parts := make([]string, len(g.widths))
	for i, w := range g.widths {
		parts[i] = alignCell(cells[i], w, g.aligns[i])
	}
	sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
	sb.WriteByte('\n')
}

func renderPlain(w io.Writer, rows [][]string, aligns []alignment) error {
	g := newGrid(rows, aligns)
	var sb strings.Builder
	g.plainRow(&sb, rows[0])
	dashes := make([]string, len(g.widths))
	for i, width := range g.widths {
		dashes[i] = strings.Repeat("-", width)
	}
	sb.WriteString(strings.Join(dashes, "  "))
	sb.WriteByte('\n')
	for _, row := range rows[1:] {
		g.plainRow(&sb, row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderBordered draws rows[0] as the header. A title wider than the table
// widens the last column.
func renderBordered(w io.Writer, title string, rows [][]string, aligns []alignment, bc borderChars) error {
	g := newGrid(rows, aligns)
	var sb strings.Builder
	if title != "" {
		if extra := runewidth.StringWidth(title) - (g.inner() - 2); extra > 0 {
			g.widths[len(g.widths)-1] += extra
		}
		g.rule(&sb, bc.horizontal, bc.topLeft, bc.horizontal, bc.topRight)
		sb.WriteString(bc.vertical + " " + alignCell(title, g.inner()-2, alignCenter) + " " + bc.vertical + "\n")
		g.rule(&sb, bc.horizontal, bc.leftTee, bc.topTee, bc.rightTee)
	} else {
		g.rule(&sb, bc.horizontal, bc.topLeft, bc.topTee, bc.topRight)
	}
	g.row(&sb, rows[0], bc.vertical)
	g.rule(&sb, bc.horizontal, bc.leftTee, bc.cross, bc.rightTee)
	for _, row := range rows[1:] {
		g.row(&sb, row, bc.vertical)
	}
	g.rule(&sb, bc.horizontal, bc.bottomLeft, bc.bottomTee, bc.bottomRight)
	_, err := io.WriteString(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", gap) + s
	case alignCenter:
		return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
