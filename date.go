package cfmt

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDateLayout is the strftime pattern %D uses when a Date has none.
const DefaultDateLayout = "%d/%m/%y"

// Date is the value rendered by the %D conversion.
type Date struct {
	Time   time.Time
	Layout string // strftime pattern; empty means DefaultDateLayout
	Upper  bool   // render in upper case
}

// Format renders the date with its layout.
func (d *Date) Format() (string, error) {
	layout := d.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	s, err := strftime.Format(layout, d.Time)
	if err != nil {
		return "", fmt.Errorf("%w: date layout %q: %v", ErrBadArgument, layout, err)
	}
	if d.Upper {
		// A Caser keeps state, so each call gets its own.
		s = cases.Upper(language.Und).String(s)
	}
	return s, nil
}
