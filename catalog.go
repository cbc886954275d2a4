package cfmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrDuplicateTemplate = errors.New("duplicate template")
	ErrTemplateNotFound  = errors.New("template not found")
)

// Mode says which side of the engine a catalog template is for.
type Mode string

const (
	ModePrint Mode = "print"
	ModeScan  Mode = "scan"
)

// Entry is one named template.
type Entry struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Mode     Mode   `yaml:"mode,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
}

type catalogDoc struct {
	Templates []Entry `yaml:"templates"`
}

// Catalog is a set of named templates, each checked when it is added so a
// bad template fails at load time rather than at first use.
//
// A Catalog is safe for concurrent use once it is no longer being added to.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// LoadCatalog reads a catalog from YAML of the form
//
//	templates:
//	  - name: header
//	    template: ">%S %d"
//	  - name: coords
//	    template: "%d..%d"
//	    mode: scan
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadTemplate, err)
	}
	c := NewCatalog()
	for _, e := range doc.Templates {
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add validates e and adds it. An empty Mode means ModePrint.
func (c *Catalog) Add(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: template without a name", ErrBadTemplate)
	}
	if _, ok := c.entries[e.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, e.Name)
	}
	var err error
	switch e.Mode {
	case "", ModePrint:
		e.Mode = ModePrint
		_, err = Parse(e.Template)
	case ModeScan:
		_, err = ParseScan(e.Template)
	default:
		err = fmt.Errorf("%w: mode %q", ErrBadTemplate, e.Mode)
	}
	if err != nil {
		return fmt.Errorf("template %q: %w", e.Name, err)
	}
	c.entries[e.Name] = e
	c.order = append(c.order, e.Name)
	return nil
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns the template names in the order they were added.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) get(name string, mode Mode) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if e.Mode != mode {
		return Entry{}, fmt.Errorf("%w: %q is a %s template", ErrBadTemplate, name, e.Mode)
	}
	return e, nil
}

// Sprintf formats with the print template called name.
func (c *Catalog) Sprintf(name string, args ...any) (string, error) {
	e, err := c.get(name, ModePrint)
	if err != nil {
		return "", err
	}
	return Sprintf(e.Template, args...)
}

// Fprintf writes to w with the print template called name.
func (c *Catalog) Fprintf(w io.Writer, name string, args ...any) (int, error) {
	e, err := c.get(name, ModePrint)
	if err != nil {
		return 0, err
	}
	return Fprintf(w, e.Template, args...)
}

// Sscanf scans input with the scan template called name.
func (c *Catalog) Sscanf(name, input string, slots ...any) (int, error) {
	e, err := c.get(name, ModeScan)
	if err != nil {
		return 0, err
	}
	return Sscanf(input, e.Template, slots...)
}

// WriteYAML writes the catalog in the form LoadCatalog reads.
func (c *Catalog) WriteYAML(w io.Writer) error {
	doc := catalogDoc{Templates: make([]Entry, 0, len(c.order))}
	for _, name := range c.order {
		doc.Templates = append(doc.Templates, c.entries[name])
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
