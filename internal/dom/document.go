package dom

import (
	"sort"
	"strings"
)

// Measurer reports the rendered height of an element when no stylesheet rule
// declares one.
type Measurer func(el *Element) (height float64, ok bool)

// Rule is a single class-selector rule.
type Rule struct {
	Class string
	Decls map[string]string
}

// Stylesheet holds class rules in cascade order; later rules win.
type Stylesheet struct {
	rules []Rule
}

// NewStylesheet returns a stylesheet with the given rules.
func NewStylesheet(rules ...Rule) *Stylesheet {
	s := &Stylesheet{}
	for _, r := range rules {
		s.Add(r.Class, r.Decls)
	}
	return s
}

// Add appends a rule for class.
func (s *Stylesheet) Add(class string, decls map[string]string) {
	class = strings.TrimPrefix(strings.TrimSpace(class), ".")
	if class == "" {
		return
	}
	copied := make(map[string]string, len(decls))
	for k, v := range decls {
		copied[k] = v
	}
	s.rules = append(s.rules, Rule{Class: class, Decls: copied})
}

// Len returns the number of rules.
func (s *Stylesheet) Len() int { return len(s.rules) }

// Document is the root of an element tree.
type Document struct {
	body      *Element
	sheet     *Stylesheet
	measurer  Measurer
	listeners []*Listener
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithStylesheet sets the stylesheet used for computed style.
func WithStylesheet(s *Stylesheet) DocumentOption {
	return func(d *Document) {
		if s != nil {
			d.sheet = s
		}
	}
}

// WithMeasurer sets the fallback height measurer.
func WithMeasurer(m Measurer) DocumentOption {
	return func(d *Document) {
		d.measurer = m
	}
}

// NewDocument creates a document with an empty body.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{sheet: NewStylesheet()}
	d.body = &Element{doc: d, tag: "body"}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// Stylesheet returns the document stylesheet.
func (d *Document) Stylesheet() *Stylesheet { return d.sheet }

// CreateElement returns a new detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{doc: d, tag: strings.ToLower(tag)}
}

// GetElementByID returns the first connected element with id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.body.walk(func(e *Element) bool {
		if e.id == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// ComputedStyle resolves the style of el: matching stylesheet rules in order,
// then inline declarations. Detached elements have an empty computed style.
func (d *Document) ComputedStyle(el *Element) *Style {
	out := &Style{}
	if el == nil || el.doc != d || !el.IsConnected() {
		return out
	}
	for _, r := range d.sheet.rules {
		if !el.classes.Contains(r.Class) {
			continue
		}
		keys := make([]string, 0, len(r.Decls))
		for k := range r.Decls {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out.Set(k, r.Decls[k])
		}
	}
	out.merge(&el.style)
	if out.Get("height") == "" && d.measurer != nil {
		if h, ok := d.measurer(el); ok {
			out.Set("height", FormatPx(h))
		}
	}
	return out
}
