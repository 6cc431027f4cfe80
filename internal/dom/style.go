package dom

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Style is an ordered set of CSS declarations.
type Style struct {
	props  []string
	values map[string]string
}

// Set assigns value to prop. An empty value removes the declaration.
func (s *Style) Set(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	if prop == "" {
		return
	}
	if value == "" {
		s.Remove(prop)
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[prop]; !ok {
		s.props = append(s.props, prop)
	}
	s.values[prop] = value
}

// Get returns the value of prop, or "" when unset.
func (s *Style) Get(prop string) string {
	return s.values[strings.ToLower(prop)]
}

// Remove deletes prop.
func (s *Style) Remove(prop string) {
	prop = strings.ToLower(prop)
	if _, ok := s.values[prop]; !ok {
		return
	}
	delete(s.values, prop)
	for i, p := range s.props {
		if p == prop {
			s.props = append(s.props[:i], s.props[i+1:]...)
			break
		}
	}
}

// Len returns the number of declarations.
func (s *Style) Len() int { return len(s.props) }

// String renders the declarations as an inline style attribute value.
func (s *Style) String() string {
	parts := make([]string, 0, len(s.props))
	for _, p := range s.props {
		parts = append(parts, p+": "+s.values[p])
	}
	return strings.Join(parts, "; ")
}

func (s *Style) merge(other *Style) {
	for _, p := range other.props {
		s.Set(p, other.values[p])
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseFloat reads the leading number of a CSS value such as "42.5px". It
// reports false when the value does not start with a number.
func ParseFloat(value string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(value))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatPx formats a pixel length, e.g. 56 -> "56px", 12.5 -> "12.5px".
func FormatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParseTimes parses a comma separated list of CSS times ("0.3s, 200ms").
// Entries without a number or with an unknown unit are skipped. A bare
// number is read as seconds.
func ParseTimes(value string) []time.Duration {
	var out []time.Duration
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		num := leadingNumber.FindString(part)
		if num == "" {
			continue
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || f < 0 {
			continue
		}
		switch strings.TrimSpace(part[len(num):]) {
		case "ms":
			out = append(out, time.Duration(f*float64(time.Millisecond)))
		case "s", "":
			out = append(out, time.Duration(f*float64(time.Second)))
		}
	}
	return out
}
