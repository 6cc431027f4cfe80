package dom

import "strings"

// ClassList is an ordered set of class names.
type ClassList struct {
	names []string
}

// Add appends each name not already present. Empty names are ignored.
func (c *ClassList) Add(names ...string) {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || c.Contains(n) {
			continue
		}
		c.names = append(c.names, n)
	}
}

// Remove deletes each name if present.
func (c *ClassList) Remove(names ...string) {
	for _, n := range names {
		for i, existing := range c.names {
			if existing == n {
				c.names = append(c.names[:i], c.names[i+1:]...)
				break
			}
		}
	}
}

// Toggle adds name when absent and removes it when present. It reports
// whether name is present afterwards.
func (c *ClassList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return c.Contains(name)
}

// Contains reports whether name is in the list.
func (c *ClassList) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Values returns a copy of the names in insertion order.
func (c *ClassList) Values() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of classes.
func (c *ClassList) Len() int { return len(c.names) }

// String returns the names joined by a single space.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
