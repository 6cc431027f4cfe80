// Package dom provides a small in-memory element tree that mirrors the parts
// of a browser document the toast manager relies on: class lists, inline and
// computed style, child insertion and removal, and key-down listeners on the
// body.
package dom

import "strings"

// Element is a node in a Document's tree.
type Element struct {
	doc      *Document
	tag      string
	id       string
	classes  ClassList
	attrs    []attr
	text     string
	html     string
	style    Style
	parent   *Element
	children []*Element
}

type attr struct {
	name  string
	value string
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.tag }

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// SetID sets the element id.
func (e *Element) SetID(id string) { e.id = id }

// ClassList returns the element's mutable class list.
func (e *Element) ClassList() *ClassList { return &e.classes }

// Style returns the element's inline style.
func (e *Element) Style() *Style { return &e.style }

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
}

// Attribute returns the value of name and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// SetTextContent replaces the element's content with plain text.
func (e *Element) SetTextContent(text string) {
	e.detachChildren()
	e.text = text
	e.html = ""
}

// SetInnerHTML replaces the element's content with raw markup. The markup is
// stored and serialized verbatim.
func (e *Element) SetInnerHTML(markup string) {
	e.detachChildren()
	e.html = markup
	e.text = ""
}

// InnerHTML returns the element's inner markup.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	e.writeInner(&b)
	return b.String()
}

// TextContent returns the element's text with markup removed.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a snapshot of the element's children.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// FirstElementChild returns the first child or nil.
func (e *Element) FirstElementChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// LastElementChild returns the last child or nil.
func (e *Element) LastElementChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	e.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref, or a ref that is not a
// child of e, appends.
func (e *Element) InsertBefore(child, ref *Element) {
	if child == nil || child == e {
		return
	}
	child.Remove()

	idx := e.indexOf(ref)
	if ref == nil || idx < 0 {
		e.children = append(e.children, child)
	} else {
		e.children = append(e.children, nil)
		copy(e.children[idx+1:], e.children[idx:])
		e.children[idx] = child
	}
	child.parent = e
}

// RemoveChild detaches child from e. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	idx := e.indexOf(child)
	if idx < 0 || child == nil {
		return false
	}
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.parent = nil
	return true
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// IsConnected reports whether e is attached to its document's body.
func (e *Element) IsConnected() bool {
	if e.doc == nil {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n == e.doc.body {
			return true
		}
	}
	return false
}

func (e *Element) indexOf(child *Element) int {
	if child == nil {
		return -1
	}
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (e *Element) detachChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// walk visits e and its descendants depth first until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
