package dom

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// OuterHTML serializes e and its subtree. Markup set through SetInnerHTML is
// written unescaped.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	e.writeOuter(&b)
	return b.String()
}

func (e *Element) writeOuter(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(e.tag)
	if e.id != "" {
		writeAttr(b, "id", e.id)
	}
	if e.classes.Len() > 0 {
		writeAttr(b, "class", e.classes.String())
	}
	for _, a := range e.attrs {
		writeAttr(b, a.name, a.value)
	}
	if e.style.Len() > 0 {
		writeAttr(b, "style", e.style.String())
	}
	b.WriteString(">")
	e.writeInner(b)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteString(">")
}

func (e *Element) writeInner(b *strings.Builder) {
	switch {
	case e.text != "":
		b.WriteString(html.EscapeString(e.text))
	case e.html != "":
		b.WriteString(e.html)
	}
	for _, c := range e.children {
		c.writeOuter(b)
	}
}

func (e *Element) writeText(b *strings.Builder) {
	switch {
	case e.text != "":
		b.WriteString(e.text)
	case e.html != "":
		b.WriteString(StripTags(e.html))
	}
	for _, c := range e.children {
		c.writeText(b)
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

// StripTags returns the text content of the markup in s with entities
// unescaped. Comments and script or style bodies are dropped; line-break tags
// become newlines.
func StripTags(s string) string {
	var (
		b    strings.Builder
		skip int
	)
	z := nethtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return b.String()
		case nethtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			tt := z.Token()
			switch tt.DataAtom {
			case atom.Br:
				b.WriteString("\n")
			case atom.Script, atom.Style:
				if tt.Type == nethtml.StartTagToken {
					skip++
				}
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
			}
		}
	}
}
