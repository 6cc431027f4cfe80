package dom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassList(t *testing.T) {
	var c ClassList

	c.Add("a", "b", "a", "", " ")
	assert.Equal(t, []string{"a", "b"}, c.Values())
	assert.True(t, c.Contains("b"))

	c.Remove("a", "missing")
	assert.Equal(t, "b", c.String())

	assert.True(t, c.Toggle("c"))
	assert.False(t, c.Toggle("c"))
	assert.Equal(t, 1, c.Len())
}

func TestElement_InsertAndRemove(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateElement("div")
	b := doc.CreateElement("div")
	c := doc.CreateElement("div")

	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.InsertBefore(c, parent.FirstElementChild())

	assert.Equal(t, []*Element{c, a, b}, parent.Children())
	assert.Same(t, b, parent.LastElementChild())
	assert.Same(t, parent, a.Parent())

	a.Remove()
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Element{c, b}, parent.Children())
	assert.False(t, parent.RemoveChild(a), "removing a detached child should report false")

	// Re-appending moves rather than duplicates.
	parent.AppendChild(c)
	assert.Equal(t, []*Element{b, c}, parent.Children())
}

func TestElement_IsConnectedAndLookup(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	outer.SetID("outer")
	inner := doc.CreateElement("span")
	outer.AppendChild(inner)

	assert.False(t, inner.IsConnected())
	assert.Nil(t, doc.GetElementByID("outer"))

	doc.Body().AppendChild(outer)
	assert.True(t, inner.IsConnected())
	assert.Same(t, outer, doc.GetElementByID("outer"))
	assert.Nil(t, doc.GetElementByID(""))
}

func TestElement_OuterHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("DIV")
	el.SetID("t1")
	el.ClassList().Add("c-toast", "green")
	el.SetAttribute("role", "alert")
	el.Style().Set("bottom", "56px")

	title := doc.CreateElement("h4")
	title.SetTextContent("a < b")
	content := doc.CreateElement("div")
	content.SetInnerHTML("<b>ok</b>")
	el.AppendChild(title)
	el.AppendChild(content)

	assert.Equal(t,
		`<div id="t1" class="c-toast green" role="alert" style="bottom: 56px"><h4>a &lt; b</h4><div><b>ok</b></div></div>`,
		el.OuterHTML())
	assert.Equal(t, "<b>ok</b>", content.InnerHTML())
	assert.Equal(t, "a < bok", el.TextContent())
}

func TestElement_SetAttributeReplaces(t *testing.T) {
	el := NewDocument().CreateElement("div")
	el.SetAttribute("aria-live", "polite")
	el.SetAttribute("aria-live", "assertive")

	v, ok := el.Attribute("aria-live")
	assert.True(t, ok)
	assert.Equal(t, "assertive", v)

	_, ok = el.Attribute("role")
	assert.False(t, ok)
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>bold</b> text", "bold text"},
		{"one<br>two<br/>three", "one\ntwo\nthree"},
		{"a &amp; b", "a & b"},
		{"broken <tag", "broken "},
		{"1 < 2 and 3 > 1", "1 < 2 and 3 > 1"},
		{"<!-- a > b -->hi", "hi"},
		{`<b title="x>y">z</b>`, "z"},
		{"<script>alert(1)</script>ok<style>b{}</style>", "ok"},
		{"<i>x</i><br />y", "x\ny"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestComputedStyle(t *testing.T) {
	sheet := NewStylesheet(
		Rule{Class: ".c-toast", Decls: map[string]string{"height": "40px", "margin-bottom": "8px"}},
		Rule{Class: "tall", Decls: map[string]string{"height": "60px"}},
	)
	doc := NewDocument(WithStylesheet(sheet))
	el := doc.CreateElement("div")
	el.ClassList().Add("c-toast")

	assert.Equal(t, 0, doc.ComputedStyle(el).Len(), "detached elements compute an empty style")

	doc.Body().AppendChild(el)
	cs := doc.ComputedStyle(el)
	assert.Equal(t, "40px", cs.Get("height"))
	assert.Equal(t, "8px", cs.Get("margin-bottom"))

	el.ClassList().Add("tall")
	assert.Equal(t, "60px", doc.ComputedStyle(el).Get("height"), "later rules win")

	el.Style().Set("height", "10px")
	assert.Equal(t, "10px", doc.ComputedStyle(el).Get("height"), "inline style wins")
}

func TestComputedStyle_Measurer(t *testing.T) {
	doc := NewDocument(WithMeasurer(func(el *Element) (float64, bool) {
		return 3, true
	}))
	el := doc.CreateElement("div")
	doc.Body().AppendChild(el)

	assert.Equal(t, "3px", doc.ComputedStyle(el).Get("height"))
}

func TestDispatchKeyDown_CaptureFirst(t *testing.T) {
	doc := NewDocument()
	var order []string

	doc.AddEventListener(EventKeyDown, func(KeyboardEvent) { order = append(order, "bubble") }, false)
	capture := doc.AddEventListener(EventKeyDown, func(ev KeyboardEvent) {
		order = append(order, "capture:"+ev.Key)
	}, true)

	doc.DispatchKeyDown(KeyboardEvent{Key: "x", Ctrl: true})
	assert.Equal(t, []string{"capture:x", "bubble"}, order)

	capture.Remove()
	capture.Remove()
	assert.Equal(t, 1, doc.ListenerCount())

	order = nil
	doc.DispatchKeyDown(KeyboardEvent{Key: "y"})
	assert.Equal(t, []string{"bubble"}, order)
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42px", 42, true},
		{" 12.5px", 12.5, true},
		{".5em", 0.5, true},
		{"-3px", -3, true},
		{"auto", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFloat(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestFormatPx(t *testing.T) {
	assert.Equal(t, "56px", FormatPx(56))
	assert.Equal(t, "12.5px", FormatPx(12.5))
	assert.Equal(t, "0px", FormatPx(0))
}

func TestParseTimes(t *testing.T) {
	got := ParseTimes("0.3s, 200ms, bogus, 1")
	require.Len(t, got, 3)
	assert.Equal(t, 300*time.Millisecond, got[0])
	assert.Equal(t, 200*time.Millisecond, got[1])
	assert.Equal(t, time.Second, got[2])

	assert.Empty(t, ParseTimes(""))
	assert.Empty(t, ParseTimes("none"))
	assert.Empty(t, ParseTimes("3parsecs"))
}
