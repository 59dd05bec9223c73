package ooxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Run is a contiguous span of text sharing one formatting state. Children
// keeps the original order of text, breaks, tabs and unmodeled content.
type Run struct {
	Properties *RunProperties
	Children   []RunChild
}

func (r *Run) isParagraphChild() {}

// RunProperties preserves the inner markup of w:rPr verbatim. The editing
// operations never rewrite individual formatting switches, so the whole
// block round-trips untouched.
type RunProperties struct {
	Markup []byte
}

// Equal reports whether two property sets carry identical markup. A nil
// receiver equals an empty one.
func (p *RunProperties) Equal(other *RunProperties) bool {
	var a, b []byte
	if p != nil {
		a = p.Markup
	}
	if other != nil {
		b = other.Markup
	}
	return bytes.Equal(a, b)
}

// Clone returns a copy safe to attach to another run.
func (p *RunProperties) Clone() *RunProperties {
	if p == nil {
		return nil
	}
	markup := make([]byte, len(p.Markup))
	copy(markup, p.Markup)
	return &RunProperties{Markup: markup}
}

// Text is a w:t element.
type Text struct {
	Space string
	Value string
}

func (t *Text) isRunChild() {}

// Break is a w:br element; Type distinguishes page and column breaks from
// plain line breaks.
type Break struct {
	Type string
}

func (b *Break) isRunChild() {}

// Tab is a w:tab element inside a run.
type Tab struct{}

func (t *Tab) isRunChild() {}

func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				inner, err := captureInner(d, t)
				if err != nil {
					return err
				}
				r.Properties = &RunProperties{Markup: inner}
			case "t":
				var text struct {
					Space string `xml:"space,attr"`
					Value string `xml:",chardata"`
				}
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				r.Children = append(r.Children, &Text{Space: text.Space, Value: text.Value})
			case "br", "cr":
				var br struct {
					Type string `xml:"type,attr"`
				}
				if err := d.DecodeElement(&br, &t); err != nil {
					return err
				}
				r.Children = append(r.Children, &Break{Type: br.Type})
			case "tab":
				if err := d.Skip(); err != nil {
					return err
				}
				r.Children = append(r.Children, &Tab{})
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				r.Children = append(r.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return nil
			}
		}
	}
	return nil
}

func (r *Run) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:r>")
	if r.Properties != nil {
		buf.WriteString("<w:rPr>")
		buf.Write(r.Properties.Markup)
		buf.WriteString("</w:rPr>")
	}
	for _, child := range r.Children {
		switch c := child.(type) {
		case *Text:
			if c.Space == "preserve" || needsSpacePreserve(c.Value) {
				buf.WriteString(`<w:t xml:space="preserve">`)
			} else {
				buf.WriteString("<w:t>")
			}
			writeEscaped(buf, c.Value)
			buf.WriteString("</w:t>")
		case *Break:
			if c.Type != "" {
				buf.WriteString(`<w:br w:type="`)
				writeEscaped(buf, c.Type)
				buf.WriteString(`"/>`)
			} else {
				buf.WriteString("<w:br/>")
			}
		case *Tab:
			buf.WriteString("<w:tab/>")
		case *RawXML:
			c.writeXML(buf)
		}
	}
	buf.WriteString("</w:r>")
}

func needsSpacePreserve(s string) bool {
	return s != strings.TrimSpace(s)
}

// Text returns the run's visible text: w:t content, with breaks rendered
// as newlines and tabs as tab characters.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, child := range r.Children {
		switch c := child.(type) {
		case *Text:
			sb.WriteString(c.Value)
		case *Break:
			sb.WriteByte('\n')
		case *Tab:
			sb.WriteByte('\t')
		}
	}
	return sb.String()
}

// SetText replaces the run's content with s, keeping formatting. Newlines
// and tabs in s become break and tab elements, the encoding Word itself
// uses. Unmodeled children are dropped, matching the semantics of
// overwriting a run's text wholesale.
func (r *Run) SetText(s string) {
	r.Children = r.Children[:0]
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n', '\t':
			if start < i {
				r.Children = append(r.Children, &Text{Space: "preserve", Value: s[start:i]})
			}
			if s[i] == '\n' {
				r.Children = append(r.Children, &Break{})
			} else {
				r.Children = append(r.Children, &Tab{})
			}
			start = i + 1
		}
	}
	if start < len(s) {
		r.Children = append(r.Children, &Text{Space: "preserve", Value: s[start:]})
	}
}

// IsEmpty reports whether the run carries no content at all. Empty runs
// accumulate during editing and Word chokes on some of them, so the
// document writer drops them.
func (r *Run) IsEmpty() bool {
	return len(r.Children) == 0
}

// HasOnlyText reports whether every child is plain text content (text,
// breaks, tabs). Runs holding drawings or fields must not be merged away.
func (r *Run) HasOnlyText() bool {
	for _, child := range r.Children {
		if _, ok := child.(*RawXML); ok {
			return false
		}
	}
	return true
}
