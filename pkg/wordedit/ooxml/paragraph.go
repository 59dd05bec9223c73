package ooxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Paragraph is an ordered sequence of runs and hyperlinks, plus any
// unmodeled children (bookmarks, comment ranges, smart tags) preserved
// verbatim.
type Paragraph struct {
	Properties *ParagraphProperties
	Children   []ParagraphChild
}

func (p *Paragraph) isBodyElement() {}

// ParagraphProperties models w:pPr. The style reference is parsed out
// because editing needs to read and write it; every other child is kept as
// raw markup, section breaks included.
type ParagraphProperties struct {
	StyleID string
	Raw     []*RawXML
}

// HasSectionBreak reports whether the properties carry a w:sectPr child,
// which ends a section at this paragraph.
func (p *ParagraphProperties) HasSectionBreak() bool {
	if p == nil {
		return false
	}
	for _, raw := range p.Raw {
		if raw.Name.Local == "sectPr" {
			return true
		}
	}
	return false
}

func (p *ParagraphProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "pStyle":
				var style struct {
					Val string `xml:"val,attr"`
				}
				if err := d.DecodeElement(&style, &t); err != nil {
					return err
				}
				p.StyleID = style.Val
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				p.Raw = append(p.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "pPr" {
				return nil
			}
		}
	}
	return nil
}

func (p *ParagraphProperties) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:pPr>")
	// pStyle must be the first pPr child per the schema
	if p.StyleID != "" {
		buf.WriteString(`<w:pStyle w:val="`)
		writeEscaped(buf, p.StyleID)
		buf.WriteString(`"/>`)
	}
	for _, raw := range p.Raw {
		raw.writeXML(buf)
	}
	buf.WriteString("</w:pPr>")
}

// Hyperlink wraps runs that render as a link. Attributes (relationship id,
// anchor, history) pass through untouched.
type Hyperlink struct {
	Attrs []xml.Attr
	Runs  []*Run
	Raw   []*RawXML
}

func (h *Hyperlink) isParagraphChild() {}

func (h *Hyperlink) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	h.Attrs = start.Attr
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
			case "r":
				var run Run
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				h.Runs = append(h.Runs, &run)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				h.Raw = append(h.Raw, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "hyperlink" {
				return nil
			}
		}
	}
	return nil
}

func (h *Hyperlink) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:hyperlink")
	for _, attr := range h.Attrs {
		writeAttr(buf, attr)
	}
	buf.WriteByte('>')
	for _, run := range h.Runs {
		run.writeXML(buf)
	}
	for _, raw := range h.Raw {
		raw.writeXML(buf)
	}
	buf.WriteString("</w:hyperlink>")
}

// Text returns the concatenated text of the hyperlink's runs.
func (h *Hyperlink) Text() string {
	var sb strings.Builder
	for _, run := range h.Runs {
		sb.WriteString(run.Text())
	}
	return sb.String()
}

func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "pPr":
				var props ParagraphProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				p.Properties = &props
			case "r":
				var run Run
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, &run)
			case "hyperlink":
				var link Hyperlink
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.Children = append(p.Children, &link)
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				p.Children = append(p.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return nil
			}
		}
	}
	return nil
}

func (p *Paragraph) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:p>")
	if p.Properties != nil {
		p.Properties.writeXML(buf)
	}
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			if c.IsEmpty() {
				continue
			}
			c.writeXML(buf)
		case *Hyperlink:
			c.writeXML(buf)
		case *RawXML:
			c.writeXML(buf)
		}
	}
	buf.WriteString("</w:p>")
}

// Runs returns every run in visible order: direct children and runs nested
// in hyperlinks. The pointers alias the paragraph; mutating a returned run
// mutates the paragraph.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			runs = append(runs, c)
		case *Hyperlink:
			runs = append(runs, c.Runs...)
		}
	}
	return runs
}

// Text returns the paragraph's visible text, the concatenation of all run
// texts in order.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs() {
		sb.WriteString(run.Text())
	}
	return sb.String()
}

// StyleID returns the paragraph's style reference, or "" when unstyled.
func (p *Paragraph) StyleID() string {
	if p.Properties == nil {
		return ""
	}
	return p.Properties.StyleID
}

// SetStyleID sets the paragraph's style reference.
func (p *Paragraph) SetStyleID(id string) {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	p.Properties.StyleID = id
}

// CollapseToText replaces the paragraph's entire content with a single run
// carrying s. The surviving run keeps the formatting of the paragraph's
// first direct run; hyperlinks and unmodeled children are removed. Used
// when a replacement straddles run boundaries and per-run formatting
// cannot be kept.
func (p *Paragraph) CollapseToText(s string) {
	var props *RunProperties
	for _, child := range p.Children {
		if run, ok := child.(*Run); ok {
			props = run.Properties.Clone()
			break
		}
	}
	run := &Run{Properties: props}
	run.SetText(s)
	p.Children = []ParagraphChild{run}
}

// NewParagraph builds a paragraph holding text with an optional style
// reference, the shape used for inserted headers and lines.
func NewParagraph(text, styleID string) *Paragraph {
	p := &Paragraph{}
	if styleID != "" {
		p.Properties = &ParagraphProperties{StyleID: styleID}
	}
	run := &Run{}
	run.SetText(text)
	p.Children = []ParagraphChild{run}
	return p
}
