package ooxml

import (
	"bytes"
	"encoding/xml"
)

// BodyElement is any element that can appear directly in a document body.
type BodyElement interface {
	isBodyElement()
}

// ParagraphChild is any element that can appear inside a paragraph.
type ParagraphChild interface {
	isParagraphChild()
}

// RunChild is any element that can appear inside a run.
type RunChild interface {
	isRunChild()
}

// RawXML holds the complete markup of an element this package does not
// model. It is captured verbatim during parsing and written back verbatim,
// so bookmarks, drawings, fields and similar content survive an edit cycle.
type RawXML struct {
	Name   xml.Name
	Markup []byte
}

func (r *RawXML) isBodyElement()    {}
func (r *RawXML) isParagraphChild() {}
func (r *RawXML) isRunChild()       {}

func (r *RawXML) writeXML(buf *bytes.Buffer) {
	buf.Write(r.Markup)
}

// prefixFor maps a namespace URI back to its conventional prefix. Word
// documents use a stable set of prefixes; anything unrecognized falls back
// to the URI so the problem is visible in output rather than silent.
func prefixFor(uri string) string {
	if p, ok := namespacePrefixes[uri]; ok {
		return p
	}
	return uri
}

var namespacePrefixes = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":               "w16cex",
	"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":       "w16sdtdh",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
}

// qualifiedName renders an xml.Name the way it appeared in the source file.
// The decoder resolves prefixes to URIs; this reverses that. Namespace
// declaration attributes arrive with the literal space "xmlns".
func qualifiedName(name xml.Name) string {
	switch {
	case name.Space == "":
		return name.Local
	case name.Space == "xmlns":
		return "xmlns:" + name.Local
	default:
		return prefixFor(name.Space) + ":" + name.Local
	}
}

func writeEscaped(buf *bytes.Buffer, s string) {
	// bytes.Buffer never returns a write error
	xml.EscapeText(buf, []byte(s))
}

func writeAttr(buf *bytes.Buffer, attr xml.Attr) {
	buf.WriteByte(' ')
	buf.WriteString(qualifiedName(attr.Name))
	buf.WriteString(`="`)
	writeEscaped(buf, attr.Value)
	buf.WriteByte('"')
}

func writeStartTag(buf *bytes.Buffer, start xml.StartElement) {
	buf.WriteByte('<')
	buf.WriteString(qualifiedName(start.Name))
	for _, attr := range start.Attr {
		writeAttr(buf, attr)
	}
	buf.WriteByte('>')
}

func writeEndTag(buf *bytes.Buffer, name xml.Name) {
	buf.WriteString("</")
	buf.WriteString(qualifiedName(name))
	buf.WriteByte('>')
}

// captureElement consumes an element whose start tag has already been read
// and returns its complete markup, prefixes restored. Child elements,
// attributes and character data are reproduced; comments and processing
// instructions are dropped.
func captureElement(d *xml.Decoder, start xml.StartElement) (*RawXML, error) {
	var buf bytes.Buffer
	writeStartTag(&buf, start)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStartTag(&buf, t)
		case xml.EndElement:
			depth--
			writeEndTag(&buf, t.Name)
		case xml.CharData:
			writeEscaped(&buf, string(t))
		}
	}

	return &RawXML{Name: start.Name, Markup: buf.Bytes()}, nil
}

// captureInner is like captureElement but returns only the element's inner
// markup, without the enclosing tags. Used for property containers whose
// contents are preserved wholesale.
func captureInner(d *xml.Decoder, start xml.StartElement) ([]byte, error) {
	raw, err := captureElement(d, start)
	if err != nil {
		return nil, err
	}
	open := bytes.IndexByte(raw.Markup, '>')
	closeTag := []byte(writeEndString(start.Name))
	inner := raw.Markup[open+1 : len(raw.Markup)-len(closeTag)]
	out := make([]byte, len(inner))
	copy(out, inner)
	return out, nil
}

func writeEndString(name xml.Name) string {
	var buf bytes.Buffer
	writeEndTag(&buf, name)
	return buf.String()
}
