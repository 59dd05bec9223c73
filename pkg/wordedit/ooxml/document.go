package ooxml

import (
	"bytes"
	"encoding/xml"
	"io"

	"gitlab.com/tozd/go/errors"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Document is the parsed word/document.xml. Root attributes (the namespace
// declarations Word emits) are preserved verbatim for write-back.
type Document struct {
	Attrs []xml.Attr
	Body  *Body
}

// Body holds the document content in order. Elements are paragraphs,
// tables and raw-preserved unmodeled blocks; the trailing w:sectPr closes
// the final section and is kept raw.
type Body struct {
	Elements          []BodyElement
	SectionProperties *RawXML
}

// ParseDocument parses a word/document.xml stream.
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Errorf("parsing document body: %w", err)
	}
	if doc.Body == nil {
		doc.Body = &Body{}
	}
	return &doc, nil
}

func (doc *Document) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "document" {
		return errors.Errorf("unexpected root element %q", start.Name.Local)
	}
	doc.Attrs = start.Attr
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
			if t.Name.Local == "body" {
				var body Body
				if err := d.DecodeElement(&body, &t); err != nil {
					return err
				}
				doc.Body = &body
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
	return nil
}

func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
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
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &table)
			case "sectPr":
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				b.SectionProperties = raw
			default:
				raw, err := captureElement(d, t)
				if err != nil {
					return err
				}
				b.Elements = append(b.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
	return nil
}

// Marshal renders the document back to word/document.xml bytes.
func (doc *Document) Marshal() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString("<w:document")
	for _, attr := range doc.Attrs {
		writeAttr(&buf, attr)
	}
	buf.WriteByte('>')
	doc.Body.writeXML(&buf)
	buf.WriteString("</w:document>")
	return buf.Bytes()
}

func (b *Body) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:body>")
	for _, elem := range b.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			el.writeXML(buf)
		case *Table:
			el.writeXML(buf)
		case *RawXML:
			el.writeXML(buf)
		}
	}
	if b.SectionProperties != nil {
		b.SectionProperties.writeXML(buf)
	}
	buf.WriteString("</w:body>")
}

// Paragraphs returns the body's direct paragraphs in document order.
func (b *Body) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, elem := range b.Elements {
		if p, ok := elem.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the body's direct tables in document order.
func (b *Body) Tables() []*Table {
	var tables []*Table
	for _, elem := range b.Elements {
		if t, ok := elem.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// SectionCount counts the document's sections: one per paragraph-level
// section break plus one for the body's trailing sectPr.
func (b *Body) SectionCount() int {
	n := 0
	for _, p := range b.Paragraphs() {
		if p.Properties.HasSectionBreak() {
			n++
		}
	}
	if b.SectionProperties != nil {
		n++
	}
	return n
}

// InsertRelative splices p immediately before or after anchor in the
// element order. Returns false when anchor is not a direct body element.
func (b *Body) InsertRelative(anchor, p *Paragraph, before bool) bool {
	for i, elem := range b.Elements {
		if pp, ok := elem.(*Paragraph); ok && pp == anchor {
			at := i
			if !before {
				at = i + 1
			}
			b.Elements = append(b.Elements, nil)
			copy(b.Elements[at+1:], b.Elements[at:])
			b.Elements[at] = p
			return true
		}
	}
	return false
}
