package ooxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// Table is a grid of cells. Formatting containers (w:tblPr) and the column
// grid pass through as raw markup; only the row/cell/paragraph skeleton is
// modeled, which is all the editing operations touch.
type Table struct {
	Properties *RawXML
	Grid       *TableGrid
	Rows       []*TableRow
	Raw        []*RawXML
}

func (t *Table) isBodyElement() {}

// TableGrid holds the w:gridCol definitions; their count is the table's
// column count.
type TableGrid struct {
	Columns []*RawXML
}

func (t *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tblPr":
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				t.Properties = raw
			case "tblGrid":
				grid, err := parseTableGrid(d, el)
				if err != nil {
					return err
				}
				t.Grid = grid
			case "tr":
				var row TableRow
				if err := d.DecodeElement(&row, &el); err != nil {
					return err
				}
				t.Rows = append(t.Rows, &row)
			default:
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				t.Raw = append(t.Raw, raw)
			}
		case xml.EndElement:
			if el.Name.Local == "tbl" {
				return nil
			}
		}
	}
	return nil
}

func parseTableGrid(d *xml.Decoder, start xml.StartElement) (*TableGrid, error) {
	grid := &TableGrid{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			raw, err := captureElement(d, el)
			if err != nil {
				return nil, err
			}
			grid.Columns = append(grid.Columns, raw)
		case xml.EndElement:
			if el.Name.Local == "tblGrid" {
				return grid, nil
			}
		}
	}
}

func (t *Table) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:tbl>")
	if t.Properties != nil {
		t.Properties.writeXML(buf)
	}
	if t.Grid != nil {
		buf.WriteString("<w:tblGrid>")
		for _, col := range t.Grid.Columns {
			col.writeXML(buf)
		}
		buf.WriteString("</w:tblGrid>")
	}
	for _, row := range t.Rows {
		row.writeXML(buf)
	}
	for _, raw := range t.Raw {
		raw.writeXML(buf)
	}
	buf.WriteString("</w:tbl>")
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the grid column count. Tables without a grid fall
// back to the widest row.
func (t *Table) ColumnCount() int {
	if t.Grid != nil && len(t.Grid.Columns) > 0 {
		return len(t.Grid.Columns)
	}
	max := 0
	for _, row := range t.Rows {
		if len(row.Cells) > max {
			max = len(row.Cells)
		}
	}
	return max
}

// Cell returns the cell at (row, col), or nil when the position is out of
// range. Malformed tables with short rows answer nil rather than panicking.
func (t *Table) Cell(row, col int) *TableCell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	cells := t.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// TableRow is one w:tr: properties pass through raw, cells are modeled.
type TableRow struct {
	Properties *RawXML
	Cells      []*TableCell
	Raw        []*RawXML
}

func (r *TableRow) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "trPr":
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				r.Properties = raw
			case "tc":
				var cell TableCell
				if err := d.DecodeElement(&cell, &el); err != nil {
					return err
				}
				r.Cells = append(r.Cells, &cell)
			default:
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				r.Raw = append(r.Raw, raw)
			}
		case xml.EndElement:
			if el.Name.Local == "tr" {
				return nil
			}
		}
	}
	return nil
}

func (r *TableRow) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:tr>")
	if r.Properties != nil {
		r.Properties.writeXML(buf)
	}
	for _, cell := range r.Cells {
		cell.writeXML(buf)
	}
	for _, raw := range r.Raw {
		raw.writeXML(buf)
	}
	buf.WriteString("</w:tr>")
}

// TableCell is one w:tc. Children keeps cell content in order: paragraphs
// are modeled, nested tables and other content pass through raw and stay
// out of reach of the editing operations, matching how cells are walked
// for text.
type TableCell struct {
	Properties *RawXML
	Children   []BodyElement
}

func (c *TableCell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tcPr":
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				c.Properties = raw
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &el); err != nil {
					return err
				}
				c.Children = append(c.Children, &para)
			default:
				raw, err := captureElement(d, el)
				if err != nil {
					return err
				}
				c.Children = append(c.Children, raw)
			}
		case xml.EndElement:
			if el.Name.Local == "tc" {
				return nil
			}
		}
	}
	return nil
}

func (c *TableCell) writeXML(buf *bytes.Buffer) {
	buf.WriteString("<w:tc>")
	if c.Properties != nil {
		c.Properties.writeXML(buf)
	}
	for _, child := range c.Children {
		switch el := child.(type) {
		case *Paragraph:
			el.writeXML(buf)
		case *RawXML:
			el.writeXML(buf)
		}
	}
	buf.WriteString("</w:tc>")
}

// Paragraphs returns the cell's direct paragraphs in order.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, child := range c.Children {
		if p, ok := child.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Text returns the cell's paragraphs' texts joined with newlines.
func (c *TableCell) Text() string {
	var texts []string
	for _, p := range c.Paragraphs() {
		texts = append(texts, p.Text())
	}
	return strings.Join(texts, "\n")
}
