package wordedit

import (
	"strings"
)

// Preview limits applied by Structure.
const (
	paragraphPreviewLimit = 100
	cellPreviewLimit      = 20
	previewRows           = 3
	previewColumns        = 3
)

// defaultStyleName is reported for paragraphs without a resolvable style.
const defaultStyleName = "Normal"

// missingCellText marks preview cells a ragged table row does not have.
const missingCellText = "N/A"

// Text returns the document's readable text: every top-level paragraph,
// then every table-cell paragraph (tables in document order, rows in
// order, cells in order), joined with newlines.
func (d *Document) Text() string {
	var parts []string

	for _, p := range d.Paragraphs() {
		parts = append(parts, p.Text())
	}

	for _, t := range d.Tables() {
		for _, row := range t.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs() {
					parts = append(parts, p.Text())
				}
			}
		}
	}

	return strings.Join(parts, "\n")
}

// ParagraphInfo describes one top-level paragraph in a structure listing.
type ParagraphInfo struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Style string `json:"style"`
}

// TableInfo describes one top-level table in a structure listing. Preview
// holds up to the first 3x3 cells of text.
type TableInfo struct {
	Index   int        `json:"index"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Preview [][]string `json:"preview"`
}

// DocumentStructure is a compact outline of a document's content.
type DocumentStructure struct {
	Paragraphs []ParagraphInfo `json:"paragraphs"`
	Tables     []TableInfo     `json:"tables"`
}

// Structure returns an outline of the document: per-paragraph text
// previews with resolved style names, and per-table shape summaries with
// a small cell-text sample.
func (d *Document) Structure() DocumentStructure {
	structure := DocumentStructure{
		Paragraphs: []ParagraphInfo{},
		Tables:     []TableInfo{},
	}
	styles := d.stylesheet()

	for i, p := range d.Paragraphs() {
		name := styles.NameOf(p.StyleID())
		if name == "" {
			name = defaultStyleName
		}
		structure.Paragraphs = append(structure.Paragraphs, ParagraphInfo{
			Index: i,
			Text:  truncate(p.Text(), paragraphPreviewLimit),
			Style: name,
		})
	}

	for i, t := range d.Tables() {
		info := TableInfo{
			Index:   i,
			Rows:    t.RowCount(),
			Columns: t.ColumnCount(),
		}

		maxRows := info.Rows
		if maxRows > previewRows {
			maxRows = previewRows
		}
		maxCols := info.Columns
		if maxCols > previewColumns {
			maxCols = previewColumns
		}

		for row := 0; row < maxRows; row++ {
			rowData := make([]string, 0, maxCols)
			for col := 0; col < maxCols; col++ {
				cell := t.Cell(row, col)
				if cell == nil {
					// Ragged rows are legal markup.
					rowData = append(rowData, missingCellText)
					continue
				}
				rowData = append(rowData, truncate(cell.Text(), cellPreviewLimit))
			}
			info.Preview = append(info.Preview, rowData)
		}

		structure.Tables = append(structure.Tables, info)
	}

	return structure
}

// truncate shortens s to at most limit runes, appending "..." when
// anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
