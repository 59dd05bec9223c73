package wordedit

import (
	"github.com/paperwheel/go-wordedit/pkg/wordedit/ooxml"
)

// Normalize merges adjacent runs whose formatting is equivalent and drops
// runs with no content, throughout the body and every table cell. Word
// fragments runs aggressively (spell-check state, revision saves), which
// bloats documents and forces cross-run replacement fallbacks more often
// than the text warrants. Returns the number of runs eliminated.
// Paragraph text is preserved exactly.
func (d *Document) Normalize() int {
	removed := 0

	for _, p := range d.Paragraphs() {
		removed += normalizeParagraph(p)
	}

	for _, t := range d.Tables() {
		for _, row := range t.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs() {
					removed += normalizeParagraph(p)
				}
			}
		}
	}

	if removed > 0 {
		logger := Logger()
		logger.Debug().Int("removed", removed).Msg("runs normalized")
	}
	return removed
}

// normalizeParagraph rewrites a paragraph's direct children. Only runs
// holding nothing but plain text merge; breaks, tabs and raw content
// (drawings, fields) keep their run intact. Hyperlinks and other
// non-run children are boundaries: runs never merge across them.
func normalizeParagraph(p *ooxml.Paragraph) int {
	removed := 0
	children := p.Children[:0]
	var prev *ooxml.Run

	for _, child := range p.Children {
		run, ok := child.(*ooxml.Run)
		if !ok {
			children = append(children, child)
			prev = nil
			continue
		}

		if run.HasOnlyText() && run.Text() == "" {
			removed++
			continue
		}

		if prev != nil && textOnly(prev) && textOnly(run) && prev.Properties.Equal(run.Properties) {
			prev.SetText(prev.Text() + run.Text())
			removed++
			continue
		}

		children = append(children, run)
		prev = run
	}

	p.Children = children
	return removed
}

// textOnly reports whether every child of the run is a plain text node.
func textOnly(r *ooxml.Run) bool {
	for _, child := range r.Children {
		if _, ok := child.(*ooxml.Text); !ok {
			return false
		}
	}
	return true
}
