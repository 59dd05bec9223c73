package wordedit

import (
	"strings"

	"github.com/paperwheel/go-wordedit/pkg/wordedit/ooxml"
)

// FindParagraphs returns the indices of top-level paragraphs whose text
// matches. partial selects substring containment over exact equality.
// No matches yield a nil slice, never an error.
func (d *Document) FindParagraphs(text string, partial bool) []int {
	var matching []int

	for i, p := range d.Paragraphs() {
		paraText := p.Text()
		if partial && strings.Contains(paraText, text) {
			matching = append(matching, i)
		} else if !partial && paraText == text {
			matching = append(matching, i)
		}
	}

	return matching
}

// findAnchor returns the first top-level paragraph whose text contains
// target.
func (d *Document) findAnchor(target string) (*ooxml.Paragraph, bool) {
	for _, p := range d.Paragraphs() {
		if strings.Contains(p.Text(), target) {
			return p, true
		}
	}
	return nil, false
}
