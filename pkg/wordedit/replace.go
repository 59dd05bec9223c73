package wordedit

import (
	"strings"

	"github.com/paperwheel/go-wordedit/pkg/wordedit/ooxml"
)

// ReplaceAll replaces every occurrence of old with new throughout the
// document, including table cells, and returns the number of occurrences
// replaced. Occurrences confined to a single run keep that run's
// formatting. Occurrences split across runs force the paragraph down to
// a single run carrying the first run's formatting; the mixed styling of
// the split span cannot be reattached to the substituted text.
//
// The document is mutated in memory only; persist with Save or SaveTo.
func (d *Document) ReplaceAll(old, new string) int {
	if old == "" {
		return 0
	}

	count := 0

	for _, p := range d.Paragraphs() {
		count += replaceInParagraph(p, old, new)
	}

	for _, t := range d.Tables() {
		for _, row := range t.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs() {
					count += replaceInParagraph(p, old, new)
				}
			}
		}
	}

	if count > 0 {
		logger := Logger()
		logger.Debug().Str("old", old).Str("new", new).Int("count", count).Msg("text replaced")
	}
	return count
}

// replaceInParagraph applies the two-pass replacement to one paragraph.
// Counting rule: run-local occurrences are tallied against each run's
// text before that run is rewritten; cross-run occurrences are tallied
// against the paragraph text left after the run-local pass. Every
// occurrence present before the call counts exactly once.
func replaceInParagraph(p *ooxml.Paragraph, old, new string) int {
	total := strings.Count(p.Text(), old)
	if total == 0 {
		return 0
	}

	// Run-local pass: occurrences contained in a single run are
	// replaced in place, keeping that run's formatting.
	count := 0
	for _, run := range p.Runs() {
		text := run.Text()
		if n := strings.Count(text, old); n > 0 {
			run.SetText(strings.ReplaceAll(text, old, new))
			count += n
		}
	}

	// When the run-local tally accounts for every occurrence the
	// paragraph held, it is done. Comparing tallies rather than
	// re-scanning the rewritten text keeps a new that contains old
	// from triggering a second substitution of its own output.
	if count == total {
		return count
	}

	// At least one occurrence straddles run boundaries. Substitute on
	// the remaining paragraph text and collapse to a single run.
	remaining := p.Text()
	n := strings.Count(remaining, old)
	p.CollapseToText(strings.ReplaceAll(remaining, old, new))
	count += n

	logger := Logger()
	logger.Debug().Int("occurrences", n).Msg("cross-run occurrences collapsed paragraph formatting")
	return count
}
