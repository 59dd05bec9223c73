package wordedit

import (
	"fmt"
	"strings"

	"github.com/paperwheel/go-wordedit/pkg/wordedit/ooxml"
)

// defaultHeaderStyle is used by header insertion when no style is given.
const defaultHeaderStyle = "Heading 1"

// Position selects which side of the anchor paragraph new content lands
// on.
type Position int

const (
	// After inserts following the anchor paragraph. It is the zero value
	// and the default.
	After Position = iota
	// Before inserts ahead of the anchor paragraph.
	Before
)

func (p Position) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// ParsePosition converts a user-supplied position string. Empty selects
// After; anything besides "before" or "after" (case-insensitive) yields
// *InvalidPositionError.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(s) {
	case "", "after":
		return After, nil
	case "before":
		return Before, nil
	}
	return After, NewInvalidPositionError(s)
}

// resolveStyle maps a style name to its identifier through the
// stylesheet. An unknown name yields *StyleNotFoundError listing the
// paragraph styles the document does define.
func (d *Document) resolveStyle(name string) (string, error) {
	sheet := d.stylesheet()
	if id := sheet.IDOf(name); id != "" {
		return id, nil
	}

	var available []string
	for _, s := range sheet.Styles {
		if s.Type == "paragraph" {
			available = append(available, sheet.NameOf(s.ID))
		}
	}
	return "", NewStyleNotFoundError(name, available)
}

// styleNameOf reports the display name of a paragraph's style, falling
// back to the raw identifier and then to the default name.
func (d *Document) styleNameOf(p *ooxml.Paragraph) string {
	id := p.StyleID()
	if id == "" {
		return defaultStyleName
	}
	if name := d.stylesheet().NameOf(id); name != "" {
		return name
	}
	return id
}

// InsertHeader inserts a heading paragraph with the given title relative
// to the first paragraph containing target. An empty style selects
// "Heading 1". It reports whether an anchor was found; the document is
// mutated in memory only. The anchor scan runs first, so a missing
// anchor is reported before an unknown style.
func (d *Document) InsertHeader(target, title string, pos Position, style string) (bool, error) {
	anchor, found := d.findAnchor(target)
	if !found {
		return false, nil
	}

	if style == "" {
		style = defaultHeaderStyle
	}
	styleID, err := d.resolveStyle(style)
	if err != nil {
		return false, err
	}

	p := ooxml.NewParagraph(title, styleID)
	d.document.Body.InsertRelative(anchor, p, pos == Before)

	logger := Logger()
	logger.Debug().Str("title", title).Str("style", style).Stringer("position", pos).Msg("header inserted")
	return true, nil
}

// InsertParagraph inserts a plain paragraph with the given text relative
// to the first paragraph containing target. An explicit style is
// resolved by name; an empty style inherits the anchor paragraph's
// style. It reports whether an anchor was found; the document is mutated
// in memory only.
func (d *Document) InsertParagraph(target, text string, pos Position, style string) (bool, error) {
	anchor, found := d.findAnchor(target)
	if !found {
		return false, nil
	}

	var styleID string
	if style != "" {
		id, err := d.resolveStyle(style)
		if err != nil {
			return false, err
		}
		styleID = id
	} else {
		styleID = anchor.StyleID()
	}

	p := ooxml.NewParagraph(text, styleID)
	d.document.Body.InsertRelative(anchor, p, pos == Before)

	logger := Logger()
	logger.Debug().Str("text", text).Str("styleID", styleID).Stringer("position", pos).Msg("paragraph inserted")
	return true, nil
}

// InsertHeaderNearText opens the document at path, inserts a heading near
// the first paragraph containing target and saves it in place. The
// returned status describes the outcome; an absent target is reported on
// the status channel with a nil error and leaves the file untouched.
func InsertHeaderNearText(path, target, title string, pos Position, style string) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}

	if style == "" {
		style = defaultHeaderStyle
	}
	found, err := doc.InsertHeader(target, title, pos, style)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Target text '%s' not found in document.", target), nil
	}

	if err := doc.Save(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Header '%s' (style: %s) inserted %s paragraph containing '%s'.", title, style, pos, target), nil
}

// InsertParagraphNearText opens the document at path, inserts a paragraph
// near the first paragraph containing target and saves it in place. The
// status reports the style actually applied: the explicit one, or the
// anchor's when inherited.
func InsertParagraphNearText(path, target, text string, pos Position, style string) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}

	styleName := style
	if style == "" {
		if anchor, found := doc.findAnchor(target); found {
			styleName = doc.styleNameOf(anchor)
		}
	}

	found, err := doc.InsertParagraph(target, text, pos, style)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Target text '%s' not found in document.", target), nil
	}

	if err := doc.Save(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Line/paragraph inserted %s paragraph containing '%s' with style '%s'.", pos, target, styleName), nil
}
