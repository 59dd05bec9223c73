package ooxml

import (
	"encoding/xml"

	"gitlab.com/tozd/go/errors"
)

// Stylesheet is the parsed word/styles.xml. Only identity is modeled: the
// mapping between style IDs (what document.xml references) and display
// names (what users and the insertion operations speak).
type Stylesheet struct {
	Styles []StyleDef
}

// StyleDef is one w:style entry.
type StyleDef struct {
	Type    string
	ID      string
	Name    string
	Default bool
}

// ParseStylesheet parses a word/styles.xml payload.
func ParseStylesheet(data []byte) (*Stylesheet, error) {
	var raw struct {
		Styles []struct {
			Type    string `xml:"type,attr"`
			StyleID string `xml:"styleId,attr"`
			Default string `xml:"default,attr"`
			Name    struct {
				Val string `xml:"val,attr"`
			} `xml:"name"`
		} `xml:"style"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("parsing styles: %w", err)
	}

	sheet := &Stylesheet{}
	for _, s := range raw.Styles {
		sheet.Styles = append(sheet.Styles, StyleDef{
			Type:    s.Type,
			ID:      s.StyleID,
			Name:    s.Name.Val,
			Default: s.Default == "1" || s.Default == "true",
		})
	}
	return sheet, nil
}

// NameOf resolves a style ID to its display name, or "" when unknown.
// Builtin names are reported in their user-facing form ("Heading 1", not
// the stored "heading 1").
func (s *Stylesheet) NameOf(id string) string {
	if s == nil {
		return ""
	}
	for _, def := range s.Styles {
		if def.ID == id {
			return displayName(def.Name)
		}
	}
	return ""
}

// IDOf resolves a display name to its style ID, or "" when unknown. Either
// the stored or the user-facing form of a builtin name matches.
func (s *Stylesheet) IDOf(name string) string {
	if s == nil {
		return ""
	}
	for _, def := range s.Styles {
		if def.Name == name || displayName(def.Name) == name {
			return def.ID
		}
	}
	return ""
}

// Word stores builtin style names in a lowercase internal form while every
// user-facing surface shows the capitalized one.
var builtinDisplayNames = map[string]string{
	"heading 1": "Heading 1",
	"heading 2": "Heading 2",
	"heading 3": "Heading 3",
	"heading 4": "Heading 4",
	"heading 5": "Heading 5",
	"heading 6": "Heading 6",
	"heading 7": "Heading 7",
	"heading 8": "Heading 8",
	"heading 9": "Heading 9",
	"header":    "Header",
	"footer":    "Footer",
}

func displayName(stored string) string {
	if ui, ok := builtinDisplayNames[stored]; ok {
		return ui
	}
	return stored
}
