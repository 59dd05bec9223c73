package ooxml

import "testing"

const sampleStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/></w:style>
<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/></w:style>
</w:styles>`

func TestParseStylesheet(t *testing.T) {
	sheet, err := ParseStylesheet([]byte(sampleStylesXML))
	if err != nil {
		t.Fatalf("ParseStylesheet failed: %v", err)
	}
	if len(sheet.Styles) != 5 {
		t.Fatalf("Expected 5 styles, got %d", len(sheet.Styles))
	}
	if !sheet.Styles[0].Default {
		t.Error("Normal should be marked default")
	}
	if sheet.Styles[4].Type != "table" {
		t.Errorf("Expected table style type, got %q", sheet.Styles[4].Type)
	}
}

func TestStylesheetNameOf(t *testing.T) {
	sheet, err := ParseStylesheet([]byte(sampleStylesXML))
	if err != nil {
		t.Fatalf("ParseStylesheet failed: %v", err)
	}

	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "plain name", id: "Normal", expected: "Normal"},
		{name: "builtin alias capitalized", id: "Heading1", expected: "Heading 1"},
		{name: "non-paragraph style", id: "TableGrid", expected: "Table Grid"},
		{name: "unknown id", id: "Nope", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheet.NameOf(tt.id); got != tt.expected {
				t.Errorf("NameOf(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}

func TestStylesheetIDOf(t *testing.T) {
	sheet, err := ParseStylesheet([]byte(sampleStylesXML))
	if err != nil {
		t.Fatalf("ParseStylesheet failed: %v", err)
	}

	tests := []struct {
		name     string
		lookup   string
		expected string
	}{
		{name: "user-facing builtin name", lookup: "Heading 1", expected: "Heading1"},
		{name: "stored builtin name", lookup: "heading 2", expected: "Heading2"},
		{name: "plain name", lookup: "Normal", expected: "Normal"},
		{name: "unknown name", lookup: "Flashy", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheet.IDOf(tt.lookup); got != tt.expected {
				t.Errorf("IDOf(%q) = %q, want %q", tt.lookup, got, tt.expected)
			}
		})
	}
}

func TestStylesheetNilReceiver(t *testing.T) {
	var sheet *Stylesheet
	if got := sheet.NameOf("Normal"); got != "" {
		t.Errorf("Nil stylesheet NameOf should be empty, got %q", got)
	}
	if got := sheet.IDOf("Normal"); got != "" {
		t.Errorf("Nil stylesheet IDOf should be empty, got %q", got)
	}
}
