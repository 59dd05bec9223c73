package ooxml

import (
	"strings"
	"testing"
)

func TestParagraphText(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected string
	}{
		{
			name:     "single run",
			xml:      `<w:p><w:r><w:t>Hello</w:t></w:r></w:p>`,
			expected: "Hello",
		},
		{
			name:     "multiple runs concatenate in order",
			xml:      `<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t xml:space="preserve"> World</w:t></w:r></w:p>`,
			expected: "Hello World",
		},
		{
			name:     "hyperlink text included",
			xml:      `<w:p><w:r><w:t>See </w:t></w:r><w:hyperlink r:id="rId4"><w:r><w:t>the site</w:t></w:r></w:hyperlink><w:r><w:t> now</w:t></w:r></w:p>`,
			expected: "See the site now",
		},
		{
			name:     "break renders as newline",
			xml:      `<w:p><w:r><w:t>one</w:t><w:br/><w:t>two</w:t></w:r></w:p>`,
			expected: "one\ntwo",
		},
		{
			name:     "tab renders as tab",
			xml:      `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r></w:p>`,
			expected: "a\tb",
		},
		{
			name:     "empty paragraph",
			xml:      `<w:p/>`,
			expected: "",
		},
		{
			name:     "bookmarks contribute nothing",
			xml:      `<w:p><w:bookmarkStart w:id="1" w:name="b"/><w:r><w:t>text</w:t></w:r><w:bookmarkEnd w:id="1"/></w:p>`,
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseParagraph(t, tt.xml)
			if got := p.Text(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// parseParagraph decodes a single w:p fragment by wrapping it in a
// document shell.
func parseParagraph(t *testing.T, fragment string) *Paragraph {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>` +
			fragment + `</w:body></w:document>`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	paras := doc.Body.Paragraphs()
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	return paras[0]
}

func TestParagraphRunsAliasing(t *testing.T) {
	p := parseParagraph(t, `<w:p><w:r><w:t>aaa</w:t></w:r><w:hyperlink r:id="rId1"><w:r><w:t>bbb</w:t></w:r></w:hyperlink></w:p>`)

	runs := p.Runs()
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	runs[1].SetText("ccc")
	if got := p.Text(); got != "aaaccc" {
		t.Errorf("Mutation through Runs() not visible: got %q", got)
	}
}

func TestCollapseToText(t *testing.T) {
	t.Run("keeps first run formatting", func(t *testing.T) {
		p := parseParagraph(t, `<w:p><w:r><w:rPr><w:b></w:b></w:rPr><w:t>f</w:t></w:r><w:r><w:rPr><w:i></w:i></w:rPr><w:t>oo bar</w:t></w:r></w:p>`)

		p.CollapseToText("bar bar")

		if len(p.Children) != 1 {
			t.Fatalf("Expected single child after collapse, got %d", len(p.Children))
		}
		run, ok := p.Children[0].(*Run)
		if !ok {
			t.Fatal("Surviving child is not a run")
		}
		if run.Properties == nil || string(run.Properties.Markup) != "<w:b></w:b>" {
			t.Errorf("Surviving run should keep first run's properties, got %v", run.Properties)
		}
		if got := p.Text(); got != "bar bar" {
			t.Errorf("Expected 'bar bar', got %q", got)
		}
	})

	t.Run("no runs creates a bare one", func(t *testing.T) {
		p := &Paragraph{}
		p.CollapseToText("fresh")
		if got := p.Text(); got != "fresh" {
			t.Errorf("Expected 'fresh', got %q", got)
		}
	})

	t.Run("hyperlinks are removed", func(t *testing.T) {
		p := parseParagraph(t, `<w:p><w:hyperlink r:id="rId1"><w:r><w:t>linked</w:t></w:r></w:hyperlink></w:p>`)
		p.CollapseToText("plain")
		if len(p.Children) != 1 {
			t.Fatalf("Expected single child, got %d", len(p.Children))
		}
		if _, ok := p.Children[0].(*Run); !ok {
			t.Error("Expected the survivor to be a run")
		}
		if got := p.Text(); got != "plain" {
			t.Errorf("Expected 'plain', got %q", got)
		}
	})
}

func TestParagraphStyle(t *testing.T) {
	p := parseParagraph(t, `<w:p><w:pPr><w:pStyle w:val="Heading2"/><w:jc w:val="center"/></w:pPr><w:r><w:t>x</w:t></w:r></w:p>`)

	if got := p.StyleID(); got != "Heading2" {
		t.Errorf("Expected Heading2, got %q", got)
	}
	if len(p.Properties.Raw) != 1 || p.Properties.Raw[0].Name.Local != "jc" {
		t.Error("Non-style properties should be preserved raw")
	}

	p.SetStyleID("Normal")
	if got := p.StyleID(); got != "Normal" {
		t.Errorf("Expected Normal after SetStyleID, got %q", got)
	}

	bare := &Paragraph{}
	bare.SetStyleID("Quote")
	if got := bare.StyleID(); got != "Quote" {
		t.Errorf("SetStyleID on bare paragraph: expected Quote, got %q", got)
	}
}

func TestHasSectionBreak(t *testing.T) {
	p := parseParagraph(t, `<w:p><w:pPr><w:sectPr><w:pgSz w:w="1"/></w:sectPr></w:pPr></w:p>`)
	if !p.Properties.HasSectionBreak() {
		t.Error("Expected section break to be detected")
	}

	plain := parseParagraph(t, `<w:p><w:pPr><w:jc w:val="left"/></w:pPr></w:p>`)
	if plain.Properties.HasSectionBreak() {
		t.Error("Unexpected section break")
	}
}
