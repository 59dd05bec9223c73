package ooxml

import (
	"bytes"
	"testing"
)

func TestRunSetText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		children int
	}{
		{name: "plain", text: "hello", children: 1},
		{name: "embedded newline", text: "a\nb", children: 3},
		{name: "embedded tab", text: "a\tb", children: 3},
		{name: "mixed", text: "a\nb\tc", children: 5},
		{name: "empty", text: "", children: 0},
		{name: "leading newline", text: "\nx", children: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Run{}
			r.SetText(tt.text)
			if len(r.Children) != tt.children {
				t.Errorf("Expected %d children, got %d", tt.children, len(r.Children))
			}
			if got := r.Text(); got != tt.text {
				t.Errorf("Round trip mismatch: set %q, got %q", tt.text, got)
			}
		})
	}
}

func TestRunSetTextDropsOldContent(t *testing.T) {
	r := &Run{Children: []RunChild{
		&Text{Value: "old"},
		&RawXML{Markup: []byte("<w:drawing></w:drawing>")},
	}}
	r.SetText("new")
	if got := r.Text(); got != "new" {
		t.Errorf("Expected 'new', got %q", got)
	}
	if !r.HasOnlyText() {
		t.Error("SetText should have dropped the drawing")
	}
}

func TestRunWriteXML(t *testing.T) {
	tests := []struct {
		name string
		run  *Run
		want string
	}{
		{
			name: "plain text",
			run:  &Run{Children: []RunChild{&Text{Value: "hi"}}},
			want: "<w:r><w:t>hi</w:t></w:r>",
		},
		{
			name: "trailing space forces preserve",
			run:  &Run{Children: []RunChild{&Text{Value: "hi "}}},
			want: `<w:r><w:t xml:space="preserve">hi </w:t></w:r>`,
		},
		{
			name: "escapes markup characters",
			run:  &Run{Children: []RunChild{&Text{Value: "a<b&c"}}},
			want: "<w:r><w:t>a&lt;b&amp;c</w:t></w:r>",
		},
		{
			name: "page break keeps its type",
			run:  &Run{Children: []RunChild{&Break{Type: "page"}}},
			want: `<w:r><w:br w:type="page"/></w:r>`,
		},
		{
			name: "properties come first",
			run: &Run{
				Properties: &RunProperties{Markup: []byte("<w:i></w:i>")},
				Children:   []RunChild{&Text{Value: "x"}},
			},
			want: "<w:r><w:rPr><w:i></w:i></w:rPr><w:t>x</w:t></w:r>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.run.writeXML(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRunPropertiesEqual(t *testing.T) {
	bold := &RunProperties{Markup: []byte("<w:b></w:b>")}
	bold2 := &RunProperties{Markup: []byte("<w:b></w:b>")}
	italic := &RunProperties{Markup: []byte("<w:i></w:i>")}

	if !bold.Equal(bold2) {
		t.Error("Identical markup should compare equal")
	}
	if bold.Equal(italic) {
		t.Error("Different markup should not compare equal")
	}

	var nilProps *RunProperties
	empty := &RunProperties{}
	if !nilProps.Equal(empty) {
		t.Error("Nil and empty properties should compare equal")
	}
	if nilProps.Equal(bold) {
		t.Error("Nil should not equal bold")
	}
}

func TestRunPropertiesClone(t *testing.T) {
	orig := &RunProperties{Markup: []byte("<w:b></w:b>")}
	clone := orig.Clone()
	clone.Markup[1] = 'x'
	if string(orig.Markup) != "<w:b></w:b>" {
		t.Error("Clone shares backing storage with the original")
	}

	var nilProps *RunProperties
	if nilProps.Clone() != nil {
		t.Error("Cloning nil should stay nil")
	}
}
