package wordedit

import (
	"bytes"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"

	"github.com/paperwheel/go-wordedit/pkg/wordedit/ooxml"
)

// Document is an open word-processing document: the backing package, the
// parsed body, and lazily parsed metadata parts. Mutations happen in
// memory; Save, SaveTo or Write persist them.
type Document struct {
	pkg      *Package
	document *ooxml.Document
	path     string

	coreProps *ooxml.CoreProperties
	styles    *ooxml.Stylesheet
}

// Open loads the document at path. A missing file yields *NotExistError;
// any archive or markup failure yields *DocumentError. Every call reads
// the file fresh; nothing is cached across calls.
func Open(path string) (*Document, error) {
	pkg, err := OpenPackage(path)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg, path)
}

// OpenBytes loads a document held in memory.
func OpenBytes(data []byte) (*Document, error) {
	pkg, err := NewPackage(data)
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}
	return fromPackage(pkg, "")
}

func fromPackage(pkg *Package, path string) (*Document, error) {
	docXML, err := pkg.DocumentXML()
	if err != nil {
		return nil, NewDocumentError("extract", path, err)
	}

	parsed, err := ooxml.ParseDocument(bytes.NewReader(docXML))
	if err != nil {
		return nil, NewDocumentError("parse", path, err)
	}

	logger := Logger()
	logger.Debug().Str("path", path).Int("parts", len(pkg.parts)).Msg("document opened")

	return &Document{
		pkg:      pkg,
		document: parsed,
		path:     path,
	}, nil
}

// Path returns the file path the document was opened from, or "" when it
// was opened from memory.
func (d *Document) Path() string {
	return d.path
}

// Paragraphs returns the top-level body paragraphs in document order.
func (d *Document) Paragraphs() []*ooxml.Paragraph {
	return d.document.Body.Paragraphs()
}

// Tables returns the top-level tables in document order.
func (d *Document) Tables() []*ooxml.Table {
	return d.document.Body.Tables()
}

// PartNames returns the names of all package entries in archive order.
func (d *Document) PartNames() []string {
	return d.pkg.PartNames()
}

// Part returns the decompressed content of a named package entry.
func (d *Document) Part(name string) ([]byte, error) {
	return d.pkg.Part(name)
}

// Styles returns the styles defined in word/styles.xml, in definition
// order. Documents without a stylesheet yield an empty slice.
func (d *Document) Styles() []ooxml.StyleDef {
	return d.stylesheet().Styles
}

// coreProperties parses docProps/core.xml on first use. An absent or
// unreadable part yields zero-valued properties.
func (d *Document) coreProperties() *ooxml.CoreProperties {
	if d.coreProps != nil {
		return d.coreProps
	}

	d.coreProps = &ooxml.CoreProperties{}
	data, err := d.pkg.Part(corePropsPartName)
	if err != nil {
		return d.coreProps
	}
	parsed, err := ooxml.ParseCoreProperties(data)
	if err != nil {
		logger := Logger()
		logger.Warn().Str("path", d.path).Err(err).Msg("core properties unreadable")
		return d.coreProps
	}
	d.coreProps = parsed
	return d.coreProps
}

// stylesheet parses word/styles.xml on first use. An absent or unreadable
// part yields an empty stylesheet.
func (d *Document) stylesheet() *ooxml.Stylesheet {
	if d.styles != nil {
		return d.styles
	}

	d.styles = &ooxml.Stylesheet{}
	data, err := d.pkg.Part(stylesPartName)
	if err != nil {
		return d.styles
	}
	parsed, err := ooxml.ParseStylesheet(data)
	if err != nil {
		logger := Logger()
		logger.Warn().Str("path", d.path).Err(err).Msg("stylesheet unreadable")
		return d.styles
	}
	d.styles = parsed
	return d.styles
}

// Save writes the document back to the path it was opened from.
func (d *Document) Save() error {
	if d.path == "" {
		return NewDocumentError("save", "", errors.New("document was opened from memory; use SaveTo"))
	}
	return d.SaveTo(d.path)
}

// SaveTo writes the document to the named file.
func (d *Document) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewDocumentError("save", path, err)
	}

	logger := Logger()
	logger.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("document saved")
	return nil
}

// Write marshals the body back into word/document.xml and rebuilds the
// archive into w. Every other part passes through untouched.
func (d *Document) Write(w io.Writer) error {
	content := d.document.Marshal()
	if err := d.pkg.WriteTo(w, map[string][]byte{documentPartName: content}); err != nil {
		return NewDocumentError("write", d.path, err)
	}
	return nil
}
