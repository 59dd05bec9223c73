package wordedit

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"os"

	"gitlab.com/tozd/go/errors"
)

// Well-known part names of a word-processing package.
const (
	documentPartName  = "word/document.xml"
	corePropsPartName = "docProps/core.xml"
	stylesPartName    = "word/styles.xml"
)

// Package provides access to the parts of an OOXML zip archive. The
// archive bytes are held in memory; no file handle stays open.
type Package struct {
	reader *zip.Reader
	parts  map[string]*zip.File
}

// NewPackage opens an OOXML package held in memory.
func NewPackage(data []byte) (*Package, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Errorf("failed to read zip archive: %w", err)
	}

	pkg := &Package{
		reader: zipReader,
		parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		pkg.parts[file.Name] = file
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := pkg.parts[documentPartName]; !ok {
		return nil, errors.New("not a valid DOCX file: missing word/document.xml")
	}

	return pkg, nil
}

// OpenPackage opens an OOXML package from a file path. A missing file
// yields *NotExistError; anything else that goes wrong yields
// *DocumentError.
func OpenPackage(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotExistError(path)
		}
		return nil, NewDocumentError("open", path, err)
	}

	pkg, err := NewPackage(data)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return pkg, nil
}

// Part returns the decompressed content of a named package entry.
func (p *Package) Part(name string) ([]byte, error) {
	file, ok := p.parts[name]
	if !ok {
		return nil, NewPartNotFoundError(name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, errors.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Errorf("failed to read part %s: %w", name, err)
	}

	return content, nil
}

// HasPart reports whether the package contains the named entry.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// PartNames returns the names of all package entries in archive order.
func (p *Package) PartNames() []string {
	names := make([]string, 0, len(p.reader.File))
	for _, file := range p.reader.File {
		names = append(names, file.Name)
	}
	return names
}

// DocumentXML returns the contents of word/document.xml.
func (p *Package) DocumentXML() ([]byte, error) {
	return p.Part(documentPartName)
}

// WriteTo rebuilds the archive into w, copying every entry as-is except
// those named in replaced, which are written from the provided bytes.
func (p *Package) WriteTo(w io.Writer, replaced map[string][]byte) error {
	zw := zip.NewWriter(w)

	for _, file := range p.reader.File {
		fw, err := zw.Create(file.Name)
		if err != nil {
			return errors.Errorf("failed to create %s: %w", file.Name, err)
		}

		if content, ok := replaced[file.Name]; ok {
			if _, err := fw.Write(content); err != nil {
				return errors.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		fr, err := file.Open()
		if err != nil {
			return errors.Errorf("failed to open %s: %w", file.Name, err)
		}
		_, err = io.Copy(fw, fr)
		fr.Close()
		if err != nil {
			return errors.Errorf("failed to copy %s: %w", file.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Errorf("failed to close zip writer: %w", err)
	}
	return nil
}
