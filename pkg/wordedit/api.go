// Package wordedit reads and edits Word-processor documents in the OOXML
// package format (.docx): metadata, text extraction, structural previews,
// find and replace across formatted runs, raw markup access, and anchored
// paragraph insertion.
//
// Basic Usage:
//
//	// Inspect a document
//	props, err := wordedit.GetDocumentProperties("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(props.Title, props.WordCount)
//
//	// Replace text in place, preserving run formatting where possible
//	count, err := wordedit.ReplaceInFile("report.docx", "DRAFT", "FINAL")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("replaced %d occurrences\n", count)
//
//	// Or hold a document open across several edits
//	doc, err := wordedit.Open("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.ReplaceAll("2025", "2026")
//	doc.Normalize()
//	if err := doc.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Replacement handles text fragmented across styled runs: occurrences
// inside a single run are rewritten in place, occurrences spanning runs
// collapse their paragraph to uniform formatting. Every public function
// returns errors rather than panicking; a search target that simply is
// not there is reported as a status, not an error.
package wordedit

// GetDocumentProperties reads the metadata and statistics of the document
// at path.
func GetDocumentProperties(path string) (DocumentProperties, error) {
	doc, err := Open(path)
	if err != nil {
		return DocumentProperties{}, err
	}
	return doc.Properties(), nil
}

// ExtractText returns all readable text of the document at path,
// newline-joined: body paragraphs first, then table cells.
func ExtractText(path string) (string, error) {
	doc, err := Open(path)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// GetDocumentStructure returns an outline of the document at path.
func GetDocumentStructure(path string) (DocumentStructure, error) {
	doc, err := Open(path)
	if err != nil {
		return DocumentStructure{}, err
	}
	return doc.Structure(), nil
}

// FindParagraphsInFile returns the indices of paragraphs in the document
// at path whose text matches.
func FindParagraphsInFile(path, text string, partial bool) ([]int, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return doc.FindParagraphs(text, partial), nil
}

// ReplaceInFile opens the document at path, replaces old with new and
// saves it in place. The file is rewritten only when at least one
// occurrence was replaced.
func ReplaceInFile(path, old, new string) (int, error) {
	doc, err := Open(path)
	if err != nil {
		return 0, err
	}

	count := doc.ReplaceAll(old, new)
	if count == 0 {
		return 0, nil
	}

	if err := doc.Save(); err != nil {
		return 0, err
	}
	return count, nil
}

// NormalizeFile opens the document at path, merges equivalently formatted
// adjacent runs and saves it in place. The file is rewritten only when at
// least one run was eliminated.
func NormalizeFile(path string) (int, error) {
	doc, err := Open(path)
	if err != nil {
		return 0, err
	}

	removed := doc.Normalize()
	if removed == 0 {
		return 0, nil
	}

	if err := doc.Save(); err != nil {
		return 0, err
	}
	return removed, nil
}

// GetDocumentXML returns the raw UTF-8 contents of word/document.xml of
// the document at path, without parsing it.
func GetDocumentXML(path string) (string, error) {
	pkg, err := OpenPackage(path)
	if err != nil {
		return "", err
	}

	data, err := pkg.DocumentXML()
	if err != nil {
		return "", NewDocumentError("extract", path, err)
	}
	return string(data), nil
}

// ListParts returns the entry names of the package at path, in archive
// order.
func ListParts(path string) ([]string, error) {
	pkg, err := OpenPackage(path)
	if err != nil {
		return nil, err
	}
	return pkg.PartNames(), nil
}

// GetPart returns the decompressed content of one named entry of the
// package at path.
func GetPart(path, name string) ([]byte, error) {
	pkg, err := OpenPackage(path)
	if err != nil {
		return nil, err
	}

	data, err := pkg.Part(name)
	if err != nil {
		return nil, err
	}
	return data, nil
}
