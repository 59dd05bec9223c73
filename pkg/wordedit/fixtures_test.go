package wordedit

import (
	"archive/zip"
	"bytes"
	"io"
)

// Minimal but well-formed package skeleton shared by the test fixtures.
const (
	testContentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
  <w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/></w:style>
</w:styles>`

	testCorePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>Quarterly Report</dc:title>
  <dc:creator>Dana Reeve</dc:creator>
  <dc:subject>Finance</dc:subject>
  <cp:keywords>q3,finance</cp:keywords>
  <cp:lastModifiedBy>Sam Ortiz</cp:lastModifiedBy>
  <cp:revision>4</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T09:15:00Z</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">2024-06-10T17:30:00Z</dcterms:modified>
</cp:coreProperties>`
)

// wrapDocumentXML wraps a body fragment in the document shell the
// fixtures share.
func wrapDocumentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<w:body>` + body + `</w:body></w:document>`
}

// buildDocxBytes assembles an in-memory .docx from a document body
// fragment plus optional extra parts (styles, core properties, anything).
func buildDocxBytes(body string, extra map[string]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	write := func(name, content string) {
		f, _ := w.Create(name)
		io.WriteString(f, content)
	}

	write("[Content_Types].xml", testContentTypesXML)
	write("_rels/.rels", testRelsXML)
	write("word/document.xml", wrapDocumentXML(body))
	for name, content := range extra {
		write(name, content)
	}

	w.Close()
	return buf.Bytes()
}

func para(text string) string {
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func styledPara(styleID, text string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + styleID + `"/></w:pPr><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

// simpleTable builds a table from rows of cell texts, with a grid sized
// to the widest row.
func simpleTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var sb bytes.Buffer
	sb.WriteString(`<w:tbl><w:tblGrid>`)
	for i := 0; i < width; i++ {
		sb.WriteString(`<w:gridCol w:w="2400"/>`)
	}
	sb.WriteString(`</w:tblGrid>`)
	for _, row := range rows {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row {
			sb.WriteString(`<w:tc>` + para(cell) + `</w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
	return sb.String()
}

func paragraphTexts(doc *Document) []string {
	paragraphs := doc.Paragraphs()
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text()
	}
	return texts
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
