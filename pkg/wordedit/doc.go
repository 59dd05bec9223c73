// Package wordedit provides reading and in-place editing of Microsoft Word
// documents (DOCX).
//
// The package covers the everyday document chores that do not need a full
// word processor: inspecting metadata, extracting text, previewing structure,
// finding and replacing text across formatted runs, and inserting headers or
// paragraphs next to existing content.
//
// # Quick Start
//
// The simplest way to use wordedit is through the package-level functions,
// which open a document, perform one operation, and close it:
//
//	props, err := wordedit.GetDocumentProperties("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(props.Title, props.WordCount)
//
//	text, err := wordedit.ExtractText("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	count, err := wordedit.ReplaceInFile("report.docx", "DRAFT", "FINAL")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Document Sessions
//
// For several edits against the same file, open a Document once and save it
// when done. Nothing touches the file until Save or SaveTo:
//
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
// Documents can also be parsed from memory with OpenBytes and written to any
// io.Writer with Write.
//
// # Find and Replace
//
// Word splits paragraph text into runs, each with its own formatting, and a
// phrase may be split across several runs mid-word. ReplaceAll handles both
// cases: occurrences inside a single run are rewritten in place and keep
// that run's formatting, while occurrences spanning runs are handled by
// collapsing the paragraph text into its first run. The return value counts
// every replaced occurrence exactly once.
//
// # Anchored Insertion
//
// InsertHeader and InsertParagraph splice a new paragraph before or after
// the first paragraph containing an anchor text:
//
//	found, err := doc.InsertHeader("Budget", "Financial Summary", wordedit.Before, "Heading 1")
//
// Styles are validated against the document's own stylesheet; built-in
// display names like "Heading 1" and their stored forms like "heading 1"
// both resolve. InsertParagraph with an empty style inherits the anchor
// paragraph's style. The file-level variants InsertHeaderNearText and
// InsertParagraphNearText save on success and report the outcome as a
// human-readable status string.
//
// # Architecture
//
// The package is organized into two layers:
//
//   - ooxml: XML structure definitions for DOCX content (Document, Body,
//     Paragraph, Run, Table, core properties, stylesheet), parsed with
//     element order and unknown markup preserved
//   - wordedit: the Document facade plus the operations built on it
//     (properties, extract, search, replace, insert, normalize)
//
// Reading and writing the surrounding ZIP package is handled by Package,
// which keeps every part it does not edit byte-for-byte intact.
//
// # Error Handling
//
// The package defines typed errors for specific failure cases:
//
//   - NotExistError: the path does not name an existing file
//   - DocumentError: an operation failed on a document (wraps the cause)
//   - PartNotFoundError: a requested package part is absent
//   - StyleNotFoundError: a style name is not in the stylesheet
//   - InvalidPositionError: a position string is neither "before" nor "after"
//
// Check them with the Is helpers or errors.As:
//
//	if wordedit.IsNotExistError(err) {
//	    // handle the missing file
//	}
//
//	var styleErr *wordedit.StyleNotFoundError
//	if errors.As(err, &styleErr) {
//	    fmt.Println("available styles:", styleErr.Available)
//	}
//
// # Configuration
//
// Logging behavior is configured through the environment or explicitly:
//
//	WORDEDIT_LOG_LEVEL=debug
//	WORDEDIT_LOG_FORMAT=console
//
//	wordedit.SetGlobalConfig(&wordedit.Config{
//	    LogLevel:  "info",
//	    LogFormat: "json",
//	})
//
// The default level is "disabled": the package is silent unless asked.
//
// # Logging
//
// The package logs through zerolog. SetLogger installs a caller-provided
// logger; Logger returns the current one for use in surrounding code.
//
// # DOCX File Structure
//
// DOCX files are ZIP archives containing XML parts. The main content lives
// in word/document.xml; styles in word/styles.xml; metadata in
// docProps/core.xml and docProps/app.xml. Wordedit parses the parts it
// operates on and copies everything else through untouched on save.
//
// Key XML structures:
//   - Document: top-level container
//   - Body: document body holding paragraphs and tables
//   - Paragraph: text paragraph with properties and runs
//   - Run: sequence of text with consistent formatting
//   - Table: table with rows and cells
//
// # Limitations
//
// Some DOCX features are out of scope:
//   - Headers and footers (the parts are preserved, not edited)
//   - Embedded objects (charts, diagrams, images)
//   - Track changes and comments
//   - Numbering definitions
//
// # See Also
//
// For more usage patterns:
//   - examples/: runnable programs covering inspection and editing
//   - cmd/wordedit: the command-line interface built on this package
package wordedit
