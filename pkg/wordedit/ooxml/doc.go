// Package ooxml parses and serializes the XML parts of a Word document
// package: the body (word/document.xml), core metadata (docProps/core.xml)
// and the stylesheet (word/styles.xml).
//
// The model is deliberately narrow. Paragraphs, runs, hyperlinks and the
// table skeleton are typed because editing operates on them. Everything
// else (formatting property blocks, section properties, bookmarks,
// drawings, nested tables) is captured as raw markup and written back
// verbatim, so a document survives an edit cycle with unmodeled content
// intact.
//
// Serialization is hand-assembled rather than driven by encoding/xml's
// encoder: most of what gets written is preserved raw bytes, and the
// w: prefix convention Word expects is easier to guarantee by writing
// tags directly.
package ooxml
