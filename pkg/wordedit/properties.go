package wordedit

import (
	"strconv"
	"strings"
	"time"
)

// DocumentProperties aggregates core metadata with bulk statistics
// computed from the document body.
type DocumentProperties struct {
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Subject        string    `json:"subject"`
	Keywords       string    `json:"keywords"`
	Created        time.Time `json:"created"`
	Modified       time.Time `json:"modified"`
	LastModifiedBy string    `json:"last_modified_by"`
	Revision       int       `json:"revision"`
	PageCount      int       `json:"page_count"`
	WordCount      int       `json:"word_count"`
	ParagraphCount int       `json:"paragraph_count"`
	TableCount     int       `json:"table_count"`
}

// Properties reads metadata from docProps/core.xml and computes the
// document statistics. Absent metadata fields stay zero-valued. The page
// count is the section count; without page-layout rendering that is the
// closest the package format offers.
func (d *Document) Properties() DocumentProperties {
	core := d.coreProperties()

	props := DocumentProperties{
		Title:          core.Title,
		Author:         core.Creator,
		Subject:        core.Subject,
		Keywords:       core.Keywords,
		Created:        core.Created,
		Modified:       core.Modified,
		LastModifiedBy: core.LastModifiedBy,
	}
	if rev, err := strconv.Atoi(core.Revision); err == nil {
		props.Revision = rev
	}

	paragraphs := d.Paragraphs()
	props.ParagraphCount = len(paragraphs)
	for _, p := range paragraphs {
		props.WordCount += len(strings.Fields(p.Text()))
	}
	props.TableCount = len(d.Tables())
	props.PageCount = d.document.Body.SectionCount()

	return props
}
