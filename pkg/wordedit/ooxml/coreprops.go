package ooxml

import (
	"encoding/xml"
	"time"

	"gitlab.com/tozd/go/errors"
)

// CoreProperties are the package metadata from docProps/core.xml (Dublin
// Core plus the OPC extensions). Missing fields stay zero-valued; the part
// itself is optional.
type CoreProperties struct {
	Title          string
	Subject        string
	Creator        string
	Keywords       string
	LastModifiedBy string
	Revision       string
	Created        time.Time
	Modified       time.Time
}

// ParseCoreProperties parses a docProps/core.xml payload.
func ParseCoreProperties(data []byte) (*CoreProperties, error) {
	var raw struct {
		Title          string `xml:"title"`
		Subject        string `xml:"subject"`
		Creator        string `xml:"creator"`
		Keywords       string `xml:"keywords"`
		LastModifiedBy string `xml:"lastModifiedBy"`
		Revision       string `xml:"revision"`
		Created        string `xml:"created"`
		Modified       string `xml:"modified"`
	}
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("parsing core properties: %w", err)
	}

	return &CoreProperties{
		Title:          raw.Title,
		Subject:        raw.Subject,
		Creator:        raw.Creator,
		Keywords:       raw.Keywords,
		LastModifiedBy: raw.LastModifiedBy,
		Revision:       raw.Revision,
		Created:        parseW3CDTF(raw.Created),
		Modified:       parseW3CDTF(raw.Modified),
	}, nil
}

// parseW3CDTF parses the timestamp profile core.xml uses. Word writes full
// RFC 3339 stamps; other producers truncate to seconds or dates, so each
// narrower layout is tried in turn. Unparseable input yields a zero time.
func parseW3CDTF(s string) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
