// Package qdoc extracts human-readable text from HIT question documents.
// A question document is either an HTMLQuestion envelope carrying an HTML
// page, a QuestionForm markup document, or plain text; all three reduce
// to a whitespace-normalized string.
package qdoc

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type htmlQuestion struct {
	XMLName     xml.Name `xml:"HTMLQuestion"`
	HTMLContent string   `xml:"HTMLContent"`
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func normalize(text string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(text, " "))
}

// PlainText reduces a question document to its visible text.
func PlainText(doc string) (string, error) {
	markup := doc

	// an HTMLQuestion envelope wraps the real page in a CDATA section
	var envelope htmlQuestion
	if err := xml.Unmarshal([]byte(doc), &envelope); err == nil && envelope.HTMLContent != "" {
		markup = envelope.HTMLContent
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	parsed.Find("script,style").Remove()
	return normalize(parsed.Text()), nil
}
