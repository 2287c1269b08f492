package tabular

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"turkdata/lib/table"
)

// AnswerColumns is the fixed column set of the answer table derived from
// each assignment's embedded QuestionFormAnswers document. Identifiers
// are denormalized onto every row for joinability.
var AnswerColumns = []string{
	"AssignmentId",
	"WorkerId",
	"HITId",
	"QuestionIdentifier",
	"FreeText",
	"SelectionIdentifier",
	"OtherSelectionField",
	"UploadedFileKey",
	"UploadedFileSizeInBytes",
}

// ParseError reports an answer document that is not well-formed markup.
type ParseError struct {
	AssignmentId string
	Err          error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("answer document of assignment %q is malformed: %s", e.AssignmentId, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type questionFormAnswers struct {
	XMLName xml.Name        `xml:"QuestionFormAnswers"`
	Answers []answerElement `xml:"Answer"`
}

type answerElement struct {
	QuestionIdentifier      string   `xml:"QuestionIdentifier"`
	FreeText                *string  `xml:"FreeText"`
	SelectionIdentifier     []string `xml:"SelectionIdentifier"`
	OtherSelectionText      *string  `xml:"OtherSelectionText"`
	UploadedFileKey         *string  `xml:"UploadedFileKey"`
	UploadedFileSizeInBytes *string  `xml:"UploadedFileSizeInBytes"`
}

// ParseAnswers decodes one assignment's QuestionFormAnswers document into
// one row per Answer element, in document order. Absent optional elements
// yield null cells; a document that is not well-formed yields a
// *ParseError.
func ParseAnswers(assignmentID, workerID, hitID, doc string) (*table.Table, error) {
	var parsed questionFormAnswers
	err := xml.Unmarshal([]byte(doc), &parsed)
	if err != nil {
		return nil, &ParseError{AssignmentId: assignmentID, Err: err}
	}

	tbl := table.New(len(parsed.Answers), AnswerColumns)
	for i, answer := range parsed.Answers {
		tbl.Set(i, "AssignmentId", assignmentID)
		tbl.Set(i, "WorkerId", workerID)
		tbl.Set(i, "HITId", hitID)
		tbl.Set(i, "QuestionIdentifier", answer.QuestionIdentifier)
		tbl.Set(i, "FreeText", optString(answer.FreeText))
		if len(answer.SelectionIdentifier) > 0 {
			tbl.Set(i, "SelectionIdentifier", strings.Join(answer.SelectionIdentifier, ","))
		}
		tbl.Set(i, "OtherSelectionField", optString(answer.OtherSelectionText))
		tbl.Set(i, "UploadedFileKey", optString(answer.UploadedFileKey))
		tbl.Set(i, "UploadedFileSizeInBytes", fileSize(answer.UploadedFileSizeInBytes, assignmentID))
	}
	return tbl, nil
}

func fileSize(s *string, assignmentID string) any {
	if s == nil {
		return nil
	}
	size, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		slog.Warn(
			"uploaded file size is not numeric",
			"assignment", assignmentID,
			"value", *s,
		)
		return nil
	}
	return size
}
