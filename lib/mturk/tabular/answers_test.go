package tabular

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const freeTextDoc = `<?xml version="1.0" encoding="UTF-8"?>
<QuestionFormAnswers xmlns="http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2005-10-01/QuestionFormAnswers.xsd">
  <Answer>
    <QuestionIdentifier>comment</QuestionIdentifier>
    <FreeText>looks good to me</FreeText>
  </Answer>
</QuestionFormAnswers>`

func TestParseAnswersFreeText(t *testing.T) {
	tbl, err := ParseAnswers("A1", "W1", "H1", freeTextDoc)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.NumRows())
	require.Empty(t, cmp.Diff(AnswerColumns, tbl.Columns()))

	q, ok := tbl.StringAt(0, "QuestionIdentifier")
	require.True(t, ok)
	require.Equal(t, "comment", q)

	text, ok := tbl.StringAt(0, "FreeText")
	require.True(t, ok)
	require.Equal(t, "looks good to me", text)

	require.True(t, tbl.IsNull(0, "SelectionIdentifier"))
	require.True(t, tbl.IsNull(0, "OtherSelectionField"))
	require.True(t, tbl.IsNull(0, "UploadedFileKey"))
	require.True(t, tbl.IsNull(0, "UploadedFileSizeInBytes"))

	hit, ok := tbl.StringAt(0, "HITId")
	require.True(t, ok)
	require.Equal(t, "H1", hit)
}

func TestParseAnswersSelections(t *testing.T) {
	doc := `<QuestionFormAnswers>
  <Answer>
    <QuestionIdentifier>favorite_color</QuestionIdentifier>
    <SelectionIdentifier>red</SelectionIdentifier>
    <SelectionIdentifier>blue</SelectionIdentifier>
    <OtherSelectionText>teal</OtherSelectionText>
  </Answer>
  <Answer>
    <QuestionIdentifier>photo</QuestionIdentifier>
    <UploadedFileKey>uploads/abc123</UploadedFileKey>
    <UploadedFileSizeInBytes>2048</UploadedFileSizeInBytes>
  </Answer>
</QuestionFormAnswers>`

	tbl, err := ParseAnswers("A1", "W1", "H1", doc)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.NumRows())

	selections, ok := tbl.StringAt(0, "SelectionIdentifier")
	require.True(t, ok)
	require.Equal(t, "red,blue", selections)

	other, ok := tbl.StringAt(0, "OtherSelectionField")
	require.True(t, ok)
	require.Equal(t, "teal", other)
	require.True(t, tbl.IsNull(0, "FreeText"))

	key, ok := tbl.StringAt(1, "UploadedFileKey")
	require.True(t, ok)
	require.Equal(t, "uploads/abc123", key)

	size, ok := tbl.IntAt(1, "UploadedFileSizeInBytes")
	require.True(t, ok)
	require.Equal(t, int64(2048), size)
}

func TestParseAnswersMalformed(t *testing.T) {
	_, err := ParseAnswers("A1", "W1", "H1", `<QuestionFormAnswers><Answer>`)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "A1", parseErr.AssignmentId)
}

func TestParseAnswersEmptyDocument(t *testing.T) {
	tbl, err := ParseAnswers("A1", "W1", "H1", `<QuestionFormAnswers></QuestionFormAnswers>`)
	require.NoError(t, err)
	require.Equal(t, 0, tbl.NumRows())
}

func TestParseAnswersBadFileSize(t *testing.T) {
	doc := `<QuestionFormAnswers>
  <Answer>
    <QuestionIdentifier>photo</QuestionIdentifier>
    <UploadedFileKey>uploads/abc123</UploadedFileKey>
    <UploadedFileSizeInBytes>big</UploadedFileSizeInBytes>
  </Answer>
</QuestionFormAnswers>`

	tbl, err := ParseAnswers("A1", "W1", "H1", doc)
	require.NoError(t, err)
	require.True(t, tbl.IsNull(0, "UploadedFileSizeInBytes"))
}
