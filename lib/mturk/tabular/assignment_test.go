package tabular

import (
	"context"
	"fmt"
	"testing"
	"time"
	"turkdata/lib/mturk"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAssignments(t *testing.T) {
	submitted := time.Date(2024, time.February, 1, 18, 45, 0, 0, time.UTC)
	assignments := []mturk.Assignment{
		{
			AssignmentId:     strptr("A1"),
			WorkerId:         strptr("W1"),
			HITId:            strptr("H1"),
			AssignmentStatus: strptr(mturk.AssignmentStatusSubmitted),
			SubmitTime:       tsptr(submitted),
			Answer:           strptr(freeTextDoc),
		},
		{
			AssignmentId:     strptr("A2"),
			WorkerId:         strptr("W2"),
			HITId:            strptr("H1"),
			AssignmentStatus: strptr(mturk.AssignmentStatusApproved),
		},
	}

	entity, answers := AssignmentsWithAnswers(context.Background(), assignments...)
	require.Equal(t, 2, entity.NumRows())
	require.Empty(t, cmp.Diff(AssignmentColumns, entity.Columns()))

	// input order is preserved
	first, _ := entity.StringAt(0, "AssignmentId")
	second, _ := entity.StringAt(1, "AssignmentId")
	require.Equal(t, "A1", first)
	require.Equal(t, "A2", second)

	ts, ok := entity.TimeAt(0, "SubmitTime")
	require.True(t, ok)
	require.Equal(t, submitted, ts)

	// absent transitions are null instants, not placeholders
	require.True(t, entity.IsNull(0, "ApprovalTime"))
	require.True(t, entity.IsNull(0, "RejectionTime"))
	require.True(t, entity.IsNull(1, "SubmitTime"))

	// only the first assignment carried an answer document
	require.Equal(t, 1, answers.NumRows())
	aid, _ := answers.StringAt(0, "AssignmentId")
	require.Equal(t, "A1", aid)
	wid, _ := answers.StringAt(0, "WorkerId")
	require.Equal(t, "W1", wid)
}

func TestAssignmentsRowCountMatchesInput(t *testing.T) {
	var assignments []mturk.Assignment
	for i := 0; i < 7; i++ {
		assignments = append(assignments, mturk.Assignment{
			AssignmentId: strptr(fmt.Sprintf("A%d", i)),
		})
	}
	entity := Assignments(assignments...)
	require.Equal(t, 7, entity.NumRows())

	_, answers := AssignmentsWithAnswers(context.Background(), assignments...)
	require.Equal(t, 0, answers.NumRows())
}

// one malformed answer document only drops that assignment's answer rows
func TestAssignmentsMalformedAnswerIsIsolated(t *testing.T) {
	entity, answers := AssignmentsWithAnswers(
		context.Background(),
		mturk.Assignment{
			AssignmentId: strptr("A1"),
			Answer:       strptr("<QuestionFormAnswers><Answer>"),
		},
		mturk.Assignment{
			AssignmentId: strptr("A2"),
			WorkerId:     strptr("W2"),
			HITId:        strptr("H1"),
			Answer:       strptr(freeTextDoc),
		},
	)
	require.Equal(t, 2, entity.NumRows())
	require.Equal(t, 1, answers.NumRows())

	aid, _ := answers.StringAt(0, "AssignmentId")
	require.Equal(t, "A2", aid)
}
