package collect

import (
	"context"
	"errors"
	"testing"
	"time"
	"turkdata/lib/mturk"

	"github.com/stretchr/testify/require"
)

const answerDoc = `<?xml version="1.0" encoding="UTF-8"?>
<QuestionFormAnswers xmlns="http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2005-10-01/QuestionFormAnswers.xsd">
  <Answer>
    <QuestionIdentifier>comment</QuestionIdentifier>
    <FreeText>looks fine</FreeText>
  </Answer>
</QuestionFormAnswers>`

func TestAssignmentsCeilingAcrossParents(t *testing.T) {
	fake := &fakeInvoker{
		assignments: map[string][]mturk.Assignment{
			"H1": makeAssignments("H1", 40),
			"H2": makeAssignments("H2", 40),
			"H3": makeAssignments("H3", 40),
		},
	}

	res, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector:   Selector{HITIDs: []string{"H1", "H2", "H3"}},
		PageSize:   i64ptr(15),
		MaxResults: i64ptr(100),
	})
	require.NoError(t, err)
	require.Equal(t, 100, res.Assignments.NumRows())
	require.Nil(t, res.Answers)

	// rows arrive in parent order, so the cap lands inside H3
	perHIT := map[string]int{}
	for i := 0; i < res.Assignments.NumRows(); i++ {
		hitID, ok := res.Assignments.StringAt(i, "HITId")
		require.True(t, ok)
		perHIT[hitID]++
	}
	require.Equal(t, map[string]int{"H1": 40, "H2": 40, "H3": 20}, perHIT)

	// the last page request only asks for what is left under the cap
	require.NotEmpty(t, fake.pageSizes)
	for _, size := range fake.pageSizes {
		require.LessOrEqual(t, size, int64(15))
	}
	require.Equal(t, int64(5), fake.pageSizes[len(fake.pageSizes)-1])
}

func TestAssignmentsCeilingAboveTotal(t *testing.T) {
	fake := &fakeInvoker{
		assignments: map[string][]mturk.Assignment{
			"H1": makeAssignments("H1", 40),
			"H2": makeAssignments("H2", 40),
			"H3": makeAssignments("H3", 40),
		},
	}

	res, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector:   Selector{HITIDs: []string{"H1", "H2", "H3"}},
		MaxResults: i64ptr(500),
	})
	require.NoError(t, err)
	require.Equal(t, 120, res.Assignments.NumRows())
}

func TestAssignmentsPageSizeValidation(t *testing.T) {
	fake := &fakeInvoker{}
	for _, size := range []int64{0, 150, -3} {
		_, err := Assignments(context.Background(), fake, AssignmentRequest{
			Selector: Selector{HITID: "H1"},
			PageSize: i64ptr(size),
		})
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
	}
	require.Empty(t, fake.calls)
}

func TestAssignmentsStatusValidation(t *testing.T) {
	fake := &fakeInvoker{}

	_, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Statuses: []string{},
	})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Statuses: []string{"Pending"},
	})
	require.ErrorAs(t, err, &inputErr)
	require.Empty(t, fake.calls)
}

func TestAssignmentsStatusDefault(t *testing.T) {
	fake := &fakeInvoker{
		assignments: map[string][]mturk.Assignment{"H1": makeAssignments("H1", 1)},
	}

	_, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		mturk.AssignmentStatusSubmitted,
		mturk.AssignmentStatusApproved,
		mturk.AssignmentStatusRejected,
	}, fake.lastStatuses)

	_, err = Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Statuses: []string{mturk.AssignmentStatusApproved},
	})
	require.NoError(t, err)
	require.Equal(t, []string{mturk.AssignmentStatusApproved}, fake.lastStatuses)
}

func TestAssignmentsIncludeAnswers(t *testing.T) {
	withAnswer := makeAssignments("H1", 3)
	withAnswer[0].Answer = strptr(answerDoc)
	withAnswer[2].Answer = strptr(`<QuestionFormAnswers><Answer>`)
	fake := &fakeInvoker{
		assignments: map[string][]mturk.Assignment{"H1": withAnswer},
	}

	res, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector:       Selector{HITID: "H1"},
		IncludeAnswers: true,
	})
	require.NoError(t, err)

	// the malformed answer document only loses its own answer rows
	require.Equal(t, 3, res.Assignments.NumRows())
	require.NotNil(t, res.Answers)
	require.Equal(t, 1, res.Answers.NumRows())

	assignmentID, ok := res.Answers.StringAt(0, "AssignmentId")
	require.True(t, ok)
	require.Equal(t, "H1-A0", assignmentID)
	freeText, ok := res.Answers.StringAt(0, "FreeText")
	require.True(t, ok)
	require.Equal(t, "looks fine", freeText)
}

func TestAssignmentByID(t *testing.T) {
	assignments := makeAssignments("H1", 2)
	assignments[1].Answer = strptr(answerDoc)
	fake := &fakeInvoker{
		assignments: map[string][]mturk.Assignment{"H1": assignments},
	}

	res, err := AssignmentByID(context.Background(), fake, "H1-A1")
	require.NoError(t, err)
	require.Equal(t, 1, res.Assignments.NumRows())
	require.Equal(t, 1, res.Answers.NumRows())

	_, err = AssignmentByID(context.Background(), fake, "")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestAssignmentsRetryExhaustion(t *testing.T) {
	fake := &fakeInvoker{
		assignments:   map[string][]mturk.Assignment{"H1": makeAssignments("H1", 3)},
		failOp:        "ListAssignmentsForHIT",
		failRemaining: -1,
		failErr:       &mturk.RemoteError{Operation: "ListAssignmentsForHIT", StatusCode: 503, Code: "ServiceFault"},
	}

	_, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Retry:    RetryOptions{RetryOnError: true, Backoff: time.Millisecond},
	})
	var retryErr *RetryError
	require.ErrorAs(t, err, &retryErr)
	require.Equal(t, "ListAssignmentsForHIT", retryErr.Operation)
	require.Equal(t, "H1", retryErr.ParentId)
	require.Equal(t, 5, retryErr.Attempts)
	require.Equal(t, 5, fake.callCount("ListAssignmentsForHIT"))
}

func TestAssignmentsRetryRecovers(t *testing.T) {
	fake := &fakeInvoker{
		assignments:   map[string][]mturk.Assignment{"H1": makeAssignments("H1", 3)},
		failOp:        "ListAssignmentsForHIT",
		failRemaining: 2,
		failErr:       &mturk.RemoteError{Operation: "ListAssignmentsForHIT", StatusCode: 503, Code: "ServiceFault"},
	}

	res, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Retry:    RetryOptions{RetryOnError: true, Backoff: time.Millisecond},
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.Assignments.NumRows())
}

func TestAssignmentsNoRetryWithoutOptIn(t *testing.T) {
	fake := &fakeInvoker{
		assignments:   map[string][]mturk.Assignment{"H1": makeAssignments("H1", 3)},
		failOp:        "ListAssignmentsForHIT",
		failRemaining: 1,
		failErr:       &mturk.RemoteError{Operation: "ListAssignmentsForHIT", StatusCode: 503, Code: "ServiceFault"},
	}

	_, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
	})
	var remoteErr *mturk.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	var retryErr *RetryError
	require.False(t, errors.As(err, &retryErr))
	require.Equal(t, 1, fake.callCount("ListAssignmentsForHIT"))
}

func TestAssignmentsNonTransientNotRetried(t *testing.T) {
	fake := &fakeInvoker{
		assignments:   map[string][]mturk.Assignment{"H1": makeAssignments("H1", 3)},
		failOp:        "ListAssignmentsForHIT",
		failRemaining: -1,
		failErr:       &mturk.RemoteError{Operation: "ListAssignmentsForHIT", StatusCode: 400, Code: "RequestError"},
	}

	_, err := Assignments(context.Background(), fake, AssignmentRequest{
		Selector: Selector{HITID: "H1"},
		Retry:    RetryOptions{RetryOnError: true, Backoff: time.Millisecond},
	})
	var remoteErr *mturk.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, 400, remoteErr.StatusCode)
	require.Equal(t, 1, fake.callCount("ListAssignmentsForHIT"))
}
