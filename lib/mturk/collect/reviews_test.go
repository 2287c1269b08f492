package collect

import (
	"context"
	"testing"
	"turkdata/lib/mturk"

	"github.com/stretchr/testify/require"
)

func TestReviewResultsValidation(t *testing.T) {
	fake := &fakeInvoker{}

	_, err := ReviewResults(context.Background(), fake, ReviewResultsRequest{})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = ReviewResults(context.Background(), fake, ReviewResultsRequest{
		HITIDs:       []string{"H1"},
		PolicyLevels: []string{"Worker"},
	})
	require.ErrorAs(t, err, &inputErr)
	require.Empty(t, fake.calls)
}

func TestReviewResults(t *testing.T) {
	fake := &fakeInvoker{
		reviewReports: map[string]mturk.ListReviewPolicyResultsForHITResponse{
			"H1": {
				HITId: strptr("H1"),
				AssignmentReviewPolicy: &mturk.ReviewPolicy{
					PolicyName: strptr("ScoreMyKnownAnswers/2011-09-01"),
				},
				AssignmentReviewReport: &mturk.ReviewReport{
					ReviewResults: []mturk.ReviewResultDetail{
						{
							ActionId:    strptr("AC1"),
							SubjectId:   strptr("A1"),
							SubjectType: strptr("Assignment"),
							Key:         strptr("Score"),
							Value:       strptr("2"),
						},
					},
					ReviewActions: []mturk.ReviewActionDetail{
						{
							ActionId:   strptr("AC1"),
							ActionName: strptr("ApproveAssignment"),
							TargetId:   strptr("A1"),
							Status:     strptr("Succeeded"),
						},
					},
				},
			},
		},
	}

	res, err := ReviewResults(context.Background(), fake, ReviewResultsRequest{
		HITIDs: []string{"H1"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.AssignmentResults.NumRows())
	hitID, ok := res.AssignmentResults.StringAt(0, "HITId")
	require.True(t, ok)
	require.Equal(t, "H1", hitID)
	policy, ok := res.AssignmentResults.StringAt(0, "PolicyName")
	require.True(t, ok)
	require.Equal(t, "ScoreMyKnownAnswers/2011-09-01", policy)

	require.Equal(t, 1, res.AssignmentActions.NumRows())
	action, ok := res.AssignmentActions.StringAt(0, "ActionName")
	require.True(t, ok)
	require.Equal(t, "ApproveAssignment", action)

	// nothing was reported at the HIT level
	require.Equal(t, 0, res.HITResults.NumRows())
	require.Equal(t, 0, res.HITActions.NumRows())
}
