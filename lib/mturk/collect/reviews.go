package collect

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/table"
)

// ReviewResultsRequest describes a review report collection across a set
// of parent HITs.
type ReviewResultsRequest struct {
	HITIDs []string
	// PolicyLevels restricts which report levels are fetched; nil means
	// both Assignment and HIT.
	PolicyLevels []string
	PageSize     *int64
	Retry        RetryOptions
}

// ReviewResultSet carries the four tables a review report expands into:
// results and actions, each at assignment and HIT level.
type ReviewResultSet struct {
	AssignmentResults *table.Table
	AssignmentActions *table.Table
	HITResults        *table.Table
	HITActions        *table.Table
}

// ReviewResults collects the review policy reports of the given HITs.
func ReviewResults(ctx context.Context, inv mturk.Invoker, req ReviewResultsRequest) (ReviewResultSet, error) {
	ctx, span := tracer.Start(ctx, "ReviewResults")
	defer span.End()

	if len(req.HITIDs) == 0 {
		return ReviewResultSet{}, inputErrorf("no HIT ids supplied")
	}
	levels := req.PolicyLevels
	if levels == nil {
		levels = []string{mturk.PolicyLevelAssignment, mturk.PolicyLevelHIT}
	}
	for _, level := range levels {
		if level != mturk.PolicyLevelAssignment && level != mturk.PolicyLevelHIT {
			return ReviewResultSet{}, inputErrorf("unknown policy level %q", level)
		}
	}
	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return ReviewResultSet{}, err
	}

	result := ReviewResultSet{
		AssignmentResults: table.New(0, tabular.ReviewResultColumns),
		AssignmentActions: table.New(0, tabular.ReviewActionColumns),
		HITResults:        table.New(0, tabular.ReviewResultColumns),
		HITActions:        table.New(0, tabular.ReviewActionColumns),
	}
	for _, hitID := range req.HITIDs {
		err := collectReviewReport(ctx, inv, hitID, levels, pageSize, req.Retry, &result)
		if err != nil {
			return ReviewResultSet{}, err
		}
	}
	return result, nil
}

func collectReviewReport(
	ctx context.Context,
	inv mturk.Invoker,
	hitID string,
	levels []string,
	pageSize int64,
	retry RetryOptions,
	result *ReviewResultSet,
) error {
	var token *string
	for {
		request := mturk.ListReviewPolicyResultsForHITRequest{
			HITId:        hitID,
			PolicyLevels: levels,
			NextToken:    token,
			MaxResults:   &pageSize,
		}
		var res mturk.ListReviewPolicyResultsForHITResponse
		err := callWithRetry(ctx, "ListReviewPolicyResultsForHIT", hitID, retry, func() error {
			var err error
			res, err = mturk.ListReviewPolicyResultsForHIT(ctx, inv, request)
			return err
		})
		if err != nil {
			return err
		}

		results, actions := tabular.ReviewReportTables(hitID, res.AssignmentReviewPolicy, res.AssignmentReviewReport)
		if err := result.AssignmentResults.Concat(results); err != nil {
			return err
		}
		if err := result.AssignmentActions.Concat(actions); err != nil {
			return err
		}

		results, actions = tabular.ReviewReportTables(hitID, res.HITReviewPolicy, res.HITReviewReport)
		if err := result.HITResults.Concat(results); err != nil {
			return err
		}
		if err := result.HITActions.Concat(actions); err != nil {
			return err
		}

		if res.NextToken == nil {
			return nil
		}
		token = res.NextToken
	}
}
