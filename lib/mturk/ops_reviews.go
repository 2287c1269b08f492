package mturk

import "context"

// Policy levels accepted by ListReviewPolicyResultsForHIT.
const (
	PolicyLevelAssignment = "Assignment"
	PolicyLevelHIT        = "HIT"
)

type ListReviewPolicyResultsForHITRequest struct {
	HITId           string   `json:"HITId"`
	PolicyLevels    []string `json:"PolicyLevels,omitempty"`
	RetrieveActions *bool    `json:"RetrieveActions,omitempty"`
	RetrieveResults *bool    `json:"RetrieveResults,omitempty"`
	NextToken       *string  `json:"NextToken,omitempty"`
	MaxResults      *int64   `json:"MaxResults,omitempty"`
}

type ListReviewPolicyResultsForHITResponse struct {
	HITId                  *string       `json:"HITId,omitempty"`
	AssignmentReviewPolicy *ReviewPolicy `json:"AssignmentReviewPolicy,omitempty"`
	HITReviewPolicy        *ReviewPolicy `json:"HITReviewPolicy,omitempty"`
	AssignmentReviewReport *ReviewReport `json:"AssignmentReviewReport,omitempty"`
	HITReviewReport        *ReviewReport `json:"HITReviewReport,omitempty"`
	NextToken              *string       `json:"NextToken,omitempty"`
}

func ListReviewPolicyResultsForHIT(ctx context.Context, inv Invoker, req ListReviewPolicyResultsForHITRequest) (ListReviewPolicyResultsForHITResponse, error) {
	return invoke[ListReviewPolicyResultsForHITRequest, ListReviewPolicyResultsForHITResponse](ctx, inv, "ListReviewPolicyResultsForHIT", req)
}
