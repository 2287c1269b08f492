package mturk

import "context"

type ListAssignmentsForHITRequest struct {
	HITId              string   `json:"HITId"`
	NextToken          *string  `json:"NextToken,omitempty"`
	MaxResults         *int64   `json:"MaxResults,omitempty"`
	AssignmentStatuses []string `json:"AssignmentStatuses,omitempty"`
}

type ListAssignmentsForHITResponse struct {
	NextToken   *string      `json:"NextToken,omitempty"`
	NumResults  *int64       `json:"NumResults,omitempty"`
	Assignments []Assignment `json:"Assignments,omitempty"`
}

func ListAssignmentsForHIT(ctx context.Context, inv Invoker, req ListAssignmentsForHITRequest) (ListAssignmentsForHITResponse, error) {
	return invoke[ListAssignmentsForHITRequest, ListAssignmentsForHITResponse](ctx, inv, "ListAssignmentsForHIT", req)
}

type GetAssignmentRequest struct {
	AssignmentId string `json:"AssignmentId"`
}

type GetAssignmentResponse struct {
	Assignment *Assignment `json:"Assignment,omitempty"`
	HIT        *HIT        `json:"HIT,omitempty"`
}

func GetAssignment(ctx context.Context, inv Invoker, req GetAssignmentRequest) (GetAssignmentResponse, error) {
	return invoke[GetAssignmentRequest, GetAssignmentResponse](ctx, inv, "GetAssignment", req)
}

type ListBonusPaymentsRequest struct {
	HITId        *string `json:"HITId,omitempty"`
	AssignmentId *string `json:"AssignmentId,omitempty"`
	NextToken    *string `json:"NextToken,omitempty"`
	MaxResults   *int64  `json:"MaxResults,omitempty"`
}

type ListBonusPaymentsResponse struct {
	NextToken     *string        `json:"NextToken,omitempty"`
	NumResults    *int64         `json:"NumResults,omitempty"`
	BonusPayments []BonusPayment `json:"BonusPayments,omitempty"`
}

func ListBonusPayments(ctx context.Context, inv Invoker, req ListBonusPaymentsRequest) (ListBonusPaymentsResponse, error) {
	return invoke[ListBonusPaymentsRequest, ListBonusPaymentsResponse](ctx, inv, "ListBonusPayments", req)
}
