package mturk

import "context"

type GetHITRequest struct {
	HITId string `json:"HITId"`
}

type GetHITResponse struct {
	HIT *HIT `json:"HIT,omitempty"`
}

func GetHIT(ctx context.Context, inv Invoker, req GetHITRequest) (GetHITResponse, error) {
	return invoke[GetHITRequest, GetHITResponse](ctx, inv, "GetHIT", req)
}

type ListHITsRequest struct {
	NextToken  *string `json:"NextToken,omitempty"`
	MaxResults *int64  `json:"MaxResults,omitempty"`
}

type ListHITsResponse struct {
	NextToken  *string `json:"NextToken,omitempty"`
	NumResults *int64  `json:"NumResults,omitempty"`
	HITs       []HIT   `json:"HITs,omitempty"`
}

func ListHITs(ctx context.Context, inv Invoker, req ListHITsRequest) (ListHITsResponse, error) {
	return invoke[ListHITsRequest, ListHITsResponse](ctx, inv, "ListHITs", req)
}

type ListReviewableHITsRequest struct {
	HITTypeId  *string `json:"HITTypeId,omitempty"`
	Status     *string `json:"Status,omitempty"`
	NextToken  *string `json:"NextToken,omitempty"`
	MaxResults *int64  `json:"MaxResults,omitempty"`
}

type ListReviewableHITsResponse struct {
	NextToken  *string `json:"NextToken,omitempty"`
	NumResults *int64  `json:"NumResults,omitempty"`
	HITs       []HIT   `json:"HITs,omitempty"`
}

func ListReviewableHITs(ctx context.Context, inv Invoker, req ListReviewableHITsRequest) (ListReviewableHITsResponse, error) {
	return invoke[ListReviewableHITsRequest, ListReviewableHITsResponse](ctx, inv, "ListReviewableHITs", req)
}

type ListHITsForQualificationTypeRequest struct {
	QualificationTypeId string  `json:"QualificationTypeId"`
	NextToken           *string `json:"NextToken,omitempty"`
	MaxResults          *int64  `json:"MaxResults,omitempty"`
}

type ListHITsForQualificationTypeResponse struct {
	NextToken  *string `json:"NextToken,omitempty"`
	NumResults *int64  `json:"NumResults,omitempty"`
	HITs       []HIT   `json:"HITs,omitempty"`
}

func ListHITsForQualificationType(ctx context.Context, inv Invoker, req ListHITsForQualificationTypeRequest) (ListHITsForQualificationTypeResponse, error) {
	return invoke[ListHITsForQualificationTypeRequest, ListHITsForQualificationTypeResponse](ctx, inv, "ListHITsForQualificationType", req)
}
