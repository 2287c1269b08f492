package mturk

import "context"

type GetQualificationTypeRequest struct {
	QualificationTypeId string `json:"QualificationTypeId"`
}

type GetQualificationTypeResponse struct {
	QualificationType *QualificationType `json:"QualificationType,omitempty"`
}

func GetQualificationType(ctx context.Context, inv Invoker, req GetQualificationTypeRequest) (GetQualificationTypeResponse, error) {
	return invoke[GetQualificationTypeRequest, GetQualificationTypeResponse](ctx, inv, "GetQualificationType", req)
}

type ListQualificationTypesRequest struct {
	Query               *string `json:"Query,omitempty"`
	MustBeRequestable   bool    `json:"MustBeRequestable"`
	MustBeOwnedByCaller *bool   `json:"MustBeOwnedByCaller,omitempty"`
	NextToken           *string `json:"NextToken,omitempty"`
	MaxResults          *int64  `json:"MaxResults,omitempty"`
}

type ListQualificationTypesResponse struct {
	NextToken          *string             `json:"NextToken,omitempty"`
	NumResults         *int64              `json:"NumResults,omitempty"`
	QualificationTypes []QualificationType `json:"QualificationTypes,omitempty"`
}

func ListQualificationTypes(ctx context.Context, inv Invoker, req ListQualificationTypesRequest) (ListQualificationTypesResponse, error) {
	return invoke[ListQualificationTypesRequest, ListQualificationTypesResponse](ctx, inv, "ListQualificationTypes", req)
}

type ListQualificationRequestsRequest struct {
	QualificationTypeId *string `json:"QualificationTypeId,omitempty"`
	NextToken           *string `json:"NextToken,omitempty"`
	MaxResults          *int64  `json:"MaxResults,omitempty"`
}

type ListQualificationRequestsResponse struct {
	NextToken             *string                `json:"NextToken,omitempty"`
	NumResults            *int64                 `json:"NumResults,omitempty"`
	QualificationRequests []QualificationRequest `json:"QualificationRequests,omitempty"`
}

func ListQualificationRequests(ctx context.Context, inv Invoker, req ListQualificationRequestsRequest) (ListQualificationRequestsResponse, error) {
	return invoke[ListQualificationRequestsRequest, ListQualificationRequestsResponse](ctx, inv, "ListQualificationRequests", req)
}

type ListWorkersWithQualificationTypeRequest struct {
	QualificationTypeId string  `json:"QualificationTypeId"`
	Status              *string `json:"Status,omitempty"`
	NextToken           *string `json:"NextToken,omitempty"`
	MaxResults          *int64  `json:"MaxResults,omitempty"`
}

type ListWorkersWithQualificationTypeResponse struct {
	NextToken      *string         `json:"NextToken,omitempty"`
	NumResults     *int64          `json:"NumResults,omitempty"`
	Qualifications []Qualification `json:"Qualifications,omitempty"`
}

func ListWorkersWithQualificationType(ctx context.Context, inv Invoker, req ListWorkersWithQualificationTypeRequest) (ListWorkersWithQualificationTypeResponse, error) {
	return invoke[ListWorkersWithQualificationTypeRequest, ListWorkersWithQualificationTypeResponse](ctx, inv, "ListWorkersWithQualificationType", req)
}
