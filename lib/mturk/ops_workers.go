package mturk

import "context"

type ListWorkerBlocksRequest struct {
	NextToken  *string `json:"NextToken,omitempty"`
	MaxResults *int64  `json:"MaxResults,omitempty"`
}

type ListWorkerBlocksResponse struct {
	NextToken    *string       `json:"NextToken,omitempty"`
	NumResults   *int64        `json:"NumResults,omitempty"`
	WorkerBlocks []WorkerBlock `json:"WorkerBlocks,omitempty"`
}

func ListWorkerBlocks(ctx context.Context, inv Invoker, req ListWorkerBlocksRequest) (ListWorkerBlocksResponse, error) {
	return invoke[ListWorkerBlocksRequest, ListWorkerBlocksResponse](ctx, inv, "ListWorkerBlocks", req)
}
