package collect

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/table"
)

// BlockedWorkersRequest describes a paged collection over the
// requester's worker blocks.
type BlockedWorkersRequest struct {
	PageSize   *int64
	MaxResults *int64
	Retry      RetryOptions
}

// BlockedWorkers pages through every worker block.
func BlockedWorkers(ctx context.Context, inv mturk.Invoker, req BlockedWorkersRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "BlockedWorkers")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	result := table.New(0, tabular.WorkerBlockColumns)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListWorkerBlocksRequest{NextToken: token, MaxResults: &size}
		var res mturk.ListWorkerBlocksResponse
		err := callWithRetry(ctx, "ListWorkerBlocks", "", req.Retry, func() error {
			var err error
			res, err = mturk.ListWorkerBlocks(ctx, inv, request)
			return err
		})
		if err != nil {
			return nil, err
		}

		if err := result.Concat(tabular.WorkerBlocks(res.WorkerBlocks...)); err != nil {
			return nil, err
		}
		pager.add(int64(len(res.WorkerBlocks)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}
