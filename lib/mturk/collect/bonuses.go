package collect

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/table"
)

// BonusPaymentRequest describes a bonus payment collection. Exactly one
// of HITIDs or AssignmentIDs must be supplied; bonuses are listed per
// parent in the given order.
type BonusPaymentRequest struct {
	HITIDs        []string
	AssignmentIDs []string
	PageSize      *int64
	MaxResults    *int64
	Retry         RetryOptions
}

// BonusPayments collects the bonus payments granted under the given
// parents.
func BonusPayments(ctx context.Context, inv mturk.Invoker, req BonusPaymentRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "BonusPayments")
	defer span.End()

	if len(req.HITIDs) == 0 && len(req.AssignmentIDs) == 0 {
		return nil, inputErrorf("no bonus payment parent supplied")
	}
	if len(req.HITIDs) > 0 && len(req.AssignmentIDs) > 0 {
		return nil, inputErrorf("both HIT ids and assignment ids supplied")
	}
	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	byHIT := len(req.HITIDs) > 0
	parents := req.HITIDs
	if !byHIT {
		parents = req.AssignmentIDs
	}

	result := table.New(0, tabular.BonusPaymentColumns)
	for _, parent := range parents {
		if pager.done() {
			break
		}
		err := collectBonusesForParent(ctx, inv, parent, byHIT, pager, req.Retry, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func collectBonusesForParent(
	ctx context.Context,
	inv mturk.Invoker,
	parent string,
	byHIT bool,
	pager *pager,
	retry RetryOptions,
	result *table.Table,
) error {
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			return nil
		}

		request := mturk.ListBonusPaymentsRequest{
			NextToken:  token,
			MaxResults: &size,
		}
		if byHIT {
			request.HITId = &parent
		} else {
			request.AssignmentId = &parent
		}

		var res mturk.ListBonusPaymentsResponse
		err := callWithRetry(ctx, "ListBonusPayments", parent, retry, func() error {
			var err error
			res, err = mturk.ListBonusPayments(ctx, inv, request)
			return err
		})
		if err != nil {
			return err
		}

		if err := result.Concat(tabular.BonusPayments(ctx, res.BonusPayments...)); err != nil {
			return err
		}
		pager.add(int64(len(res.BonusPayments)))

		if res.NextToken == nil {
			return nil
		}
		token = res.NextToken
	}
}
