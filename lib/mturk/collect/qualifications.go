package collect

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/table"
)

// QualificationsRequest describes a paged collection over the workers
// holding one qualification type.
type QualificationsRequest struct {
	QualificationTypeID string
	// Status is Granted or Revoked; nil lets the remote default apply.
	Status     *string
	PageSize   *int64
	MaxResults *int64
	Retry      RetryOptions
}

// QualificationsForType collects the qualifications held under one type.
func QualificationsForType(ctx context.Context, inv mturk.Invoker, req QualificationsRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "QualificationsForType")
	defer span.End()

	if req.QualificationTypeID == "" {
		return nil, inputErrorf("qualification type id must not be empty")
	}
	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	result := table.New(0, tabular.QualificationColumns)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListWorkersWithQualificationTypeRequest{
			QualificationTypeId: req.QualificationTypeID,
			Status:              req.Status,
			NextToken:           token,
			MaxResults:          &size,
		}
		var res mturk.ListWorkersWithQualificationTypeResponse
		err := callWithRetry(ctx, "ListWorkersWithQualificationType", req.QualificationTypeID, req.Retry, func() error {
			var err error
			res, err = mturk.ListWorkersWithQualificationType(ctx, inv, request)
			return err
		})
		if err != nil {
			return nil, err
		}

		if err := result.Concat(tabular.Qualifications(res.Qualifications...)); err != nil {
			return nil, err
		}
		pager.add(int64(len(res.Qualifications)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}

// QualificationRequestsRequest describes a paged collection over pending
// qualification requests.
type QualificationRequestsRequest struct {
	// QualificationTypeID restricts the listing to one type when set.
	QualificationTypeID *string
	PageSize            *int64
	MaxResults          *int64
	Retry               RetryOptions
}

// QualificationRequests collects pending qualification requests.
func QualificationRequests(ctx context.Context, inv mturk.Invoker, req QualificationRequestsRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "QualificationRequests")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	parent := ""
	if req.QualificationTypeID != nil {
		parent = *req.QualificationTypeID
	}

	result := table.New(0, tabular.QualificationRequestColumns)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListQualificationRequestsRequest{
			QualificationTypeId: req.QualificationTypeID,
			NextToken:           token,
			MaxResults:          &size,
		}
		var res mturk.ListQualificationRequestsResponse
		err := callWithRetry(ctx, "ListQualificationRequests", parent, req.Retry, func() error {
			var err error
			res, err = mturk.ListQualificationRequests(ctx, inv, request)
			return err
		})
		if err != nil {
			return nil, err
		}

		if err := result.Concat(tabular.QualificationRequests(res.QualificationRequests...)); err != nil {
			return nil, err
		}
		pager.add(int64(len(res.QualificationRequests)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}

// QualificationTypeByID looks up one qualification catalog entry.
func QualificationTypeByID(ctx context.Context, inv mturk.Invoker, qualificationTypeID string) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "QualificationTypeByID")
	defer span.End()

	if qualificationTypeID == "" {
		return nil, inputErrorf("qualification type id must not be empty")
	}

	res, err := mturk.GetQualificationType(ctx, inv, mturk.GetQualificationTypeRequest{
		QualificationTypeId: qualificationTypeID,
	})
	if err != nil {
		return nil, err
	}

	var types []mturk.QualificationType
	if res.QualificationType != nil {
		types = append(types, *res.QualificationType)
	}
	return tabular.QualificationTypes(types...), nil
}

// QualificationTypeSearchRequest describes a paged search over the
// qualification catalog.
type QualificationTypeSearchRequest struct {
	Query               *string
	MustBeRequestable   bool
	MustBeOwnedByCaller *bool
	PageSize            *int64
	MaxResults          *int64
	Retry               RetryOptions
}

// SearchQualificationTypes pages through the qualification catalog.
func SearchQualificationTypes(ctx context.Context, inv mturk.Invoker, req QualificationTypeSearchRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "SearchQualificationTypes")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	result := table.New(0, tabular.QualificationTypeColumns)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListQualificationTypesRequest{
			Query:               req.Query,
			MustBeRequestable:   req.MustBeRequestable,
			MustBeOwnedByCaller: req.MustBeOwnedByCaller,
			NextToken:           token,
			MaxResults:          &size,
		}
		var res mturk.ListQualificationTypesResponse
		err := callWithRetry(ctx, "ListQualificationTypes", "", req.Retry, func() error {
			var err error
			res, err = mturk.ListQualificationTypes(ctx, inv, request)
			return err
		})
		if err != nil {
			return nil, err
		}

		if err := result.Concat(tabular.QualificationTypes(res.QualificationTypes...)); err != nil {
			return nil, err
		}
		pager.add(int64(len(res.QualificationTypes)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}
