package collect

import (
	"context"
	"log/slog"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/qdoc"
	"turkdata/lib/table"
)

// HITResult carries the HIT table together with the per-HIT qualification
// requirement table, and optionally the derived question text table.
type HITResult struct {
	HITs                      *table.Table
	QualificationRequirements *table.Table
	// QuestionTexts is nil unless IncludeQuestionText was set. Columns:
	// HITId, QuestionText.
	QuestionTexts *table.Table
}

// QuestionTextColumns is the column set of the derived question text
// table.
var QuestionTextColumns = []string{"HITId", "QuestionText"}

type HITOptions struct {
	// IncludeQuestionText extracts the human-readable text of each HIT's
	// question document into a separate table.
	IncludeQuestionText bool
}

func newHITResult(opts HITOptions) HITResult {
	result := HITResult{
		HITs:                      table.New(0, tabular.HITColumns),
		QualificationRequirements: table.New(0, tabular.QualificationRequirementColumns),
	}
	if opts.IncludeQuestionText {
		result.QuestionTexts = table.New(0, QuestionTextColumns)
	}
	return result
}

func (r *HITResult) add(ctx context.Context, hits ...mturk.HIT) error {
	if err := r.HITs.Concat(tabular.HITs(hits...)); err != nil {
		return err
	}
	if err := r.QualificationRequirements.Concat(tabular.QualificationRequirements(hits...)); err != nil {
		return err
	}
	if r.QuestionTexts == nil {
		return nil
	}

	for _, hit := range hits {
		row := r.QuestionTexts.AppendRow()
		if hit.HITId != nil {
			r.QuestionTexts.Set(row, "HITId", *hit.HITId)
		}
		if hit.Question == nil {
			continue
		}
		text, err := qdoc.PlainText(*hit.Question)
		if err != nil {
			slog.WarnContext(
				ctx, "failed to extract question text",
				"hit", hit.HITId,
				"err", err,
			)
			continue
		}
		r.QuestionTexts.Set(row, "QuestionText", text)
	}
	return nil
}

// HITByID looks up one HIT and flattens it.
func HITByID(ctx context.Context, inv mturk.Invoker, hitID string, opts HITOptions) (HITResult, error) {
	ctx, span := tracer.Start(ctx, "HITByID")
	defer span.End()

	if hitID == "" {
		return HITResult{}, inputErrorf("hit id must not be empty")
	}

	res, err := mturk.GetHIT(ctx, inv, mturk.GetHITRequest{HITId: hitID})
	if err != nil {
		return HITResult{}, err
	}

	result := newHITResult(opts)
	var hits []mturk.HIT
	if res.HIT != nil {
		hits = append(hits, *res.HIT)
	}
	if err := result.add(ctx, hits...); err != nil {
		return HITResult{}, err
	}
	return result, nil
}

// HITListRequest describes a paged collection over the requester's HITs.
type HITListRequest struct {
	PageSize   *int64
	MaxResults *int64
	Options    HITOptions
	Retry      RetryOptions
}

// AllHITs pages through every HIT belonging to the requester.
func AllHITs(ctx context.Context, inv mturk.Invoker, req HITListRequest) (HITResult, error) {
	ctx, span := tracer.Start(ctx, "AllHITs")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return HITResult{}, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return HITResult{}, err
	}

	result := newHITResult(req.Options)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListHITsRequest{NextToken: token, MaxResults: &size}
		var res mturk.ListHITsResponse
		err := callWithRetry(ctx, "ListHITs", "", req.Retry, func() error {
			var err error
			res, err = mturk.ListHITs(ctx, inv, request)
			return err
		})
		if err != nil {
			return HITResult{}, err
		}

		if err := result.add(ctx, res.HITs...); err != nil {
			return HITResult{}, err
		}
		pager.add(int64(len(res.HITs)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}

// ReviewableHITsRequest describes a paged collection over the HITs with
// reviewable status.
type ReviewableHITsRequest struct {
	// HITTypeID restricts the listing to one HIT type when set.
	HITTypeID *string
	// Status is Reviewable or Reviewing; nil lets the remote default
	// (Reviewable) apply.
	Status     *string
	PageSize   *int64
	MaxResults *int64
	Retry      RetryOptions
}

// ReviewableHITs pages through the reviewable-HIT listing.
func ReviewableHITs(ctx context.Context, inv mturk.Invoker, req ReviewableHITsRequest) (*table.Table, error) {
	ctx, span := tracer.Start(ctx, "ReviewableHITs")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return nil, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return nil, err
	}

	result := table.New(0, tabular.ReviewableHITColumns)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListReviewableHITsRequest{
			HITTypeId:  req.HITTypeID,
			Status:     req.Status,
			NextToken:  token,
			MaxResults: &size,
		}
		var res mturk.ListReviewableHITsResponse
		err := callWithRetry(ctx, "ListReviewableHITs", "", req.Retry, func() error {
			var err error
			res, err = mturk.ListReviewableHITs(ctx, inv, request)
			return err
		})
		if err != nil {
			return nil, err
		}

		if err := result.Concat(tabular.ReviewableHITs(res.HITs...)); err != nil {
			return nil, err
		}
		pager.add(int64(len(res.HITs)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}

// HITsForQualificationType pages through the HITs gated on one
// qualification type.
func HITsForQualificationType(ctx context.Context, inv mturk.Invoker, qualificationTypeID string, req HITListRequest) (HITResult, error) {
	ctx, span := tracer.Start(ctx, "HITsForQualificationType")
	defer span.End()

	if qualificationTypeID == "" {
		return HITResult{}, inputErrorf("qualification type id must not be empty")
	}
	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return HITResult{}, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return HITResult{}, err
	}

	result := newHITResult(req.Options)
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			break
		}

		request := mturk.ListHITsForQualificationTypeRequest{
			QualificationTypeId: qualificationTypeID,
			NextToken:           token,
			MaxResults:          &size,
		}
		var res mturk.ListHITsForQualificationTypeResponse
		err := callWithRetry(ctx, "ListHITsForQualificationType", qualificationTypeID, req.Retry, func() error {
			var err error
			res, err = mturk.ListHITsForQualificationType(ctx, inv, request)
			return err
		})
		if err != nil {
			return HITResult{}, err
		}

		if err := result.add(ctx, res.HITs...); err != nil {
			return HITResult{}, err
		}
		pager.add(int64(len(res.HITs)))

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}
	return result, nil
}
