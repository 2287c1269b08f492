package collect

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/mturk/tabular"
	"turkdata/lib/table"
)

// AssignmentRequest describes one assignment collection run.
type AssignmentRequest struct {
	Selector Selector
	// Statuses filters assignments; nil means all of Submitted, Approved
	// and Rejected. An explicit filter must be a non-empty subset.
	Statuses []string
	// PageSize per remote call, in [1, 100]; nil means 100.
	PageSize *int64
	// MaxResults caps the cumulative row count across all parents; nil
	// means unbounded.
	MaxResults *int64
	// IncludeAnswers also derives the answer table from each
	// assignment's embedded answer document.
	IncludeAnswers bool
	Retry          RetryOptions
}

// AssignmentResult carries the assignment table and, when requested, the
// answer table derived from the embedded answer documents.
type AssignmentResult struct {
	Assignments *table.Table
	// Answers is nil unless IncludeAnswers was set.
	Answers *table.Table
}

// Assignments collects assignments for every parent the selector resolves
// to, following continuation tokens until each parent is exhausted or the
// cumulative ceiling is reached. The operation is all-or-nothing: any
// terminal remote failure aborts it without partial results.
func Assignments(ctx context.Context, inv mturk.Invoker, req AssignmentRequest) (AssignmentResult, error) {
	ctx, span := tracer.Start(ctx, "Assignments")
	defer span.End()

	pageSize, err := normalizePageSize(req.PageSize)
	if err != nil {
		return AssignmentResult{}, err
	}
	statuses, err := normalizeStatuses(req.Statuses)
	if err != nil {
		return AssignmentResult{}, err
	}
	pager, err := newPager(pageSize, req.MaxResults)
	if err != nil {
		return AssignmentResult{}, err
	}
	hitIDs, err := resolve(ctx, inv, req.Selector, pageSize, req.Retry)
	if err != nil {
		return AssignmentResult{}, err
	}

	result := AssignmentResult{
		Assignments: table.New(0, tabular.AssignmentColumns),
	}
	if req.IncludeAnswers {
		result.Answers = table.New(0, tabular.AnswerColumns)
	}

	for _, hitID := range hitIDs {
		if pager.done() {
			break
		}
		err := collectAssignmentsForHIT(ctx, inv, hitID, statuses, pager, req, &result)
		if err != nil {
			return AssignmentResult{}, err
		}
	}
	return result, nil
}

// collectAssignmentsForHIT runs the per-parent pagination loop.
func collectAssignmentsForHIT(
	ctx context.Context,
	inv mturk.Invoker,
	hitID string,
	statuses []string,
	pager *pager,
	req AssignmentRequest,
	result *AssignmentResult,
) error {
	var token *string
	for {
		size := pager.next()
		if size == 0 {
			return nil
		}

		request := mturk.ListAssignmentsForHITRequest{
			HITId:              hitID,
			NextToken:          token,
			MaxResults:         &size,
			AssignmentStatuses: statuses,
		}
		var res mturk.ListAssignmentsForHITResponse
		err := callWithRetry(ctx, "ListAssignmentsForHIT", hitID, req.Retry, func() error {
			var err error
			res, err = mturk.ListAssignmentsForHIT(ctx, inv, request)
			return err
		})
		if err != nil {
			return err
		}

		if req.IncludeAnswers {
			entity, answers := tabular.AssignmentsWithAnswers(ctx, res.Assignments...)
			if err := result.Assignments.Concat(entity); err != nil {
				return err
			}
			if err := result.Answers.Concat(answers); err != nil {
				return err
			}
		} else {
			if err := result.Assignments.Concat(tabular.Assignments(res.Assignments...)); err != nil {
				return err
			}
		}
		pager.add(int64(len(res.Assignments)))

		if res.NextToken == nil {
			return nil
		}
		token = res.NextToken
	}
}

// AssignmentByID looks up a single assignment. The answer table is always
// derived when the assignment carries an answer document.
func AssignmentByID(ctx context.Context, inv mturk.Invoker, assignmentID string) (AssignmentResult, error) {
	ctx, span := tracer.Start(ctx, "AssignmentByID")
	defer span.End()

	if assignmentID == "" {
		return AssignmentResult{}, inputErrorf("assignment id must not be empty")
	}

	res, err := mturk.GetAssignment(ctx, inv, mturk.GetAssignmentRequest{
		AssignmentId: assignmentID,
	})
	if err != nil {
		return AssignmentResult{}, err
	}

	var assignments []mturk.Assignment
	if res.Assignment != nil {
		assignments = append(assignments, *res.Assignment)
	}
	entity, answers := tabular.AssignmentsWithAnswers(ctx, assignments...)
	return AssignmentResult{Assignments: entity, Answers: answers}, nil
}
