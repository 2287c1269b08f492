package tabular

import (
	"context"
	"log/slog"
	"turkdata/lib/mturk"
	"turkdata/lib/table"
)

// AssignmentColumns is the fixed column set of the assignment table. The
// raw answer payload is consumed by the answer parser rather than carried
// as a column.
var AssignmentColumns = []string{
	"AssignmentId",
	"WorkerId",
	"HITId",
	"AssignmentStatus",
	"AutoApprovalTime",
	"AcceptTime",
	"SubmitTime",
	"ApprovalTime",
	"RejectionTime",
	"RequesterFeedback",
}

// Assignments flattens assignments into one row each, in input order. The
// embedded answer documents are left alone; use AssignmentsWithAnswers to
// expand them.
func Assignments(assignments ...mturk.Assignment) *table.Table {
	entity := table.New(len(assignments), AssignmentColumns)
	for i, assign := range assignments {
		entity.Set(i, "AssignmentId", optString(assign.AssignmentId))
		entity.Set(i, "WorkerId", optString(assign.WorkerId))
		entity.Set(i, "HITId", optString(assign.HITId))
		entity.Set(i, "AssignmentStatus", optString(assign.AssignmentStatus))
		entity.Set(i, "AutoApprovalTime", optTime(assign.AutoApprovalTime))
		entity.Set(i, "AcceptTime", optTime(assign.AcceptTime))
		entity.Set(i, "SubmitTime", optTime(assign.SubmitTime))
		entity.Set(i, "ApprovalTime", optTime(assign.ApprovalTime))
		entity.Set(i, "RejectionTime", optTime(assign.RejectionTime))
		entity.Set(i, "RequesterFeedback", optString(assign.RequesterFeedback))
	}
	return entity
}

// AssignmentsWithAnswers additionally expands every embedded answer
// document into the answer table. A malformed answer document only drops
// that assignment's answer rows; the assignment row itself and all other
// assignments are kept.
func AssignmentsWithAnswers(ctx context.Context, assignments ...mturk.Assignment) (entity *table.Table, answers *table.Table) {
	ctx, span := tracer.Start(ctx, "AssignmentsWithAnswers")
	defer span.End()

	entity = Assignments(assignments...)
	answers = table.New(0, AnswerColumns)

	for _, assign := range assignments {
		if assign.Answer == nil {
			continue
		}
		parsed, err := ParseAnswers(
			deref(assign.AssignmentId),
			deref(assign.WorkerId),
			deref(assign.HITId),
			*assign.Answer,
		)
		if err != nil {
			slog.WarnContext(
				ctx, "failed to parse answer document",
				"assignment", deref(assign.AssignmentId),
				"err", err,
			)
			continue
		}
		if err := answers.Concat(parsed); err != nil {
			// both tables are built from AnswerColumns, a mismatch here
			// cannot happen
			panic(err)
		}
	}
	return entity, answers
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
