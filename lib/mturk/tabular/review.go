package tabular

import (
	"turkdata/lib/mturk"
	"turkdata/lib/table"
)

// ReviewResultColumns is the fixed column set of the review result table.
// The parent HIT id and the policy name are denormalized onto every row.
var ReviewResultColumns = []string{
	"HITId",
	"PolicyName",
	"ActionId",
	"SubjectId",
	"SubjectType",
	"QuestionId",
	"Key",
	"Value",
}

// ReviewActionColumns is the fixed column set of the review action table.
var ReviewActionColumns = []string{
	"HITId",
	"PolicyName",
	"ActionId",
	"ActionName",
	"TargetId",
	"TargetType",
	"Status",
	"CompleteTime",
	"Result",
	"ErrorCode",
}

// ReviewReportTables expands one review report into its result and action
// tables. hitID and policy identify the parent HIT and the review policy
// the report was produced by.
func ReviewReportTables(hitID string, policy *mturk.ReviewPolicy, report *mturk.ReviewReport) (results *table.Table, actions *table.Table) {
	results = table.New(0, ReviewResultColumns)
	actions = table.New(0, ReviewActionColumns)
	if report == nil {
		return results, actions
	}

	var policyName any
	if policy != nil {
		policyName = optString(policy.PolicyName)
	}

	for _, result := range report.ReviewResults {
		row := results.AppendRow()
		results.Set(row, "HITId", hitID)
		results.Set(row, "PolicyName", policyName)
		results.Set(row, "ActionId", optString(result.ActionId))
		results.Set(row, "SubjectId", optString(result.SubjectId))
		results.Set(row, "SubjectType", optString(result.SubjectType))
		results.Set(row, "QuestionId", optString(result.QuestionId))
		results.Set(row, "Key", optString(result.Key))
		results.Set(row, "Value", optString(result.Value))
	}

	for _, action := range report.ReviewActions {
		row := actions.AppendRow()
		actions.Set(row, "HITId", hitID)
		actions.Set(row, "PolicyName", policyName)
		actions.Set(row, "ActionId", optString(action.ActionId))
		actions.Set(row, "ActionName", optString(action.ActionName))
		actions.Set(row, "TargetId", optString(action.TargetId))
		actions.Set(row, "TargetType", optString(action.TargetType))
		actions.Set(row, "Status", optString(action.Status))
		actions.Set(row, "CompleteTime", optTime(action.CompleteTime))
		actions.Set(row, "Result", optString(action.Result))
		actions.Set(row, "ErrorCode", optString(action.ErrorCode))
	}

	return results, actions
}
