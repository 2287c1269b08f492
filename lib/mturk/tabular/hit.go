package tabular

import (
	"strings"
	"turkdata/lib/mturk"
	"turkdata/lib/table"
)

// HITColumns is the fixed column set of the HIT table.
var HITColumns = []string{
	"HITId",
	"HITTypeId",
	"HITGroupId",
	"CreationTime",
	"Title",
	"Description",
	"Keywords",
	"HITStatus",
	"MaxAssignments",
	"Reward",
	"AutoApprovalDelayInSeconds",
	"Expiration",
	"AssignmentDurationInSeconds",
	"HITReviewStatus",
	"RequesterAnnotation",
	"NumberOfAssignmentsPending",
	"NumberOfAssignmentsAvailable",
	"NumberOfAssignmentsCompleted",
	"Question",
}

// HITs flattens HIT objects into one row each, in input order.
func HITs(hits ...mturk.HIT) *table.Table {
	tbl := table.New(len(hits), HITColumns)
	for i, hit := range hits {
		tbl.Set(i, "HITId", optString(hit.HITId))
		tbl.Set(i, "HITTypeId", optString(hit.HITTypeId))
		tbl.Set(i, "HITGroupId", optString(hit.HITGroupId))
		tbl.Set(i, "CreationTime", optTime(hit.CreationTime))
		tbl.Set(i, "Title", optString(hit.Title))
		tbl.Set(i, "Description", optString(hit.Description))
		tbl.Set(i, "Keywords", optString(hit.Keywords))
		tbl.Set(i, "HITStatus", optString(hit.HITStatus))
		tbl.Set(i, "MaxAssignments", optInt(hit.MaxAssignments))
		tbl.Set(i, "Reward", optString(hit.Reward))
		tbl.Set(i, "AutoApprovalDelayInSeconds", optInt(hit.AutoApprovalDelayInSeconds))
		tbl.Set(i, "Expiration", optTime(hit.Expiration))
		tbl.Set(i, "AssignmentDurationInSeconds", optInt(hit.AssignmentDurationInSeconds))
		tbl.Set(i, "HITReviewStatus", optString(hit.HITReviewStatus))
		tbl.Set(i, "RequesterAnnotation", optString(hit.RequesterAnnotation))
		tbl.Set(i, "NumberOfAssignmentsPending", optInt(hit.NumberOfAssignmentsPending))
		tbl.Set(i, "NumberOfAssignmentsAvailable", optInt(hit.NumberOfAssignmentsAvailable))
		tbl.Set(i, "NumberOfAssignmentsCompleted", optInt(hit.NumberOfAssignmentsCompleted))
		tbl.Set(i, "Question", optString(hit.Question))
	}
	return tbl
}

// ReviewableHITColumns is the fixed column set of the reviewable-HIT
// table; the remote layer only populates identifiers on these.
var ReviewableHITColumns = []string{
	"HITId",
	"HITTypeId",
}

// ReviewableHITs flattens the sparse HIT objects returned by the
// reviewable-HIT listing.
func ReviewableHITs(hits ...mturk.HIT) *table.Table {
	tbl := table.New(len(hits), ReviewableHITColumns)
	for i, hit := range hits {
		tbl.Set(i, "HITId", optString(hit.HITId))
		tbl.Set(i, "HITTypeId", optString(hit.HITTypeId))
	}
	return tbl
}

// QualificationRequirementColumns is the fixed column set of the
// per-HIT qualification requirement table.
var QualificationRequirementColumns = []string{
	"HITId",
	"QualificationTypeId",
	"Comparator",
	"Value",
	"RequiredToPreview",
	"ActionsGuarded",
}

// QualificationRequirements expands each HIT's requirement list to one
// row per requirement, with the HIT id denormalized onto every row. A HIT
// without requirements still yields exactly one row carrying only its id,
// so join cardinality against the HIT table stays predictable.
func QualificationRequirements(hits ...mturk.HIT) *table.Table {
	tbl := table.New(0, QualificationRequirementColumns)
	for _, hit := range hits {
		if len(hit.QualificationRequirements) == 0 {
			row := tbl.AppendRow()
			tbl.Set(row, "HITId", optString(hit.HITId))
			continue
		}
		for _, req := range hit.QualificationRequirements {
			row := tbl.AppendRow()
			tbl.Set(row, "HITId", optString(hit.HITId))
			tbl.Set(row, "QualificationTypeId", optString(req.QualificationTypeId))
			tbl.Set(row, "Comparator", optString(req.Comparator))
			tbl.Set(row, "Value", requirementValue(req))
			tbl.Set(row, "RequiredToPreview", optBool(req.RequiredToPreview))
			tbl.Set(row, "ActionsGuarded", optString(req.ActionsGuarded))
		}
	}
	return tbl
}

// requirementValue flattens a requirement's value to a single cell:
// integer values joined by commas, or locale values for the country-based
// comparators.
func requirementValue(req mturk.QualificationRequirement) any {
	if len(req.IntegerValues) > 0 {
		return joinInts(req.IntegerValues)
	}
	if len(req.LocaleValues) > 0 {
		parts := make([]string, len(req.LocaleValues))
		for i, locale := range req.LocaleValues {
			parts[i] = localeValue(locale)
		}
		return strings.Join(parts, ",")
	}
	return nil
}
