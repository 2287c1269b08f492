package tabular

import (
	"turkdata/lib/mturk"
	"turkdata/lib/table"
)

// QualificationTypeColumns is the fixed column set of the qualification
// catalog table.
var QualificationTypeColumns = []string{
	"QualificationTypeId",
	"CreationTime",
	"Name",
	"Description",
	"Keywords",
	"QualificationTypeStatus",
	"Test",
	"TestDurationInSeconds",
	"AnswerKey",
	"RetryDelayInSeconds",
	"IsRequestable",
	"AutoGranted",
	"AutoGrantedValue",
}

func QualificationTypes(types ...mturk.QualificationType) *table.Table {
	tbl := table.New(len(types), QualificationTypeColumns)
	for i, qt := range types {
		tbl.Set(i, "QualificationTypeId", optString(qt.QualificationTypeId))
		tbl.Set(i, "CreationTime", optTime(qt.CreationTime))
		tbl.Set(i, "Name", optString(qt.Name))
		tbl.Set(i, "Description", optString(qt.Description))
		tbl.Set(i, "Keywords", optString(qt.Keywords))
		tbl.Set(i, "QualificationTypeStatus", optString(qt.QualificationTypeStatus))
		tbl.Set(i, "Test", optString(qt.Test))
		tbl.Set(i, "TestDurationInSeconds", optInt(qt.TestDurationInSeconds))
		tbl.Set(i, "AnswerKey", optString(qt.AnswerKey))
		tbl.Set(i, "RetryDelayInSeconds", optInt(qt.RetryDelayInSeconds))
		tbl.Set(i, "IsRequestable", optBool(qt.IsRequestable))
		tbl.Set(i, "AutoGranted", optBool(qt.AutoGranted))
		tbl.Set(i, "AutoGrantedValue", optInt(qt.AutoGrantedValue))
	}
	return tbl
}

// QualificationColumns is the fixed column set of the held-qualification
// table. Value carries either the integer score or the flattened locale,
// whichever the qualification holds.
var QualificationColumns = []string{
	"QualificationTypeId",
	"WorkerId",
	"GrantTime",
	"Value",
	"Status",
}

func Qualifications(qualifications ...mturk.Qualification) *table.Table {
	tbl := table.New(len(qualifications), QualificationColumns)
	for i, q := range qualifications {
		tbl.Set(i, "QualificationTypeId", optString(q.QualificationTypeId))
		tbl.Set(i, "WorkerId", optString(q.WorkerId))
		tbl.Set(i, "GrantTime", optTime(q.GrantTime))
		tbl.Set(i, "Value", qualificationValue(q))
		tbl.Set(i, "Status", optString(q.Status))
	}
	return tbl
}

func qualificationValue(q mturk.Qualification) any {
	if q.IntegerValue != nil {
		return *q.IntegerValue
	}
	if q.LocaleValue != nil {
		if flat := localeValue(*q.LocaleValue); flat != "" {
			return flat
		}
	}
	return nil
}

// QualificationRequestColumns is the fixed column set of the pending
// qualification request table.
var QualificationRequestColumns = []string{
	"QualificationRequestId",
	"QualificationTypeId",
	"WorkerId",
	"Test",
	"Answer",
	"SubmitTime",
}

func QualificationRequests(requests ...mturk.QualificationRequest) *table.Table {
	tbl := table.New(len(requests), QualificationRequestColumns)
	for i, req := range requests {
		tbl.Set(i, "QualificationRequestId", optString(req.QualificationRequestId))
		tbl.Set(i, "QualificationTypeId", optString(req.QualificationTypeId))
		tbl.Set(i, "WorkerId", optString(req.WorkerId))
		tbl.Set(i, "Test", optString(req.Test))
		tbl.Set(i, "Answer", optString(req.Answer))
		tbl.Set(i, "SubmitTime", optTime(req.SubmitTime))
	}
	return tbl
}
