package mturk

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
	"turkdata/lib/chrono"
)

// Timestamp handles both instant encodings the requester API emits:
// epoch seconds (possibly fractional) and ISO strings.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var epoch float64
	if err := json.Unmarshal(data, &epoch); err == nil {
		sec, frac := math.Modf(epoch)
		*t = Timestamp(time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC())
		return nil
	}
	var tstr string
	if err := json.Unmarshal(data, &tstr); err != nil {
		return fmt.Errorf("timestamp is neither a number nor a string: %w", err)
	}
	parsed, err := chrono.DecodeTimestamp(tstr)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

func (t Timestamp) MarshalJSON() (data []byte, err error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

// Assignment statuses as the API spells them.
const (
	AssignmentStatusSubmitted = "Submitted"
	AssignmentStatusApproved  = "Approved"
	AssignmentStatusRejected  = "Rejected"
)

type Locale struct {
	Country     *string `json:"Country,omitempty"`
	Subdivision *string `json:"Subdivision,omitempty"`
}

type QualificationRequirement struct {
	QualificationTypeId *string  `json:"QualificationTypeId,omitempty"`
	Comparator          *string  `json:"Comparator,omitempty"`
	IntegerValues       []int64  `json:"IntegerValues,omitempty"`
	LocaleValues        []Locale `json:"LocaleValues,omitempty"`
	RequiredToPreview   *bool    `json:"RequiredToPreview,omitempty"`
	ActionsGuarded      *string  `json:"ActionsGuarded,omitempty"`
}

type HIT struct {
	HITId                        *string                    `json:"HITId,omitempty"`
	HITTypeId                    *string                    `json:"HITTypeId,omitempty"`
	HITGroupId                   *string                    `json:"HITGroupId,omitempty"`
	HITLayoutId                  *string                    `json:"HITLayoutId,omitempty"`
	CreationTime                 *Timestamp                 `json:"CreationTime,omitempty"`
	Title                        *string                    `json:"Title,omitempty"`
	Description                  *string                    `json:"Description,omitempty"`
	Question                     *string                    `json:"Question,omitempty"`
	Keywords                     *string                    `json:"Keywords,omitempty"`
	HITStatus                    *string                    `json:"HITStatus,omitempty"`
	MaxAssignments               *int64                     `json:"MaxAssignments,omitempty"`
	Reward                       *string                    `json:"Reward,omitempty"`
	AutoApprovalDelayInSeconds   *int64                     `json:"AutoApprovalDelayInSeconds,omitempty"`
	Expiration                   *Timestamp                 `json:"Expiration,omitempty"`
	AssignmentDurationInSeconds  *int64                     `json:"AssignmentDurationInSeconds,omitempty"`
	RequesterAnnotation          *string                    `json:"RequesterAnnotation,omitempty"`
	QualificationRequirements    []QualificationRequirement `json:"QualificationRequirements,omitempty"`
	HITReviewStatus              *string                    `json:"HITReviewStatus,omitempty"`
	NumberOfAssignmentsPending   *int64                     `json:"NumberOfAssignmentsPending,omitempty"`
	NumberOfAssignmentsAvailable *int64                     `json:"NumberOfAssignmentsAvailable,omitempty"`
	NumberOfAssignmentsCompleted *int64                     `json:"NumberOfAssignmentsCompleted,omitempty"`
}

type Assignment struct {
	AssignmentId      *string    `json:"AssignmentId,omitempty"`
	WorkerId          *string    `json:"WorkerId,omitempty"`
	HITId             *string    `json:"HITId,omitempty"`
	AssignmentStatus  *string    `json:"AssignmentStatus,omitempty"`
	AutoApprovalTime  *Timestamp `json:"AutoApprovalTime,omitempty"`
	AcceptTime        *Timestamp `json:"AcceptTime,omitempty"`
	SubmitTime        *Timestamp `json:"SubmitTime,omitempty"`
	ApprovalTime      *Timestamp `json:"ApprovalTime,omitempty"`
	RejectionTime     *Timestamp `json:"RejectionTime,omitempty"`
	Deadline          *Timestamp `json:"Deadline,omitempty"`
	Answer            *string    `json:"Answer,omitempty"`
	RequesterFeedback *string    `json:"RequesterFeedback,omitempty"`
}

type QualificationType struct {
	QualificationTypeId     *string    `json:"QualificationTypeId,omitempty"`
	CreationTime            *Timestamp `json:"CreationTime,omitempty"`
	Name                    *string    `json:"Name,omitempty"`
	Description             *string    `json:"Description,omitempty"`
	Keywords                *string    `json:"Keywords,omitempty"`
	QualificationTypeStatus *string    `json:"QualificationTypeStatus,omitempty"`
	Test                    *string    `json:"Test,omitempty"`
	TestDurationInSeconds   *int64     `json:"TestDurationInSeconds,omitempty"`
	AnswerKey               *string    `json:"AnswerKey,omitempty"`
	RetryDelayInSeconds     *int64     `json:"RetryDelayInSeconds,omitempty"`
	IsRequestable           *bool      `json:"IsRequestable,omitempty"`
	AutoGranted             *bool      `json:"AutoGranted,omitempty"`
	AutoGrantedValue        *int64     `json:"AutoGrantedValue,omitempty"`
}

type Qualification struct {
	QualificationTypeId *string    `json:"QualificationTypeId,omitempty"`
	WorkerId            *string    `json:"WorkerId,omitempty"`
	GrantTime           *Timestamp `json:"GrantTime,omitempty"`
	IntegerValue        *int64     `json:"IntegerValue,omitempty"`
	LocaleValue         *Locale    `json:"LocaleValue,omitempty"`
	Status              *string    `json:"Status,omitempty"`
}

type QualificationRequest struct {
	QualificationRequestId *string    `json:"QualificationRequestId,omitempty"`
	QualificationTypeId    *string    `json:"QualificationTypeId,omitempty"`
	WorkerId               *string    `json:"WorkerId,omitempty"`
	Test                   *string    `json:"Test,omitempty"`
	Answer                 *string    `json:"Answer,omitempty"`
	SubmitTime             *Timestamp `json:"SubmitTime,omitempty"`
}

type WorkerBlock struct {
	WorkerId *string `json:"WorkerId,omitempty"`
	Reason   *string `json:"Reason,omitempty"`
}

type BonusPayment struct {
	WorkerId     *string    `json:"WorkerId,omitempty"`
	BonusAmount  *string    `json:"BonusAmount,omitempty"`
	AssignmentId *string    `json:"AssignmentId,omitempty"`
	Reason       *string    `json:"Reason,omitempty"`
	GrantTime    *Timestamp `json:"GrantTime,omitempty"`
}

type PolicyParameter struct {
	Key    *string  `json:"Key,omitempty"`
	Values []string `json:"Values,omitempty"`
}

type ReviewPolicy struct {
	PolicyName *string           `json:"PolicyName,omitempty"`
	Parameters []PolicyParameter `json:"Parameters,omitempty"`
}

type ReviewResultDetail struct {
	ActionId    *string `json:"ActionId,omitempty"`
	SubjectId   *string `json:"SubjectId,omitempty"`
	SubjectType *string `json:"SubjectType,omitempty"`
	QuestionId  *string `json:"QuestionId,omitempty"`
	Key         *string `json:"Key,omitempty"`
	Value       *string `json:"Value,omitempty"`
}

type ReviewActionDetail struct {
	ActionId     *string    `json:"ActionId,omitempty"`
	ActionName   *string    `json:"ActionName,omitempty"`
	TargetId     *string    `json:"TargetId,omitempty"`
	TargetType   *string    `json:"TargetType,omitempty"`
	Status       *string    `json:"Status,omitempty"`
	CompleteTime *Timestamp `json:"CompleteTime,omitempty"`
	Result       *string    `json:"Result,omitempty"`
	ErrorCode    *string    `json:"ErrorCode,omitempty"`
}

type ReviewReport struct {
	ReviewResults []ReviewResultDetail `json:"ReviewResults,omitempty"`
	ReviewActions []ReviewActionDetail `json:"ReviewActions,omitempty"`
}
