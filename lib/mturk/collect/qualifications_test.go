package collect

import (
	"context"
	"testing"
	"turkdata/lib/mturk"

	"github.com/stretchr/testify/require"
)

func TestQualificationsForType(t *testing.T) {
	fake := &fakeInvoker{
		qualifications: map[string][]mturk.Qualification{
			"Q1": {
				{
					QualificationTypeId: strptr("Q1"),
					WorkerId:            strptr("W1"),
					IntegerValue:        i64ptr(92),
					Status:              strptr("Granted"),
				},
				{
					QualificationTypeId: strptr("Q1"),
					WorkerId:            strptr("W2"),
					LocaleValue:         &mturk.Locale{Country: strptr("US"), Subdivision: strptr("CA")},
					Status:              strptr("Granted"),
				},
			},
		},
	}

	res, err := QualificationsForType(context.Background(), fake, QualificationsRequest{
		QualificationTypeID: "Q1",
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.NumRows())

	value, ok := res.IntAt(0, "Value")
	require.True(t, ok)
	require.Equal(t, int64(92), value)
	locale, ok := res.StringAt(1, "Value")
	require.True(t, ok)
	require.Equal(t, "US-CA", locale)
}

func TestQualificationsForTypeEmptyID(t *testing.T) {
	fake := &fakeInvoker{}

	_, err := QualificationsForType(context.Background(), fake, QualificationsRequest{})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Empty(t, fake.calls)
}

func TestQualificationRequests(t *testing.T) {
	fake := &fakeInvoker{
		qualificationRequests: []mturk.QualificationRequest{
			{
				QualificationRequestId: strptr("R1"),
				QualificationTypeId:    strptr("Q1"),
				WorkerId:               strptr("W1"),
			},
			{
				QualificationRequestId: strptr("R2"),
				QualificationTypeId:    strptr("Q1"),
				WorkerId:               strptr("W2"),
			},
		},
	}

	res, err := QualificationRequests(context.Background(), fake, QualificationRequestsRequest{
		QualificationTypeID: strptr("Q1"),
		PageSize:            i64ptr(1),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.NumRows())
	require.Equal(t, 2, fake.callCount("ListQualificationRequests"))
}

func TestQualificationTypeByID(t *testing.T) {
	fake := &fakeInvoker{
		qualificationTypes: []mturk.QualificationType{
			{QualificationTypeId: strptr("Q1"), Name: strptr("Accuracy")},
		},
	}

	res, err := QualificationTypeByID(context.Background(), fake, "Q1")
	require.NoError(t, err)
	require.Equal(t, 1, res.NumRows())
	name, ok := res.StringAt(0, "Name")
	require.True(t, ok)
	require.Equal(t, "Accuracy", name)

	missing, err := QualificationTypeByID(context.Background(), fake, "Q9")
	require.NoError(t, err)
	require.Equal(t, 0, missing.NumRows())

	_, err = QualificationTypeByID(context.Background(), fake, "")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestSearchQualificationTypes(t *testing.T) {
	fake := &fakeInvoker{
		qualificationTypes: []mturk.QualificationType{
			{QualificationTypeId: strptr("Q1"), Name: strptr("Accuracy")},
			{QualificationTypeId: strptr("Q2"), Name: strptr("Speed")},
			{QualificationTypeId: strptr("Q3"), Name: strptr("Locale")},
		},
	}

	res, err := SearchQualificationTypes(context.Background(), fake, QualificationTypeSearchRequest{
		MustBeRequestable: true,
		MaxResults:        i64ptr(2),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.NumRows())
}
