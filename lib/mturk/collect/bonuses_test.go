package collect

import (
	"context"
	"testing"
	"turkdata/lib/mturk"

	"github.com/stretchr/testify/require"
)

func bonus(workerID, amount string) mturk.BonusPayment {
	return mturk.BonusPayment{
		WorkerId:    strptr(workerID),
		BonusAmount: strptr(amount),
		Reason:      strptr("good work"),
	}
}

func TestBonusPaymentsParentValidation(t *testing.T) {
	fake := &fakeInvoker{}

	_, err := BonusPayments(context.Background(), fake, BonusPaymentRequest{})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = BonusPayments(context.Background(), fake, BonusPaymentRequest{
		HITIDs:        []string{"H1"},
		AssignmentIDs: []string{"A1"},
	})
	require.ErrorAs(t, err, &inputErr)
	require.Empty(t, fake.calls)
}

func TestBonusPaymentsByHIT(t *testing.T) {
	fake := &fakeInvoker{
		bonusesByHIT: map[string][]mturk.BonusPayment{
			"H1": {bonus("W1", "1.50"), bonus("W2", "0.75")},
			"H2": {bonus("W3", "2.00")},
		},
	}

	res, err := BonusPayments(context.Background(), fake, BonusPaymentRequest{
		HITIDs: []string{"H1", "H2"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.NumRows())

	amount, ok := res.FloatAt(0, "BonusAmount")
	require.True(t, ok)
	require.Equal(t, 1.5, amount)
	worker, ok := res.StringAt(2, "WorkerId")
	require.True(t, ok)
	require.Equal(t, "W3", worker)
}

func TestBonusPaymentsByAssignment(t *testing.T) {
	fake := &fakeInvoker{
		bonusesByAssignment: map[string][]mturk.BonusPayment{
			"A1": {bonus("W1", "0.25")},
		},
	}

	res, err := BonusPayments(context.Background(), fake, BonusPaymentRequest{
		AssignmentIDs: []string{"A1"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.NumRows())
}

func TestBonusPaymentsCeiling(t *testing.T) {
	fake := &fakeInvoker{
		bonusesByHIT: map[string][]mturk.BonusPayment{
			"H1": {bonus("W1", "1.00"), bonus("W2", "1.00"), bonus("W3", "1.00")},
			"H2": {bonus("W4", "1.00")},
		},
	}

	res, err := BonusPayments(context.Background(), fake, BonusPaymentRequest{
		HITIDs:     []string{"H1", "H2"},
		MaxResults: i64ptr(2),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.NumRows())
	// the second parent is never touched once the cap is hit
	require.Equal(t, 1, fake.callCount("ListBonusPayments"))
}

func TestBlockedWorkers(t *testing.T) {
	fake := &fakeInvoker{
		blocks: []mturk.WorkerBlock{
			{WorkerId: strptr("W1"), Reason: strptr("spam")},
			{WorkerId: strptr("W2")},
			{WorkerId: strptr("W3"), Reason: strptr("low quality")},
		},
	}

	res, err := BlockedWorkers(context.Background(), fake, BlockedWorkersRequest{PageSize: i64ptr(2)})
	require.NoError(t, err)
	require.Equal(t, 3, res.NumRows())
	require.Equal(t, 2, fake.callCount("ListWorkerBlocks"))
	require.True(t, res.IsNull(1, "Reason"))
}
