package tabular

import (
	"context"
	"turkdata/lib/mturk"
	"turkdata/lib/table"
)

// WorkerBlockColumns is the fixed column set of the worker block table.
var WorkerBlockColumns = []string{
	"WorkerId",
	"Reason",
}

func WorkerBlocks(blocks ...mturk.WorkerBlock) *table.Table {
	tbl := table.New(len(blocks), WorkerBlockColumns)
	for i, block := range blocks {
		tbl.Set(i, "WorkerId", optString(block.WorkerId))
		tbl.Set(i, "Reason", optString(block.Reason))
	}
	return tbl
}

// BonusPaymentColumns is the fixed column set of the bonus payment table.
var BonusPaymentColumns = []string{
	"AssignmentId",
	"WorkerId",
	"BonusAmount",
	"Reason",
	"GrantTime",
}

func BonusPayments(ctx context.Context, bonuses ...mturk.BonusPayment) *table.Table {
	tbl := table.New(len(bonuses), BonusPaymentColumns)
	for i, bonus := range bonuses {
		tbl.Set(i, "AssignmentId", optString(bonus.AssignmentId))
		tbl.Set(i, "WorkerId", optString(bonus.WorkerId))
		tbl.Set(i, "BonusAmount", optMoney(ctx, bonus.BonusAmount, "BonusAmount"))
		tbl.Set(i, "Reason", optString(bonus.Reason))
		tbl.Set(i, "GrantTime", optTime(bonus.GrantTime))
	}
	return tbl
}
