// Package collect assembles complete tabular result sets from the paged
// remote API: it drives repeated calls across parent HITs and result
// pages, flattens each page through the tabular converters, and
// accumulates the rows into running tables. One remote call is in flight
// at a time; rows are appended in input order.
package collect

import (
	"context"
	"log/slog"
	"time"
	"turkdata/lib/mturk"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("mturk/collect")

const (
	defaultPageSize = int64(100)
	maxPageSize     = int64(100)
	maxAttempts     = 5
	defaultBackoff  = time.Second * 2
)

// RetryOptions controls the per-call retry machine.
type RetryOptions struct {
	// RetryOnError opts into bounded retry with fixed backoff on
	// transient failures. When false, the first failure is surfaced
	// immediately.
	RetryOnError bool
	// Backoff is the fixed wait between attempts, 2s when unset.
	Backoff time.Duration
}

// callWithRetry runs one remote call under the retry policy. parentID
// names the parent the call was issued for and ends up in the terminal
// error when every attempt fails.
func callWithRetry(ctx context.Context, operation, parentID string, opts RetryOptions, call func() error) error {
	backoff := opts.Backoff
	if backoff == 0 {
		backoff = defaultBackoff
	}

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		attempts++
		err := call()
		if err == nil {
			return nil
		}
		if !opts.RetryOnError || !mturk.IsTransient(err) {
			return err
		}
		if attempts >= maxAttempts {
			return &RetryError{
				Operation: operation,
				ParentId:  parentID,
				Attempts:  attempts,
				Err:       err,
			}
		}

		slog.WarnContext(
			ctx, "remote call failed, retrying",
			"operation", operation,
			"parent", parentID,
			"attempt", attempts,
			"err", err,
		)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func normalizePageSize(size *int64) (int64, error) {
	if size == nil {
		return defaultPageSize, nil
	}
	if *size < 1 || *size > maxPageSize {
		return 0, inputErrorf("page size %d is outside [1, %d]", *size, maxPageSize)
	}
	return *size, nil
}

var validStatuses = map[string]bool{
	mturk.AssignmentStatusSubmitted: true,
	mturk.AssignmentStatusApproved:  true,
	mturk.AssignmentStatusRejected:  true,
}

func normalizeStatuses(statuses []string) ([]string, error) {
	if statuses == nil {
		return []string{
			mturk.AssignmentStatusSubmitted,
			mturk.AssignmentStatusApproved,
			mturk.AssignmentStatusRejected,
		}, nil
	}
	if len(statuses) == 0 {
		return nil, inputErrorf("status filter must not be empty")
	}
	for _, status := range statuses {
		if !validStatuses[status] {
			return nil, inputErrorf("unknown assignment status %q", status)
		}
	}
	return statuses, nil
}

// pager tracks cumulative rows against the caller's ceiling so no more
// than one page is ever fetched past it.
type pager struct {
	pageSize  int64
	ceiling   int64
	unbounded bool
	collected int64
}

func newPager(pageSize int64, maxResults *int64) (*pager, error) {
	p := &pager{pageSize: pageSize, unbounded: maxResults == nil}
	if maxResults != nil {
		if *maxResults < 1 {
			return nil, inputErrorf("max results %d must be at least 1", *maxResults)
		}
		p.ceiling = *maxResults
	}
	return p, nil
}

// next returns the size of the next page to request, or 0 when the
// ceiling has been reached.
func (p *pager) next() int64 {
	if p.unbounded {
		return p.pageSize
	}
	remaining := p.ceiling - p.collected
	if remaining <= 0 {
		return 0
	}
	if remaining < p.pageSize {
		return remaining
	}
	return p.pageSize
}

func (p *pager) add(rows int64) {
	p.collected += rows
}

func (p *pager) done() bool {
	return !p.unbounded && p.collected >= p.ceiling
}
