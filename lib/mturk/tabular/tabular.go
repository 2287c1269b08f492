// Package tabular flattens the remote layer's nested response objects
// into fixed-column tables. Every converter declares its column set up
// front and produces one row per input object in input order; fields
// absent from the input become null cells, never missing columns.
package tabular

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"turkdata/lib/mturk"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("mturk/tabular")

func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optInt(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

func optBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

func optTime(t *mturk.Timestamp) any {
	if t == nil {
		return nil
	}
	return t.Time()
}

// optMoney coerces the API's string-typed currency amounts to float64.
// Malformed amounts become null.
func optMoney(ctx context.Context, s *string, field string) any {
	if s == nil {
		return nil
	}
	amount, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse currency amount", "field", field, "value", *s, "err", err)
		return nil
	}
	return amount
}

// localeValue flattens a locale to the "Country" or "Country-Subdivision"
// notation used in requirement and qualification value columns.
func localeValue(l mturk.Locale) string {
	if l.Country == nil {
		return ""
	}
	if l.Subdivision == nil || *l.Subdivision == "" {
		return *l.Country
	}
	return *l.Country + "-" + *l.Subdivision
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
