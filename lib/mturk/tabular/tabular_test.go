package tabular

import (
	"time"
	"turkdata/lib/mturk"
)

func strptr(s string) *string {
	return &s
}

func intptr(i int64) *int64 {
	return &i
}

func boolptr(b bool) *bool {
	return &b
}

func tsptr(t time.Time) *mturk.Timestamp {
	ts := mturk.Timestamp(t)
	return &ts
}
