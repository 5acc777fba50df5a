// Package cursor implements the result cursors of a statement execution:
// a lazy streaming cursor, a background-prefetching variant and a fully
// materialized buffered cursor.
package cursor

import (
	"context"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
)

//go:generate mockgen -destination pager_mock_test.go -package cursor -source cursor.go -write_package_comment=false

// Pager fetches result pages of one statement within one transaction.
type Pager interface {
	FetchPage(ctx context.Context, nextPageToken string) (*endpoint.FetchPageResult, error)
}

// Cursor iterates over the rows of one statement's result set. Rows are
// opaque encoded values.
type Cursor interface {
	// Next advances to the next row. It returns false when the result set is
	// exhausted or an error occurred; Err tells the two apart.
	Next(ctx context.Context) bool

	// Value returns the row the cursor is currently on.
	Value() []byte

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases the cursor. Closing is idempotent.
	Close()

	// ConsumedIOs returns accumulated server-side IO usage, or nil if the
	// endpoint never reported any.
	ConsumedIOs() *endpoint.IOUsage

	// TimingInformation returns accumulated server-side processing time, or
	// nil if the endpoint never reported any.
	TimingInformation() *endpoint.TimingInformation
}

// Live is implemented by cursors whose iteration still depends on an open
// transaction. A live cursor returned from a transaction function must be
// buffered before commit.
type Live interface {
	Cursor

	liveCursor()
}

// stats accumulates optional per-page metrics into running totals. A metric
// reported by a later page adds onto, never resets, an existing total.
type stats struct {
	readIOs      *int64
	writeIOs     *int64
	processingMs *int64
}

func (s *stats) accumulate(ios *endpoint.IOUsage, timing *endpoint.TimingInformation) {
	if ios != nil {
		addTo(&s.readIOs, ios.ReadIOs)
		addTo(&s.writeIOs, ios.WriteIOs)
	}
	if timing != nil {
		addTo(&s.processingMs, timing.ProcessingTimeMilliseconds)
	}
}

func (s *stats) consumedIOs() *endpoint.IOUsage {
	if s.readIOs == nil && s.writeIOs == nil {
		return nil
	}

	return &endpoint.IOUsage{
		ReadIOs:  copyInt64(s.readIOs),
		WriteIOs: copyInt64(s.writeIOs),
	}
}

func (s *stats) timingInformation() *endpoint.TimingInformation {
	if s.processingMs == nil {
		return nil
	}

	return &endpoint.TimingInformation{
		ProcessingTimeMilliseconds: copyInt64(s.processingMs),
	}
}

func addTo(total **int64, v *int64) {
	if v == nil {
		return
	}
	if *total == nil {
		n := *v
		*total = &n

		return
	}
	**total += *v
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v

	return &n
}
