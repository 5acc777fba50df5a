package cursor

import (
	"context"
	"sync/atomic"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

var (
	_ Cursor = (*Stream)(nil)
	_ Live   = (*Stream)(nil)
)

// Stream pulls result pages synchronously on the caller's goroutine as the
// current page is consumed.
type Stream struct {
	pager   Pager
	page    endpoint.Page
	index   int
	current []byte
	err     error
	closed  atomic.Bool
	stats   stats
}

func NewStream(result *endpoint.ExecuteStatementResult, pager Pager) *Stream {
	s := &Stream{
		pager: pager,
		page:  result.FirstPage,
	}
	s.stats.accumulate(result.ConsumedIOs, result.TimingInformation)

	return s
}

func (s *Stream) Next(ctx context.Context) bool {
	if s.err != nil {
		return false
	}
	if s.closed.Load() {
		s.err = xerrors.WithStackTrace(xerrors.ErrResultClosed)

		return false
	}
	// Empty intermediate pages are skipped transparently.
	for s.index >= len(s.page.Values) {
		if s.page.NextPageToken == nil {
			return false
		}
		if err := s.nextPage(ctx); err != nil {
			s.err = err

			return false
		}
	}
	s.current = s.page.Values[s.index]
	s.index++

	return true
}

func (s *Stream) nextPage(ctx context.Context) error {
	result, err := s.pager.FetchPage(ctx, *s.page.NextPageToken)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	s.stats.accumulate(result.ConsumedIOs, result.TimingInformation)
	s.page = result.Page
	s.index = 0

	return nil
}

func (s *Stream) Value() []byte {
	return s.current
}

func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) Close() {
	s.closed.Store(true)
}

func (s *Stream) ConsumedIOs() *endpoint.IOUsage {
	return s.stats.consumedIOs()
}

func (s *Stream) TimingInformation() *endpoint.TimingInformation {
	return s.stats.timingInformation()
}

func (s *Stream) liveCursor() {}
