package cursor

import (
	"context"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
)

var _ Cursor = (*Buffered)(nil)

// Buffered materializes a source cursor into memory so the result can
// outlive the transaction that produced it. It snapshots the source's final
// accumulated stats.
type Buffered struct {
	values  [][]byte
	index   int
	current []byte
	ios     *endpoint.IOUsage
	timing  *endpoint.TimingInformation
}

// NewBuffered synchronously drains source to exhaustion.
func NewBuffered(ctx context.Context, source Cursor) (*Buffered, error) {
	b := &Buffered{}
	for source.Next(ctx) {
		b.values = append(b.values, source.Value())
	}
	if err := source.Err(); err != nil {
		return nil, err
	}
	b.ios = source.ConsumedIOs()
	b.timing = source.TimingInformation()

	return b, nil
}

func (b *Buffered) Next(_ context.Context) bool {
	if b.index >= len(b.values) {
		return false
	}
	b.current = b.values[b.index]
	b.index++

	return true
}

func (b *Buffered) Value() []byte {
	return b.current
}

func (b *Buffered) Err() error {
	return nil
}

// Close is a no-op: a buffered cursor owns no live resource.
func (b *Buffered) Close() {}

func (b *Buffered) ConsumedIOs() *endpoint.IOUsage {
	return b.ios
}

func (b *Buffered) TimingInformation() *endpoint.TimingInformation {
	return b.timing
}
