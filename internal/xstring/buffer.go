package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{
	New: func() interface{} {
		return &buffer{}
	},
}

func Buffer() *buffer {
	b, ok := buffersPool.Get().(*buffer)
	if !ok {
		b = &buffer{}
	}

	return b
}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}
