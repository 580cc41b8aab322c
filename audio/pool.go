// SPDX-License-Identifier: EPL-2.0

package audio

import "sync"

// BufferPool recycles owning buffers to keep allocation out of processing
// loops. It is safe for concurrent use.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool returns a pool ready for use.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed buffer of the requested shape. Storage of a
// recycled buffer is reused when it has the same shape.
func (p *BufferPool) Get(frames, channels int) (*Buffer, error) {
	b := p.pool.Get().(*Buffer)
	if b.frames == frames && b.channels == channels && b.owned {
		b.Clear()
		return b, nil
	}

	if err := b.Allocate(frames, channels); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	return b, nil
}

// Put hands b back to the pool. Wrapped buffers are dropped since their
// memory belongs to someone else. The caller must not use b afterwards.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if !b.owned {
		b.Free()
		return
	}
	p.pool.Put(b)
}
