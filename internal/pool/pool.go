// Package pool provides object pooling for go-getopt's parse pass.
// The parser only allocates when a clustered short flag forces a private
// copy of the argument vector; pooling that copy keeps repeated Parse calls
// off the garbage collector.
package pool

import "sync"

// Pool is a generic, type-safe object pool with an optional reset function
// applied before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool backed by the given factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before each reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, creating one if necessary.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// ArgvPool pools string slices used as expansion buffers for clustered
// short flags.
type ArgvPool struct {
	*Pool[[]string]
}

// NewArgvPool creates an ArgvPool whose fresh buffers start with the given
// capacity.
func NewArgvPool(defaultCap int) *ArgvPool {
	return &ArgvPool{
		Pool: NewPoolWithReset(
			func() *[]string {
				buf := make([]string, 0, defaultCap)
				return &buf
			},
			func(buf *[]string) {
				clear(*buf) // drop references so pooled buffers don't pin tokens
				*buf = (*buf)[:0]
			},
		),
	}
}

// globalArgvPool serves every parser instance; argument vectors are small
// and short-lived, so one shared pool is enough.
var globalArgvPool = NewArgvPool(16)

// GetArgv retrieves an empty expansion buffer from the global pool.
func GetArgv() *[]string {
	return globalArgvPool.Get()
}

// PutArgv returns an expansion buffer to the global pool.
func PutArgv(buf *[]string) {
	globalArgvPool.Put(buf)
}
