package ywin

import "sync/atomic"

// Registry hands out process-unique buffer and context IDs. IDs start at 1;
// 0 is never issued and denotes "no buffer".
//
// Registry is safe for concurrent use.
type Registry struct {
	nextBuffer  atomic.Uint32
	nextContext atomic.Uint32
}

// NewRegistry creates a registry whose first buffer and context IDs are 1.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry is used by buffers created without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewBufferID returns the next buffer ID.
func (r *Registry) NewBufferID() uint32 {
	return r.nextBuffer.Add(1)
}

// NewContextID returns the next context ID. Video drivers call this once
// and use the result for every context they attach to buffers.
func (r *Registry) NewContextID() uint32 {
	return r.nextContext.Add(1)
}

// NewContextID allocates a context ID from DefaultRegistry.
func NewContextID() uint32 {
	return DefaultRegistry.NewContextID()
}
