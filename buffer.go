package ywin

import "sort"

// Buffer is a surface that owns pixel storage.
//
// Every mutating draw operation calls NotifyModified so that attached
// contexts can drop whatever they derived from the old pixels.
type Buffer interface {
	// ID returns the buffer's process-unique identifier.
	ID() uint32

	// Size returns the logical size.
	Size() (w, h int)

	// SetSize changes the logical size. It is a no-op when the size is
	// unchanged; otherwise contexts are notified before storage changes.
	SetSize(w, h int)

	// Painter returns a new painter clipped to (0, 0, w, h).
	Painter() *Painter

	// Render composites the buffer at (x, y) in the renderer's current
	// region. The renderer's native path is tried first.
	Render(r *Renderer, x, y int)

	// DrawOnto draws the part of this buffer starting at (xo, yo) into p
	// at (x, y), at most w×h pixels.
	DrawOnto(p *Painter, xo, yo, x, y, w, h int)

	// AddContext attaches c, replacing and destroying any context with
	// the same ID.
	AddContext(c BufferContext)

	// Context returns the context with the given ID, or nil.
	Context(id uint32) BufferContext

	// RemoveContext detaches and destroys the context with the given ID.
	RemoveContext(id uint32)

	// NotifyModified tells every attached context that pixels changed.
	NotifyModified()

	// Destroy releases storage and destroys all contexts.
	Destroy()
}

// BufferContext is a driver-private extension attached to a buffer, such
// as a cached device surface.
type BufferContext interface {
	// ContextID identifies the owner; one context per ID per buffer.
	ContextID() uint32

	// Modified is called after the buffer's pixels change.
	Modified()

	// Destroy is called when the context is removed or the buffer dies.
	Destroy()
}

// BufferID returns b.ID(), or 0 for a nil buffer.
func BufferID(b Buffer) uint32 {
	if b == nil {
		return 0
	}
	return b.ID()
}

// bufferCore holds the state shared by all buffer implementations.
type bufferCore struct {
	id            uint32
	width, height int

	// contexts is kept sorted by ContextID.
	contexts []BufferContext
}

func newBufferCore(reg *Registry) bufferCore {
	return bufferCore{id: reg.NewBufferID()}
}

func (b *bufferCore) ID() uint32 {
	return b.id
}

func (b *bufferCore) Size() (w, h int) {
	return b.width, b.height
}

func (b *bufferCore) find(id uint32) int {
	return sort.Search(len(b.contexts), func(i int) bool {
		return b.contexts[i].ContextID() >= id
	})
}

func (b *bufferCore) AddContext(c BufferContext) {
	if c == nil {
		return
	}
	id := c.ContextID()
	i := b.find(id)
	if i < len(b.contexts) && b.contexts[i].ContextID() == id {
		old := b.contexts[i]
		b.contexts[i] = c
		if old != c {
			old.Destroy()
		}
		return
	}
	b.contexts = append(b.contexts, nil)
	copy(b.contexts[i+1:], b.contexts[i:])
	b.contexts[i] = c
}

func (b *bufferCore) Context(id uint32) BufferContext {
	i := b.find(id)
	if i < len(b.contexts) && b.contexts[i].ContextID() == id {
		return b.contexts[i]
	}
	return nil
}

func (b *bufferCore) RemoveContext(id uint32) {
	i := b.find(id)
	if i >= len(b.contexts) || b.contexts[i].ContextID() != id {
		return
	}
	c := b.contexts[i]
	b.contexts = append(b.contexts[:i], b.contexts[i+1:]...)
	c.Destroy()
}

func (b *bufferCore) NotifyModified() {
	for _, c := range b.contexts {
		c.Modified()
	}
}

// destroyContexts destroys every context. Contexts may call RemoveContext
// on the buffer from Destroy, so the list is detached first.
func (b *bufferCore) destroyContexts() {
	contexts := b.contexts
	b.contexts = nil
	for _, c := range contexts {
		c.Destroy()
	}
}
