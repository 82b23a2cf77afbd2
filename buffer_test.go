package ywin

import "testing"

func TestRegistryIDs(t *testing.T) {
	reg := NewRegistry()
	a := NewRGBABuffer(WithRegistry(reg))
	b := NewRGBABuffer(WithRegistry(reg))
	if a.ID() != 1 || b.ID() != 2 {
		t.Errorf("buffer IDs = %d, %d; want 1, 2", a.ID(), b.ID())
	}
	if got := reg.NewContextID(); got != 1 {
		t.Errorf("first NewContextID() = %d, want 1", got)
	}
	if got := reg.NewContextID(); got != 2 {
		t.Errorf("second NewContextID() = %d, want 2", got)
	}
	if BufferID(nil) != 0 {
		t.Error("BufferID(nil) != 0")
	}
}

func TestBufferContexts(t *testing.T) {
	b := NewRGBABuffer(WithRegistry(NewRegistry()))
	c3 := &testContext{id: 3}
	c1 := &testContext{id: 1}
	b.AddContext(c3)
	b.AddContext(c1)

	if got := b.Context(1); got != c1 {
		t.Errorf("Context(1) = %v, want %v", got, c1)
	}
	if got := b.Context(2); got != nil {
		t.Errorf("Context(2) = %v, want nil", got)
	}

	// Replacing destroys the old context, re-adding the same one does not.
	c3b := &testContext{id: 3}
	b.AddContext(c3b)
	if c3.destroyed != 1 {
		t.Errorf("replaced context destroyed %d times, want 1", c3.destroyed)
	}
	b.AddContext(c3b)
	if c3b.destroyed != 0 {
		t.Errorf("re-added context destroyed %d times, want 0", c3b.destroyed)
	}

	b.NotifyModified()
	if c1.modified != 1 || c3b.modified != 1 || c3.modified != 0 {
		t.Errorf("modified counts = %d, %d, %d; want 1, 1, 0", c1.modified, c3b.modified, c3.modified)
	}

	b.RemoveContext(1)
	if c1.destroyed != 1 || b.Context(1) != nil {
		t.Error("RemoveContext(1) did not destroy and detach")
	}
	b.RemoveContext(1)
	if c1.destroyed != 1 {
		t.Error("RemoveContext on a missing ID destroyed again")
	}

	b.Destroy()
	if c3b.destroyed != 1 {
		t.Errorf("Destroy() destroyed context %d times, want 1", c3b.destroyed)
	}
}

func TestBufferDrawNotifies(t *testing.T) {
	b := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(10, 10))
	c := &testContext{id: 7}
	b.AddContext(c)

	p := b.Painter()
	p.DrawHLine(0, 0, 5)
	p.DrawVLine(0, 0, 5)
	p.DrawRectangle(1, 1, 4, 4)
	p.ClearRectangle(0, 0, 2, 2)
	p.DrawLine(0, 0, 5, 5)
	p.DrawAlphamap([]uint8{1, 2, 3, 4}, 0, 0, 2, 2, 2)
	p.DrawRGBAData([]uint32{1, 2, 3, 4}, 0, 0, 2, 2, 2)
	if c.modified != 7 {
		t.Errorf("modified = %d after 7 draws, want 7", c.modified)
	}

	// Fully clipped draws touch nothing.
	p.DrawHLine(50, 50, 5)
	if c.modified != 7 {
		t.Errorf("modified = %d after clipped draw, want 7", c.modified)
	}

	b.SetSize(10, 10)
	if c.modified != 7 {
		t.Error("SetSize to the same size notified")
	}
	b.SetSize(20, 10)
	if c.modified != 8 {
		t.Errorf("modified = %d after resize, want 8", c.modified)
	}
}
