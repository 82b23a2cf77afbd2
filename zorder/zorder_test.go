package zorder

import (
	"slices"
	"testing"
)

func build(keys ...int) *Order[int, string] {
	o := New[int, string]()
	for _, k := range keys {
		o.Add(k, "")
	}
	return o
}

func TestOrder_Add(t *testing.T) {
	o := build(1, 2, 3)
	if got := o.Keys(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Keys() = %v, want [3 2 1]", got)
	}

	o.Add(1, "again")
	if got := o.Keys(); !slices.Equal(got, []int{1, 3, 2}) {
		t.Errorf("re-Add Keys() = %v, want [1 3 2]", got)
	}
	if v, _ := o.Get(1); v != "again" {
		t.Errorf("Get(1) = %q, want again", v)
	}
	if o.Len() != 3 {
		t.Errorf("Len() = %d, want 3", o.Len())
	}

	o.AddBottom(4, "low")
	if k, v, _ := o.Bottom(); k != 4 || v != "low" {
		t.Errorf("Bottom() = %d, %q", k, v)
	}
}

func TestOrder_RaiseLower(t *testing.T) {
	tests := []struct {
		name    string
		op      func(o *Order[int, string]) bool
		changed bool
		want    []int
	}{
		{"raise middle", func(o *Order[int, string]) bool { return o.Raise(2) }, true, []int{2, 3, 1}},
		{"raise top", func(o *Order[int, string]) bool { return o.Raise(3) }, false, []int{3, 2, 1}},
		{"raise missing", func(o *Order[int, string]) bool { return o.Raise(9) }, false, []int{3, 2, 1}},
		{"lower top", func(o *Order[int, string]) bool { return o.Lower(3) }, true, []int{2, 1, 3}},
		{"lower bottom", func(o *Order[int, string]) bool { return o.Lower(1) }, false, []int{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := build(1, 2, 3)
			if got := tt.op(o); got != tt.changed {
				t.Errorf("changed = %v, want %v", got, tt.changed)
			}
			if got := o.Keys(); !slices.Equal(got, tt.want) {
				t.Errorf("Keys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrder_Remove(t *testing.T) {
	o := build(1, 2, 3)
	if !o.Remove(2) {
		t.Error("Remove(2) = false")
	}
	if o.Remove(2) {
		t.Error("second Remove(2) = true")
	}
	if o.Contains(2) || o.Position(2) != -1 {
		t.Error("removed key still present")
	}
	if got := o.Keys(); !slices.Equal(got, []int{3, 1}) {
		t.Errorf("Keys() = %v, want [3 1]", got)
	}
}

func TestOrder_Cycle(t *testing.T) {
	o := build(1, 2, 3)
	if top, ok := o.Cycle(true); !ok || top != 2 {
		t.Errorf("Cycle(up) top = %d, %v; want 2", top, ok)
	}
	if got := o.Keys(); !slices.Equal(got, []int{2, 1, 3}) {
		t.Errorf("Keys() = %v, want [2 1 3]", got)
	}
	if top, _ := o.Cycle(false); top != 3 {
		t.Errorf("Cycle(down) top = %d, want 3", top)
	}
	if got := o.Keys(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Keys() = %v, want [3 2 1]", got)
	}

	empty := New[int, string]()
	if _, ok := empty.Cycle(true); ok {
		t.Error("Cycle on empty order reported a top")
	}
	if _, _, ok := empty.Top(); ok {
		t.Error("Top on empty order reported an entry")
	}
}

func TestOrder_Traversal(t *testing.T) {
	o := build(1, 2, 3)
	var down, up []int
	for k := range o.TopDown() {
		down = append(down, k)
	}
	for k := range o.BottomUp() {
		up = append(up, k)
	}
	if !slices.Equal(down, []int{3, 2, 1}) || !slices.Equal(up, []int{1, 2, 3}) {
		t.Errorf("TopDown = %v, BottomUp = %v", down, up)
	}

	// First hit wins when walking top-down.
	var first int
	for k := range o.TopDown() {
		if k < 3 {
			first = k
			break
		}
	}
	if first != 2 {
		t.Errorf("first hit = %d, want 2", first)
	}
	if o.Position(1) != 2 {
		t.Errorf("Position(1) = %d, want 2", o.Position(1))
	}
}
