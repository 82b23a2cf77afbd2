// Package zorder keeps surfaces in stacking order.
//
// The front of an Order is the top of the stack. Paint passes walk it
// bottom-up and hit tests walk it top-down, so both directions are
// provided as iterators.
package zorder

import (
	"container/list"
	"iter"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Order is a stacking order of values keyed by ID. Raising or lowering a
// key moves its element without reallocating. The zero value is not
// usable; call New.
type Order[K comparable, V any] struct {
	l     *list.List
	index map[K]*list.Element
}

// New returns an empty order.
func New[K comparable, V any]() *Order[K, V] {
	return &Order[K, V]{
		l:     list.New(),
		index: make(map[K]*list.Element),
	}
}

// Len returns the number of entries.
func (o *Order[K, V]) Len() int {
	return o.l.Len()
}

// Add puts v on top under k. An existing entry for k is replaced and
// raised.
func (o *Order[K, V]) Add(k K, v V) {
	if e, ok := o.index[k]; ok {
		e.Value = entry[K, V]{k, v}
		o.l.MoveToFront(e)
		return
	}
	o.index[k] = o.l.PushFront(entry[K, V]{k, v})
}

// AddBottom puts v at the bottom under k. An existing entry for k is
// replaced and lowered.
func (o *Order[K, V]) AddBottom(k K, v V) {
	if e, ok := o.index[k]; ok {
		e.Value = entry[K, V]{k, v}
		o.l.MoveToBack(e)
		return
	}
	o.index[k] = o.l.PushBack(entry[K, V]{k, v})
}

// Remove deletes k and reports whether it was present.
func (o *Order[K, V]) Remove(k K) bool {
	e, ok := o.index[k]
	if !ok {
		return false
	}
	delete(o.index, k)
	o.l.Remove(e)
	return true
}

// Get returns the value stored under k.
func (o *Order[K, V]) Get(k K) (V, bool) {
	if e, ok := o.index[k]; ok {
		return e.Value.(entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (o *Order[K, V]) Contains(k K) bool {
	_, ok := o.index[k]
	return ok
}

// Raise moves k to the top. It reports whether the order changed.
func (o *Order[K, V]) Raise(k K) bool {
	e, ok := o.index[k]
	if !ok || o.l.Front() == e {
		return false
	}
	o.l.MoveToFront(e)
	return true
}

// Lower moves k to the bottom. It reports whether the order changed.
func (o *Order[K, V]) Lower(k K) bool {
	e, ok := o.index[k]
	if !ok || o.l.Back() == e {
		return false
	}
	o.l.MoveToBack(e)
	return true
}

// Cycle rotates the order by one. With up set the top entry goes to the
// bottom; otherwise the bottom entry comes to the top. It returns the new
// top key.
func (o *Order[K, V]) Cycle(up bool) (K, bool) {
	var zero K
	if o.l.Len() == 0 {
		return zero, false
	}
	if o.l.Len() > 1 {
		if up {
			o.l.MoveToBack(o.l.Front())
		} else {
			o.l.MoveToFront(o.l.Back())
		}
	}
	return o.l.Front().Value.(entry[K, V]).key, true
}

func at[K comparable, V any](e *list.Element) (K, V, bool) {
	if e == nil {
		var k K
		var v V
		return k, v, false
	}
	en := e.Value.(entry[K, V])
	return en.key, en.value, true
}

// Top returns the topmost entry.
func (o *Order[K, V]) Top() (K, V, bool) {
	return at[K, V](o.l.Front())
}

// Bottom returns the lowest entry.
func (o *Order[K, V]) Bottom() (K, V, bool) {
	return at[K, V](o.l.Back())
}

// Position returns the depth of k counted from the top, or -1.
func (o *Order[K, V]) Position(k K) int {
	i := 0
	for e := o.l.Front(); e != nil; e = e.Next() {
		if e.Value.(entry[K, V]).key == k {
			return i
		}
		i++
	}
	return -1
}

// TopDown iterates from the top of the stack to the bottom.
// The order must not be modified during iteration.
func (o *Order[K, V]) TopDown() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := o.l.Front(); e != nil; e = e.Next() {
			en := e.Value.(entry[K, V])
			if !yield(en.key, en.value) {
				return
			}
		}
	}
}

// BottomUp iterates from the bottom of the stack to the top.
// The order must not be modified during iteration.
func (o *Order[K, V]) BottomUp() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := o.l.Back(); e != nil; e = e.Prev() {
			en := e.Value.(entry[K, V])
			if !yield(en.key, en.value) {
				return
			}
		}
	}
}

// Keys returns the keys from top to bottom.
func (o *Order[K, V]) Keys() []K {
	keys := make([]K, 0, o.l.Len())
	for k := range o.TopDown() {
		keys = append(keys, k)
	}
	return keys
}
