package searchlist

import (
	list "github.com/bahlo/generic-list-go"
)

// List is a sorted doubly linked list keyed by a mutable float64 priority.
//
// items holds the ordered elements; index maps each value to its element so
// membership and repositioning never scan.
type List[T comparable] struct {
	key   func(T) float64
	items *list.List[T]
	index map[T]*list.Element[T]
}

// New returns an empty List ordered ascending by key.
// key must be non-nil; it is re-evaluated on every comparison, so it may read
// mutable state (such as a record's current distance).
func New[T comparable](key func(T) float64) *List[T] {
	if key == nil {
		panic("searchlist: key function is nil")
	}

	return &List[T]{
		key:   key,
		items: list.New[T](),
		index: make(map[T]*list.Element[T]),
	}
}

// Add inserts v after every element whose key is <= key(v).
// It returns false, leaving the list unchanged, if v is already present.
func (l *List[T]) Add(v T) bool {
	if _, exists := l.index[v]; exists {
		return false
	}

	k := l.key(v)
	mark := l.items.Back()
	for mark != nil && l.key(mark.Value) > k {
		mark = mark.Prev()
	}

	var e *list.Element[T]
	if mark == nil {
		e = l.items.PushFront(v)
	} else {
		e = l.items.InsertAfter(v, mark)
	}
	l.index[v] = e

	return true
}

// RemoveFirst removes and returns the element with the smallest key.
// ok is false when the list is empty.
func (l *List[T]) RemoveFirst() (v T, ok bool) {
	front := l.items.Front()
	if front == nil {
		return v, false
	}
	delete(l.index, front.Value)

	return l.items.Remove(front), true
}

// First returns the element with the smallest key without removing it.
func (l *List[T]) First() (v T, ok bool) {
	front := l.items.Front()
	if front == nil {
		return v, false
	}

	return front.Value, true
}

// Reposition restores sort order for v after its key changed.
//
// The element moves to the same slot Add would choose: after the last
// element whose key is <= the new key. Decreased keys walk backward from the
// old slot, increased keys walk forward. It returns false if v is absent.
func (l *List[T]) Reposition(v T) bool {
	e, ok := l.index[v]
	if !ok {
		return false
	}
	k := l.key(v)

	if prev := e.Prev(); prev != nil && l.key(prev.Value) > k {
		mark := prev.Prev()
		for mark != nil && l.key(mark.Value) > k {
			mark = mark.Prev()
		}
		if mark == nil {
			l.items.MoveToFront(e)
		} else {
			l.items.MoveAfter(e, mark)
		}

		return true
	}

	var mark *list.Element[T]
	for next := e.Next(); next != nil && l.key(next.Value) <= k; next = next.Next() {
		mark = next
	}
	if mark != nil {
		l.items.MoveAfter(e, mark)
	}

	return true
}

// Remove deletes v from the list. It returns false if v is absent.
func (l *List[T]) Remove(v T) bool {
	e, ok := l.index[v]
	if !ok {
		return false
	}
	delete(l.index, v)
	l.items.Remove(e)

	return true
}

// Contains reports whether v is in the list.
func (l *List[T]) Contains(v T) bool {
	_, ok := l.index[v]

	return ok
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.items.Len() }

// Values returns the elements in ascending key order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.items.Len())
	for e := l.items.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}

	return out
}
