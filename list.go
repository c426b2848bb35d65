// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazylist

import "iter"

// content is what forcing a node yields: either a terminated spine end
// or an element plus the node after it. tail == nil means terminated;
// an evaluated element always carries a concrete (possibly still
// unforced) next node.
type content[T any] struct {
	value T
	tail  *node[T]
}

// node is one link of the spine: a memoizing cell whose value is the
// node's content. Nodes are shared by pointer and never copied; all
// mutation is the cell's one-shot empty → done transition.
type node[T any] struct {
	cell Cell[content[T]]
}

// resolvedNode creates a node whose content is already computed.
func resolvedNode[T any](c content[T]) *node[T] {
	n := new(node[T])
	n.cell.value = c
	n.cell.state.Store(stateDone)
	return n
}

// List is a lazy, memoizing, persistent singly-linked list. A List value
// is a cheap handle to a shared spine node: copying a handle aliases the
// same spine, and a list and its [List.Prepend] variants share their
// common tail by reference. Elements are computed on first observation
// and cached for every holder thereafter.
//
// The zero List is an empty list.
type List[T any] struct {
	head *node[T]
}

// New returns a list whose content is immediately terminated.
func New[T any]() List[T] {
	return List[T]{head: resolvedNode(content[T]{})}
}

// Prepend returns a new list with v in front of l. l is unmodified and
// remains independently valid; the two lists share l's spine.
func (l List[T]) Prepend(v T) List[T] {
	t := l.head
	if t == nil {
		t = resolvedNode(content[T]{})
	}
	return List[T]{head: resolvedNode(content[T]{value: v, tail: t})}
}

// Get returns the element at index i, forcing cells along the spine to
// reach it. It reports false when i is negative, when the list
// terminates first, or when production of a needed cell is already
// underway (a reentrant read of an element still being produced).
func (l List[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	for n := l.head; n != nil; {
		c, ok := n.cell.Force()
		if !ok || c.tail == nil {
			break
		}
		if i == 0 {
			return c.value, true
		}
		i--
		n = c.tail
	}
	return zero, false
}

// At is subscript-style access: [List.Get] with absence escalated to a
// panic at the call site.
func (l List[T]) At(i int) T {
	v, ok := l.Get(i)
	if !ok {
		panic("lazylist: index out of range")
	}
	return v
}

// Len counts the elements, forcing every cell along the spine until
// termination. On a conceptually infinite list Len does not return;
// bound such a list with [Take] first.
func (l List[T]) Len() int {
	n := 0
	for range l.Values() {
		n++
	}
	return n
}

// IsEmpty reports whether forcing the head yields a terminated spine.
// It consumes no nodes beyond the head.
func (l List[T]) IsEmpty() bool {
	if l.head == nil {
		return true
	}
	c, ok := l.head.cell.Force()
	return ok && c.tail == nil
}

// Values returns a forward iterator over the elements. Every call
// starts fresh from the head; already-computed prefixes are revisited
// without recomputation. The sequence ends at termination or at a cell
// whose production is already underway; the caller may break early,
// which is the supported way to traverse part of an infinite list.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; {
			c, ok := n.cell.Force()
			if !ok || c.tail == nil {
				return
			}
			if !yield(c.value) {
				return
			}
			n = c.tail
		}
	}
}

// All is [List.Values] with indexes.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range l.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Collect forces the whole list and returns its elements as a slice.
func (l List[T]) Collect() []T {
	var out []T
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}
