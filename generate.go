// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazylist

import (
	"iter"
	"weak"
)

// Producer strategies installed into a fresh node's cell. A finite
// producer adapts an external source, one element per force; a cyclic
// producer applies a step function to the list being built, letting it
// derive element N from elements 0..N-1.

// FromSeq returns a lazy list over the elements of seq. The sequence is
// pulled exactly one element per forced node, never ahead of
// observation; each element is pulled at most once, in spine order, and
// the pull iterator is stopped when the sequence is exhausted.
//
// The source must tolerate being resumed across non-overlapping pulls;
// it is owned by the list from this point on.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	next, stop := iter.Pull(seq)
	return List[T]{head: pullNode(next, stop)}
}

// pullNode creates a node whose producer takes the next element from
// the shared pull pair. Spine order makes each producer run at most
// once and never concurrently with its successors: a node's tail does
// not exist until the node itself has been forced.
func pullNode[T any](next func() (T, bool), stop func()) *node[T] {
	n := new(node[T])
	n.cell.produce = func() content[T] {
		v, ok := next()
		if !ok {
			stop()
			return content[T]{}
		}
		return content[T]{value: v, tail: pullNode(next, stop)}
	}
	return n
}

// FromSlice returns a lazy list over the elements of s. Equivalent to
// FromSeq over the slice's values but without the pull coroutine; each
// producer captures the remaining subslice.
//
// The elements are read lazily: mutating s before the list has been
// forced changes what the list observes.
func FromSlice[T any](s []T) List[T] {
	return List[T]{head: sliceNode(s)}
}

func sliceNode[T any](s []T) *node[T] {
	n := new(node[T])
	n.cell.produce = func() content[T] {
		if len(s) == 0 {
			return content[T]{}
		}
		return content[T]{value: s[0], tail: sliceNode(s[1:])}
	}
	return n
}

// NewCyclic returns a self-referential list: step computes element N
// while observing elements 0..N-1 of the very list it is building.
// step receives the list as built so far and returns the next element,
// or false to terminate the spine.
//
// step may call Get, Len, or Values on the handle it receives; a read
// of the element currently being produced yields "not yet available"
// (Get reports false, iteration stops) rather than recursing, so
// "the current length" as seen inside step is exactly the index of the
// element being produced. step must be a pure function of that
// observable prefix.
//
// Ownership is split: the head's own producer holds only a weak
// self-reference, upgraded for the duration of its run — an owning
// reference would make the head and its own producer keep each other
// alive forever. Producers of later nodes hold the head strongly, so
// the self-reference target stays alive as long as any part of the
// unforced frontier is reachable. The upgrade cannot fail: the head's
// producer only runs while the head itself is being forced.
func NewCyclic[T any](step func(List[T]) (T, bool)) List[T] {
	n := new(node[T])
	w := weak.Make(n)
	n.cell.produce = func() content[T] {
		head := w.Value()
		if head == nil {
			panic("lazylist: self-referential list reclaimed during generation")
		}
		return cyclicProduce(step, List[T]{head: head})()
	}
	return List[T]{head: n}
}

// cyclicProduce creates the producer for one node of a self-referential
// spine: apply step to the whole list, then install a fresh producer
// over the same list for the node after it.
func cyclicProduce[T any](step func(List[T]) (T, bool), list List[T]) func() content[T] {
	return func() content[T] {
		v, ok := step(list)
		if !ok {
			return content[T]{}
		}
		next := new(node[T])
		next.cell.produce = cyclicProduce(step, list)
		return content[T]{value: v, tail: next}
	}
}
