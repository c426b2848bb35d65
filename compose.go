// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazylist

// Derived list transformations. Each returns a fresh lazy spine over
// its source: nothing is forced until the result is observed, forcing
// the result forces only as much of the source as the transformation
// needs, and the source list stays independently usable. A transformed
// view of a source node whose production is underway observes the
// source's available prefix, exactly as an iterator would.

// Map returns the list of f applied to each element of l.
//
// Allocation note: Map builds one node per observed element and shares
// nothing with the source spine; the source's memoized values are read,
// never copied, and f runs at most once per element.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return List[U]{head: mapNode(l.head, f)}
}

func mapNode[T, U any](src *node[T], f func(T) U) *node[U] {
	n := new(node[U])
	n.cell.produce = func() content[U] {
		if src == nil {
			return content[U]{}
		}
		c, ok := src.cell.Force()
		if !ok || c.tail == nil {
			return content[U]{}
		}
		return content[U]{value: f(c.value), tail: mapNode(c.tail, f)}
	}
	return n
}

// Filter returns the list of elements of l for which keep reports true.
// Forcing one element of the result may advance the source past any run
// of rejected elements; on a source with no further matches it advances
// to termination.
func Filter[T any](l List[T], keep func(T) bool) List[T] {
	return List[T]{head: filterNode(l.head, keep)}
}

func filterNode[T any](src *node[T], keep func(T) bool) *node[T] {
	n := new(node[T])
	n.cell.produce = func() content[T] {
		for s := src; s != nil; {
			c, ok := s.cell.Force()
			if !ok || c.tail == nil {
				return content[T]{}
			}
			if keep(c.value) {
				return content[T]{value: c.value, tail: filterNode(c.tail, keep)}
			}
			s = c.tail
		}
		return content[T]{}
	}
	return n
}

// Take returns the list of at most n leading elements of l. This is the
// way to bound a conceptually infinite list so that Len, Collect, or a
// full traversal terminate.
func Take[T any](l List[T], n int) List[T] {
	return List[T]{head: takeNode(l.head, n)}
}

func takeNode[T any](src *node[T], n int) *node[T] {
	nd := new(node[T])
	nd.cell.produce = func() content[T] {
		if n <= 0 || src == nil {
			return content[T]{}
		}
		c, ok := src.cell.Force()
		if !ok || c.tail == nil {
			return content[T]{}
		}
		return content[T]{value: c.value, tail: takeNode(c.tail, n-1)}
	}
	return nd
}
