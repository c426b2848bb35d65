// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazylist provides a lazy, memoizing, persistent singly-linked
// list in Go, together with the reentrancy-aware memoizing cell it is
// built from.
//
// A [List] is a chain of nodes whose contents are not computed until
// observed; the computed prefix is cached and shared by every holder of
// the list. A list may be defined self-referentially: a generator that
// computes element N by inspecting elements 0..N-1 of the very list it
// is building (e.g. a sieve deriving the next prime from previously
// emitted primes).
//
// # Design Philosophy
//
// lazylist provides:
//   - At-most-once production: every node's content is computed by a
//     one-shot producer, exactly once, however many holders force it
//   - Persistence: [List.Prepend] shares the old spine by reference;
//     no node content is ever mutated after its one-shot transition
//   - Defined reentrancy: forcing a cell whose production is already
//     underway yields "not yet available" instead of deadlock or
//     unbounded recursion, which is what makes self-referential
//     generation safe
//
// # Memoizing Cell
//
// [Cell] holds either a pending one-shot producer or a computed, cached
// value. Its state machine is empty → in-progress → done, with a
// deterministic guard converting in-progress to poisoned when the
// producer panics; a poisoned cell panics on every later force rather
// than violating the at-most-once contract.
//
//   - [NewCell]: Pending cell owning a one-shot producer
//   - [CellOf]: Already-resolved cell
//   - [Cell.Force]: Return the cached value, computing it on first call;
//     reports false while production of the same cell is underway
//
// Two scheduling configurations:
//
//   - [Cell]: Parallel — concurrent forcers go through a one-time
//     store; exactly one runs the producer, late arrivals wait on it,
//     and the in-progress mark answers reentrant calls
//   - [LocalCell]: Cooperative — same contract without atomics, for a
//     single logical caller ([NewLocalCell], [LocalCellOf],
//     [LocalCell.Force])
//
// # List Spine
//
// Construction:
//
//   - [New]: Immediately-terminated list; the zero [List] is equivalent
//   - [List.Prepend]: New head sharing the receiver as tail
//   - [FromSeq]: Lazy list over an iter.Seq source, one pull per force
//   - [FromSlice]: Lazy list over a slice, no coroutine
//   - [NewCyclic]: Self-referential list driven by a step function
//
// Queries, all of which force cells along the spine only as far as they
// must:
//
//   - [List.Get]: Indexed access, absent past the end
//   - [List.At]: Subscript-style access, panics past the end
//   - [List.Len]: Forces to termination; diverges on an infinite list
//   - [List.IsEmpty]: Forces the head only
//   - [List.Values], [List.All]: Restartable forward iteration
//   - [List.Collect]: Force everything into a slice
//
// # Self-Referential Lists
//
// [NewCyclic] installs producers that capture the list being built. The
// step function receives the list as built so far; reading the element
// currently being produced yields "not yet available" via the cell's
// reentrancy rule, so the observable length inside step is exactly the
// index of the element being produced. The head's own producer holds a
// weak self-reference — an owning one would keep the head and its own
// producer alive forever — while later producers hold the head strongly.
//
// # Transformations
//
//   - [Map]: Lazy element-wise transformation
//   - [Filter]: Lazy selection
//   - [Take]: Lazy prefix bound, the tool for truncating infinite lists
//
// # Example
//
//	primes := lazylist.NewCyclic(func(l lazylist.List[int]) (int, bool) {
//		switch n := l.Len(); n {
//		case 0:
//			return 2, true
//		case 1:
//			return 3, true
//		case 100:
//			return 0, false
//		default:
//			c := l.At(n-1) + 2
//			for {
//				good := true
//				for p := range l.Values() {
//					if c%p == 0 {
//						good = false
//						break
//					}
//				}
//				if good {
//					return c, true
//				}
//				c += 2
//			}
//		}
//	})
//	// primes.At(99) == 541
package lazylist
