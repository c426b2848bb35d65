// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazylist_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/lazylist"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randSlice returns a random int slice of length [0, 16].
func randSlice(rng *rand.Rand) []int {
	s := make([]int, rng.IntN(17))
	for i := range s {
		s[i] = randInt(rng)
	}
	return s
}

// TestPropertyRoundTrip: FromSlice(s).Collect() ≡ s
func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		got := lazylist.FromSlice(s).Collect()
		if !slices.Equal(got, s) {
			t.Fatalf("round trip: got %v, want %v", got, s)
		}
		if got := lazylist.FromSlice(s).Len(); got != len(s) {
			t.Fatalf("Len() = %d, want %d", got, len(s))
		}
	}
}

// TestPropertyPrependSharing: after l2 = l1.Prepend(x),
// l2.Get(0) ≡ x, l2.Get(i+1) ≡ l1.Get(i), l1 unchanged.
func TestPropertyPrependSharing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		x := randInt(rng)
		l1 := lazylist.FromSlice(s)
		l2 := l1.Prepend(x)

		if got, ok := l2.Get(0); !ok || got != x {
			t.Fatalf("l2.Get(0) = (%d, %v), want (%d, true)", got, ok, x)
		}
		for i := range s {
			a, aok := l2.Get(i + 1)
			b, bok := l1.Get(i)
			if !aok || !bok || a != b {
				t.Fatalf("tail sharing broken at %d: (%d, %v) vs (%d, %v)", i, a, aok, b, bok)
			}
		}
		if got := l1.Len(); got != len(s) {
			t.Fatalf("l1.Len() = %d after prepend, want %d", got, len(s))
		}
	}
}

// TestPropertyGetAgreesWithIteration: Get(i) ≡ i-th iterated element.
func TestPropertyGetAgreesWithIteration(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		l := lazylist.FromSlice(s)
		i := 0
		for v := range l.Values() {
			got, ok := l.Get(i)
			if !ok || got != v {
				t.Fatalf("Get(%d) = (%d, %v), iteration saw %d", i, got, ok, v)
			}
			i++
		}
		if _, ok := l.Get(i); ok {
			t.Fatalf("Get(%d) past the end reported a value", i)
		}
	}
}

// TestPropertyForceIdempotent: repeated forcing returns the cached value.
func TestPropertyForceIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		want := randInt(rng)
		calls := 0
		c := lazylist.NewCell(func() int {
			calls++
			return want
		})
		for range 3 {
			got, ok := c.Force()
			if !ok || got != want {
				t.Fatalf("got (%d, %v), want (%d, true)", got, ok, want)
			}
		}
		if calls != 1 {
			t.Fatalf("producer ran %d times, want 1", calls)
		}
	}
}

// TestPropertyMapOracle: Map(FromSlice(s), f).Collect() ≡ map f over s.
func TestPropertyMapOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(v int) int { return v*2 + 1 }
	for range propertyN {
		s := randSlice(rng)
		want := make([]int, len(s))
		for i, v := range s {
			want[i] = f(v)
		}
		got := lazylist.Map(lazylist.FromSlice(s), f).Collect()
		if !slices.Equal(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// TestPropertyFilterOracle: Filter(FromSlice(s), keep).Collect() ≡
// the kept elements of s in order.
func TestPropertyFilterOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	keep := func(v int) bool { return v >= 0 }
	for range propertyN {
		s := randSlice(rng)
		var want []int
		for _, v := range s {
			if keep(v) {
				want = append(want, v)
			}
		}
		got := lazylist.Filter(lazylist.FromSlice(s), keep).Collect()
		if !slices.Equal(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// TestPropertyTakeOracle: Take(l, n).Collect() ≡ s[:min(n, len(s))].
func TestPropertyTakeOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randSlice(rng)
		n := rng.IntN(20)
		want := s[:min(n, len(s))]
		got := lazylist.Take(lazylist.FromSlice(s), n).Collect()
		if !slices.Equal(got, want) {
			t.Fatalf("Take(%d): got %v, want %v", n, got, want)
		}
	}
}
