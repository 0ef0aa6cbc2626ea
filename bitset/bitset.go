// Package bitset provides fixed-width bit sets laid out over flat []uint64 arenas.
//
// A Set is a view of Words(n) consecutive words. Many sets of the same width can
// share one backing slice (one set per grid cell, one per pattern row), which keeps
// the wave's possibility bits and the catalog's compatibility matrix contiguous.
//
// All operations are O(1) except Count, Each, Fill and Equal, which are O(words).
package bitset

import "math/bits"

const wordBits = 64

// Words returns the number of uint64 words needed to hold n bits.
func Words(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Set is a bit set view over a slice of words.
type Set []uint64

// New allocates a zeroed Set able to hold n bits.
func New(n int) Set {
	return make(Set, Words(n))
}

// Arena allocates count zeroed sets of n bits each in one backing slice.
func Arena(count, n int) []uint64 {
	return make([]uint64, count*Words(n))
}

// At returns the i-th n-bit set stored in arena.
func At(arena []uint64, i, n int) Set {
	w := Words(n)
	return Set(arena[i*w : (i+1)*w : (i+1)*w])
}

// Has reports whether bit i is set.
func (s Set) Has(i int) bool {
	return s[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Add sets bit i.
func (s Set) Add(i int) {
	s[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Remove clears bit i.
func (s Set) Remove(i int) {
	s[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// Fill sets bits [0, n) and clears the rest.
func (s Set) Fill(n int) {
	for w := range s {
		switch lo := w * wordBits; {
		case n >= lo+wordBits:
			s[w] = ^uint64(0)
		case n <= lo:
			s[w] = 0
		default:
			s[w] = 1<<uint(n-lo) - 1
		}
	}
}

// Clear zeroes every bit.
func (s Set) Clear() {
	for w := range s {
		s[w] = 0
	}
}

// Count returns the number of set bits.
func (s Set) Count() int {
	c := 0
	for _, w := range s {
		c += bits.OnesCount64(w)
	}
	return c
}

// First returns the lowest set bit, or -1 when the set is empty.
func (s Set) First() int {
	for w, word := range s {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// Each calls fn for every set bit in ascending order.
func (s Set) Each(fn func(i int)) {
	for w, word := range s {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			fn(w*wordBits + tz)
			word &= word - 1
		}
	}
}

// Equal reports whether s and o hold the same bits. Both must have the same width.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for w := range s {
		if s[w] != o[w] {
			return false
		}
	}
	return true
}

// Slice returns the set bits in ascending order.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(i int) { out = append(out, i) })
	return out
}
