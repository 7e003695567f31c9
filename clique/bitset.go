package clique

import "math/bits"

// Bitset is a fixed-width dynamic bit vector over permuted vertex
// indices 0..n-1 (spec.md §4.1). It is the representation for both the
// adjacency rows (adjacency.go) and the candidate set p threaded through
// expand.go.
//
// The first 64 bits live inline in first; callers with graphs of 64
// vertices or fewer never touch rest at all (the "small value
// optimisation" spec.md §9 asks for — mirrors the original source's
// SVOBitset naming in original_source/src/clique.cc). Larger graphs
// spill into rest, one word per additional 64 vertices.
//
// The zero value is not usable; construct via NewBitset.
type Bitset struct {
	n     int
	first uint64
	rest  []uint64
}

// NewBitset returns an empty Bitset capable of holding indices 0..n-1.
func NewBitset(n int) Bitset {
	var rest []uint64
	if n > 64 {
		rest = make([]uint64, (n-1)/64) // words for bits [64, n)
	}

	return Bitset{n: n, rest: rest}
}

// wordAndMask returns the word containing bit i (by reference) and the
// mask selecting that bit within the word.
func (b *Bitset) wordAndMask(i int) (*uint64, uint64) {
	if i < 64 {
		return &b.first, uint64(1) << uint(i)
	}

	return &b.rest[i/64-1], uint64(1) << uint(i%64)
}

// Set puts bit i into the set.
func (b *Bitset) Set(i int) {
	w, m := b.wordAndMask(i)
	*w |= m
}

// Reset removes bit i from the set.
func (b *Bitset) Reset(i int) {
	w, m := b.wordAndMask(i)
	*w &^= m
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	w, m := b.wordAndMask(i)

	return *w&m != 0
}

// Any reports whether any bit is set.
func (b *Bitset) Any() bool {
	if b.first != 0 {
		return true
	}
	for _, w := range b.rest {
		if w != 0 {
			return true
		}
	}

	return false
}

// FindFirst returns the lowest-indexed set bit. Behaviour is undefined
// (and will panic) if the set is empty — callers must test Any() first,
// exactly as spec.md §4.1 mandates.
func (b *Bitset) FindFirst() int {
	if b.first != 0 {
		return bits.TrailingZeros64(b.first)
	}
	for wi, w := range b.rest {
		if w != 0 {
			return (wi+1)*64 + bits.TrailingZeros64(w)
		}
	}

	panic("clique: FindFirst called on an empty Bitset")
}

// Intersect performs in-place b &= other.
func (b *Bitset) Intersect(other *Bitset) {
	b.first &= other.first
	for i := range b.rest {
		b.rest[i] &= other.rest[i]
	}
}

// IntersectWithComplement performs in-place b &= ^other (AND-NOT).
func (b *Bitset) IntersectWithComplement(other *Bitset) {
	b.first &^= other.first
	for i := range b.rest {
		b.rest[i] &^= other.rest[i]
	}
}

// Clone returns an independent copy; mutating the result never affects b.
// Callers must not alias a Bitset across branches (spec.md §5) — always
// copy via Clone before recursing.
func (b *Bitset) Clone() Bitset {
	var rest []uint64
	if len(b.rest) > 0 {
		rest = make([]uint64, len(b.rest))
		copy(rest, b.rest)
	}

	return Bitset{n: b.n, first: b.first, rest: rest}
}

// Len returns the bit width the Bitset was constructed with.
func (b *Bitset) Len() int { return b.n }
