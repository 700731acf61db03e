package knapsack

import "math/bits"

// bitset is a growable membership mask over catalog indices.
// Bit i of word i/64 marks item i. It replaces fixed-size flag arrays so no
// solver carries a hidden ceiling on the catalog size.
type bitset []uint64

// newBitset allocates a zeroed mask able to hold n indices.
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int)       { b[i>>6] |= 1 << (uint(i) & 63) }
func (b bitset) flip(i int)      { b[i>>6] ^= 1 << (uint(i) & 63) }
func (b bitset) test(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }

// clone returns an independent copy.
func (b bitset) clone() bitset {
	cp := make(bitset, len(b))
	copy(cp, b)

	return cp
}

// highestDiff returns the highest index set in exactly one of b and o, or -1
// when both masks are equal. Masks must have the same length.
func (b bitset) highestDiff(o bitset) int {
	var (
		w int
		x uint64
	)
	for w = len(b) - 1; w >= 0; w-- {
		x = b[w] ^ o[w]
		if x != 0 {
			return w*64 + 63 - bits.LeadingZeros64(x)
		}
	}

	return -1
}

// indices lists the set positions in ascending order.
func (b bitset) indices() []int {
	out := make([]int, 0, b.count())
	var (
		w int
		x uint64
	)
	for w = range b {
		x = b[w]
		for x != 0 {
			out = append(out, w*64+bits.TrailingZeros64(x))
			x &= x - 1
		}
	}

	return out
}

// count returns the number of set positions.
func (b bitset) count() int {
	c := 0
	for _, x := range b {
		c += bits.OnesCount64(x)
	}

	return c
}

// grayCounter walks all 2ⁿ subsets of n items in reflected Gray-code order.
// Consecutive subsets differ by one item: step k flips bit TrailingZeros(k).
// The step counter is itself multi-word, so n is bounded only by memory.
type grayCounter struct {
	n    int
	step bitset // binary step counter, n+1 bits wide
}

func newGrayCounter(n int) *grayCounter {
	return &grayCounter{n: n, step: newBitset(n + 1)}
}

// next advances the counter and returns the index of the item to flip.
// It returns -1 once every subset has been produced.
func (g *grayCounter) next() int {
	var w int
	// Increment the multi-word counter; carry while words wrap to zero.
	for w = 0; w < len(g.step); w++ {
		g.step[w]++
		if g.step[w] != 0 {
			break
		}
	}
	// Position of the lowest set bit of the new counter value.
	var tz int
	for w = 0; w < len(g.step); w++ {
		if g.step[w] != 0 {
			tz = w*64 + bits.TrailingZeros64(g.step[w])
			break
		}
	}
	if tz >= g.n {
		return -1
	}

	return tz
}
