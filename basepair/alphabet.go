// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package basepair

// Base is an ASCII nucleotide symbol.
type Base byte

const (
	A Base = 'A'
	T Base = 'T'
	G Base = 'G'
	C Base = 'C'
)

// Alphabet lists the bases in enumeration order.
var Alphabet = [4]Base{A, T, G, C}

// Pair is an ordered (first, second) combination of bases.
type Pair struct {
	First, Second Base
}

// String returns the two-letter form of the pair, e.g. "AG".
func (p Pair) String() string {
	return string([]byte{byte(p.First), byte(p.Second)})
}

// Excluded reports whether (i, k) is one of the four complementary pairs that
// are never printed. The cases are matched literally rather than through a
// complement table, so symbols outside the alphabet are never excluded.
func Excluded(i, k Base) bool {
	if (i == T && k == A) || (i == A && k == T) {
		return true
	}
	if (i == G && k == C) || (i == C && k == G) {
		return true
	}
	return false
}

// Pairs returns the non-excluded ordered pairs of Alphabet, first base in the
// outer loop, second base in the inner loop.
func Pairs() []Pair {
	pairs := make([]Pair, 0, len(Alphabet)*len(Alphabet)-4)
	for _, i := range Alphabet {
		for _, k := range Alphabet {
			if Excluded(i, k) {
				continue
			}
			pairs = append(pairs, Pair{i, k})
		}
	}
	return pairs
}
