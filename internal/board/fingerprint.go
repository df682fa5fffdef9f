package board

import (
	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns an order-independent hash of b's entry set, used for
// Repeat's visited-set cycle detection and for deduplicating FindReplace
// successors. Entries are sorted by coordinate before hashing so that two
// boards built in a different insertion order (maps have none) still
// fingerprint identically.
//
// This is a one-shot analogue of a dual weak-hash/Zobrist position
// identity scheme, adapted to a non-incremental, order-independent hash
// over a sparse coordinate set rather than a fixed 8x8 grid.
func (b Board) Fingerprint() uint64 {
	coords := b.Coords()
	h := xxhash.New()
	var buf [20]byte
	for _, c := range coords {
		spec := b[c]
		n := putVarint(buf[:], int64(c.X))
		n += putVarint(buf[n:], int64(c.Y))
		_, _ = h.Write(buf[:n])
		if spec.Negated {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte(spec.Chars))
		_, _ = h.Write([]byte{0}) // separator so "AB" != "A","B" across fields
	}
	return h.Sum64()
}

// putVarint is a tiny zig-zag varint encoder; avoids importing encoding/
// binary purely for this one call site's signed ints.
func putVarint(buf []byte, v int64) int {
	u := uint64((v << 1) ^ (v >> 63))
	i := 0
	for u >= 0x80 {
		buf[i] = byte(u) | 0x80
		u >>= 7
		i++
	}
	buf[i] = byte(u)
	return i + 1
}
