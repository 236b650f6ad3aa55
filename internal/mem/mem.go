// Package mem provides small byte-slice helpers shared by the bit-string and
// sponge packages.
//
// The permutation-parallel hazmat packages this core was grounded on split
// these helpers into per-architecture assembly variants; the examples
// retrieved for this module did not include usable assembly sources (the
// .s files were not present alongside the arch-tagged declarations), so this
// package carries only the portable Go implementations. See DESIGN.md.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i, for i < len(dst).
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}

// XORAndCopy sets dst[i] = a[i] ^ b[i] and b[i] = dst[i] for each i.
func XORAndCopy(dst, a, b []byte) {
	for i := range dst {
		d := a[i] ^ b[i]
		dst[i] = d
		b[i] = d
	}
}

// XORAndReplace sets dst[i] = src[i] ^ state[i] and state[i] = src[i] for each i.
func XORAndReplace(dst, src, state []byte) {
	for i, c := range src[:len(dst)] {
		dst[i] = c ^ state[i]
		state[i] = c
	}
}

// SliceForAppend takes a slice and a requested number of bytes, returning a
// slice with that many bytes and a second slice of the same length referring
// to the tail of the first. If the original slice has sufficient capacity,
// no allocation occurs.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
