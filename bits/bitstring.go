// Package bits implements the bit-granular substrate that the sponge modes in
// this module are built on: an arbitrary-length bit string with concatenation,
// XOR, substring extraction and truncation, plus the pad10*/pad10*1 padding
// families and a non-owning Block/Blocks window over a BitString.
//
// Bits beyond the declared length of a BitString are always zero; every
// mutating operation re-establishes that invariant before returning, so two
// BitStrings of equal length and equal bits compare equal regardless of how
// they were built.
package bits

import (
	"github.com/KeccakTeam/KeccakTools-sub001/internal/mem"
)

// BitString is an ordered, immutable-by-convention sequence of bits. Bytes
// are packed least-significant-bit-first: bit i lives in byte i/8 at position
// i%8. When the length is not a multiple of 8, the high bits of the final
// byte are always zero.
type BitString struct {
	b []byte
	n int
}

// Zeroes returns an all-zero BitString of the given length.
func Zeroes(n int) BitString {
	return BitString{b: make([]byte, (n+7)/8), n: n}
}

// Ones returns an all-one BitString of the given length.
func Ones(n int) BitString {
	s := Zeroes(n)
	for i := range s.b {
		s.b[i] = 0xFF
	}
	s.clearTail()
	return s
}

// FromBytes returns the BitString consisting of all bits of b, in order.
// The returned value does not alias b.
func FromBytes(b []byte) BitString {
	cp := make([]byte, len(b))
	copy(cp, b)
	return BitString{b: cp, n: 8 * len(b)}
}

// Empty returns the zero-length BitString.
func Empty() BitString {
	return BitString{}
}

// Size returns the length of s in bits.
func (s BitString) Size() int {
	return s.n
}

// Bit returns the value (0 or 1) of the i-th bit of s. Panics if i is out of range.
func (s BitString) Bit(i int) int {
	if i < 0 || i >= s.n {
		panic("bits: bit index out of range")
	}
	return int(s.b[i/8]>>(i%8)) & 1
}

// Bytes returns the byte-packed representation of s. If s.Size() is not a
// multiple of 8, the high bits of the last byte are zero. The caller must not
// modify the returned slice.
func (s BitString) Bytes() []byte {
	return s.b
}

// clearTail zeroes any bits beyond s.n within the final byte.
func (s *BitString) clearTail() {
	if s.n%8 != 0 {
		s.b[s.n/8] &= (1 << (s.n % 8)) - 1
	}
}

// Concat returns s || t, the bit-exact concatenation of s and t. When
// s.Size() is not a multiple of 8, the bits of t are shifted into the partial
// final byte of s rather than byte-aligned.
func (s BitString) Concat(t BitString) BitString {
	out := Zeroes(s.n + t.n)
	copy(out.b, s.b)

	if s.n%8 == 0 {
		copy(out.b[s.n/8:], t.b)
		out.clearTail()
		return out
	}

	// Slow path: shift every bit of t into place one at a time.
	pos := s.n
	for i := 0; i < t.n; i++ {
		if t.Bit(i) == 1 {
			out.b[pos/8] |= 1 << (pos % 8)
		}
		pos++
	}
	return out
}

// AppendBit returns s || bit, where bit must be 0 or 1.
func (s BitString) AppendBit(bit int) BitString {
	out := Zeroes(s.n + 1)
	copy(out.b, s.b)
	if bit&1 == 1 {
		out.b[s.n/8] |= 1 << (s.n % 8)
	}
	return out
}

// Xor returns s ^ t. Panics if s.Size() != t.Size().
func (s BitString) Xor(t BitString) BitString {
	if s.n != t.n {
		panic("bits: XOR requires equal-length operands")
	}
	out := BitString{b: make([]byte, len(s.b)), n: s.n}
	copy(out.b, s.b)
	mem.XORInPlace(out.b, t.b)
	return out
}

// Truncate returns the first k bits of s. Panics if k > s.Size().
func (s BitString) Truncate(k int) BitString {
	if k > s.n {
		panic("bits: truncate length exceeds size")
	}
	out := BitString{b: make([]byte, (k+7)/8), n: k}
	copy(out.b, s.b[:len(out.b)])
	out.clearTail()
	return out
}

// Substring returns n bits of s starting at bit index i. i must be a
// multiple of 8. If i+n exceeds s.Size(), the result is clamped to
// max(0, s.Size()-i) bits.
func Substring(s BitString, i, n int) BitString {
	if i%8 != 0 {
		panic("bits: substring index must be byte-aligned")
	}
	if i >= s.n {
		return Empty()
	}
	if i+n > s.n {
		n = s.n - i
	}
	out := Zeroes(n)
	copy(out.b, s.b[i/8:])
	out.clearTail()
	return out
}

// Overwrite replaces the bits of s starting at byte-aligned bit index i with
// the bits of t, extending s if necessary, and returns the result. i must be
// a multiple of 8.
func Overwrite(s BitString, t BitString, i int) BitString {
	if i%8 != 0 {
		panic("bits: overwrite index must be byte-aligned")
	}
	n := max(s.n, i+t.n)
	out := Zeroes(n)
	copy(out.b, s.b)
	for j := 0; j < t.n; j++ {
		idx := i + j
		out.b[idx/8] &^= 1 << (idx % 8)
		if t.Bit(j) == 1 {
			out.b[idx/8] |= 1 << (idx % 8)
		}
	}
	out.clearTail()
	return out
}

// Equal reports whether s and t have equal length and equal bit contents.
func (s BitString) Equal(t BitString) bool {
	if s.n != t.n {
		return false
	}
	for i := range s.b {
		if s.b[i] != t.b[i] {
			return false
		}
	}
	return true
}

// BitStrings is an ordered sequence of BitString values, used as Farfalle's
// message sequence Mseq = (M0, ..., Mm-1).
type BitStrings []BitString

// Of returns a BitStrings sequence containing the single value m.
func Of(m BitString) BitStrings {
	return BitStrings{m}
}

// Append returns the sequence formed by placing m after all of seq's
// elements. This is Farfalle's `m * seq` notation: seq (or a singleton
// sequence, when the left operand of `*` is a bare BitString) supplies the
// existing context and m is the newest element, placed last.
func Append(seq BitStrings, m BitString) BitStrings {
	out := make(BitStrings, 0, len(seq)+1)
	out = append(out, seq...)
	out = append(out, m)
	return out
}
