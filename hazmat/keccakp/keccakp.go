// Package keccakp implements the Keccak-p permutation family for the widths
// this module's sponge constructions need (200, 400, 800 and 1600 bits), and
// the two carrier abstractions the core consumes: a Simple callable that
// applies a fixed number of rounds to a state buffer, and an Iterable
// callable parameterised by round count.
//
// The core treats the permutation as a black box; this package exists only
// to give the rest of the module something concrete to call. It is a
// portable reference implementation, not a side-channel-hardened one: that
// responsibility belongs to whatever permutation a deployment chooses to
// wire in instead (see [Simple] and [Iterable]).
package keccakp

// Simple applies a permutation to a state buffer in place.
type Simple interface {
	// Apply mutates state, which must be exactly Width()/8 bytes.
	Apply(state []byte)
}

// Iterable is a permutation family parameterised by a round count: Round(n)
// yields the Simple callable that applies n rounds. MonkeyDuplex uses this to
// select among nStart, nStep and nStride round counts on one underlying
// permutation.
type Iterable interface {
	Width() int
	Round(n int) Simple
}

// KeccakP is the Iterable carrier for Keccak-p[Width, *]. The zero value is
// not valid; use [New].
type KeccakP struct {
	width int
}

// New returns the Iterable Keccak-p carrier for the given width in bits.
// width must be one of 200, 400, 800 or 1600 (the permutation widths this
// module's modes are parameterised over; width mod 8 == 0 is a precondition
// of every caller in this module).
func New(width int) KeccakP {
	switch width {
	case 200, 400, 800, 1600:
	default:
		panic("keccakp: unsupported width")
	}
	return KeccakP{width: width}
}

// Width returns the permutation's state width in bits.
func (k KeccakP) Width() int {
	return k.width
}

// Round returns the Simple callable that applies n rounds of Keccak-p[Width]
// to a state buffer, using the last n round constants of the permutation's
// full round schedule (the standard convention for reduced-round Keccak-p
// variants).
func (k KeccakP) Round(n int) Simple {
	return simple{width: k.width, rounds: n}
}

type simple struct {
	width  int
	rounds int
}

func (s simple) Apply(state []byte) {
	Permute(state, s.width, s.rounds)
}

// Permute applies `rounds` rounds of Keccak-p[width] to state in place.
// state must be exactly width/8 bytes. width must be one of 200, 400, 800 or
// 1600; rounds must not exceed the permutation's maximum round count
// (18, 20, 22 and 24 respectively).
func Permute(state []byte, width, rounds int) {
	laneBits := width / 25
	if laneBits*25 != width || len(state)*8 != width {
		panic("keccakp: malformed state for width")
	}

	laneBytes := laneBits / 8
	mask := uint64(1)<<uint(laneBits) - 1
	if laneBits == 64 {
		mask = ^uint64(0)
	}

	maxRounds := 12 + 2*log2(laneBits)
	if rounds < 0 || rounds > maxRounds {
		panic("keccakp: invalid round count for width")
	}

	var a [25]uint64
	for i := 0; i < 25; i++ {
		a[i] = loadLane(state[i*laneBytes:], laneBytes)
	}

	start := maxRounds - rounds
	for rnd := start; rnd < maxRounds; rnd++ {
		round(&a, roundConstants[rnd]&mask, laneBits, mask)
	}

	for i := 0; i < 25; i++ {
		storeLane(state[i*laneBytes:], a[i], laneBytes)
	}
}

func log2(x int) int {
	n := 0
	for x > 1 {
		x >>= 1
		n++
	}
	return n
}

func loadLane(b []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func storeLane(b []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func rotl(x uint64, n, laneBits int, mask uint64) uint64 {
	n %= laneBits
	if n == 0 {
		return x
	}
	return ((x << uint(n)) | (x >> uint(laneBits-n))) & mask
}

// rhoOffsets[x][y] gives the rotation amount applied to lane (x,y) in the rho
// step, as defined by FIPS 202.
var rhoOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// roundConstants holds the iota round constants for the 24-round
// Keccak-p[1600] schedule; a width with maximum round count maxRounds uses
// the low laneBits bits of entries maxRounds-rounds through maxRounds-1.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

func round(a *[25]uint64, rc uint64, laneBits int, mask uint64) {
	at := func(x, y int) uint64 { return a[((x%5)+5)%5+5*(((y%5)+5)%5)] }
	set := func(x, y int, v uint64) { a[((x%5)+5)%5+5*(((y%5)+5)%5)] = v }

	// Theta
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = at(x, 0) ^ at(x, 1) ^ at(x, 2) ^ at(x, 3) ^ at(x, 4)
	}
	var d [5]uint64
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl(c[(x+1)%5], 1, laneBits, mask)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			set(x, y, at(x, y)^d[x])
		}
	}

	// Rho and Pi
	var b [25]uint64
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			nx, ny := y, (2*x+3*y)%5
			b[nx+5*ny] = rotl(at(x, y), rhoOffsets[x][y], laneBits, mask)
		}
	}

	// Chi
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			v := b[x+5*y] ^ ((^b[(x+1)%5+5*y]) & b[(x+2)%5+5*y])
			a[x+5*y] = v & mask
		}
	}

	// Iota
	a[0] ^= rc
}
