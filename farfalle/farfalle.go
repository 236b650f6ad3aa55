// Package farfalle implements the Farfalle keyed pseudo-random function:
// F(K, Mseq, n, q), built from four permutations (b/c/d/e) and two rolling
// functions over the message sequence Mseq.
package farfalle

import (
	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

// RollingFunction derives a per-index whitening value from a master key: a
// deterministic (k, i) -> k_i function. The exact derivation is a property
// of the instance injected at construction; Farfalle's core does not inspect
// it.
type RollingFunction interface {
	Roll(k bits.BitString, i int) bits.BitString
}

// IdentityRollingFunction is the degenerate rolling function that returns k
// unchanged for every index.
type IdentityRollingFunction struct{}

// Roll implements RollingFunction by returning k unchanged.
func (IdentityRollingFunction) Roll(k bits.BitString, _ int) bits.BitString {
	return k
}

// LaneRotateRollingFunction rotates k's backing bytes left by i bytes modulo
// its length, a simple non-degenerate rolling function in the style of
// Kravatte's roll_c (a per-index lane permutation derived from the key).
// Instances with |k|==0 roll to the empty string at every index.
type LaneRotateRollingFunction struct{}

// Roll implements RollingFunction by byte-rotating k by i positions.
func (LaneRotateRollingFunction) Roll(k bits.BitString, i int) bits.BitString {
	n := len(k.Bytes())
	if n == 0 {
		return k
	}
	shift := i % n
	rotated := make([]byte, n)
	for j := 0; j < n; j++ {
		rotated[j] = k.Bytes()[(j+shift)%n]
	}
	out := bits.FromBytes(rotated)
	return out.Truncate(k.Size())
}

// Farfalle is an immutable, shareable instance of the Farfalle construction:
// four permutations on the same width b and two rolling functions.
type Farfalle struct {
	b, c, d, e keccakp.Iterable
	rollC      RollingFunction
	rollE      RollingFunction
	roundsB    int
	roundsC    int
	roundsD    int
	roundsE    int
}

// New returns a Farfalle instance. The four permutations must share a common
// width; each is driven for the given number of rounds.
func New(pb, pc, pd, pe keccakp.Iterable, roundsB, roundsC, roundsD, roundsE int, rollC, rollE RollingFunction) *Farfalle {
	if pb.Width() != pc.Width() || pc.Width() != pd.Width() || pd.Width() != pe.Width() {
		panic("farfalle: p_b, p_c, p_d, p_e must share a common width")
	}
	return &Farfalle{
		b: pb, c: pc, d: pd, e: pe,
		rollC: rollC, rollE: rollE,
		roundsB: roundsB, roundsC: roundsC, roundsD: roundsD, roundsE: roundsE,
	}
}

// Width returns b, the shared permutation width in bits.
func (f *Farfalle) Width() int {
	return f.b.Width()
}

// Eval computes F(K, Mseq, n, q): n bits of pseudo-random output starting at
// offset q, keyed by K and bound to the message sequence Mseq. |K| must be at
// most b-1 bits.
func (f *Farfalle) Eval(k bits.BitString, mseq bits.BitStrings, n, q int) bits.BitString {
	b := f.Width()
	if k.Size() > b-1 {
		panic("farfalle: key length must be less than b bits")
	}

	kp := k.Concat(bits.Pad10(b, k.Size()))
	kBuf := permute(f.b, f.roundsB, kp)

	x := bits.Zeroes(b)
	idx := 0

	for _, m := range mseq {
		mu := (m.Size() + b) / b
		mPrime := m.Concat(bits.Pad10(mu*b, m.Size()))
		mblocks := bits.NewBlocksReadOnly(mPrime, b)

		for i := idx; i <= idx+mu-1; i++ {
			block := mblocks.Block(i - idx).Bits()
			rolled := f.rollC.Roll(kBuf, i)
			x = x.Xor(permute(f.c, f.roundsC, block.Xor(rolled)))
		}

		idx = idx + mu + 1
	}

	kPrime := f.rollC.Roll(kBuf, idx)
	y := permute(f.d, f.roundsD, x)

	var stream bits.BitString
	zblocks := bits.NewBlocks(&stream, b)
	for j := 0; b*j < n+q; j++ {
		rolled := f.rollE.Roll(y, j)
		z := permute(f.e, f.roundsE, rolled).Xor(kPrime)
		zblocks.Block(j).Set(z)
	}

	return bits.Substring(stream, q, n)
}

func permute(p keccakp.Iterable, rounds int, in bits.BitString) bits.BitString {
	if in.Size() != p.Width() {
		panic("farfalle: permutation input must be exactly b bits")
	}
	buf := append([]byte(nil), in.Bytes()...)
	p.Round(rounds).Apply(buf)
	return bits.FromBytes(buf)
}
