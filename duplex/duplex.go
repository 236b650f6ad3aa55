// Package duplex implements MonkeyDuplex, the stateful duplex object that
// MonkeyWrap (and, through it, Ketje) is built on.
package duplex

import (
	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

// MonkeyDuplex is a width-bit duplex object parameterised by an outer rate r
// and three round counts (nStart, nStep, nStride) with nStep < nStride. It is
// stateful: start, then any number of step/stride calls, and must never be
// shared between two sessions.
type MonkeyDuplex struct {
	f       keccakp.Iterable
	r       int
	nStart  int
	nStep   int
	nStride int
	s       bits.BitString
}

// New returns a MonkeyDuplex over the iterable permutation f with outer rate
// r and round counts (nStart, nStep, nStride). Panics if r is not in
// (2, f.Width()) or nStep >= nStride.
func New(f keccakp.Iterable, r, nStart, nStep, nStride int) *MonkeyDuplex {
	if r <= 2 {
		panic("duplex: r must be greater than 2")
	}
	if r >= f.Width() {
		panic("duplex: r must be less than the permutation width")
	}
	if nStep >= nStride {
		panic("duplex: nStep must be less than nStride")
	}
	return &MonkeyDuplex{f: f, r: r, nStart: nStart, nStep: nStep, nStride: nStride}
}

// Width returns the width in bits of the underlying permutation.
func (d *MonkeyDuplex) Width() int {
	return d.f.Width()
}

// Start initialises the duplex state from I: s <- I || pad10*1(width, |I|),
// then applies F[nStart]. Panics if |I|+2 > width.
func (d *MonkeyDuplex) Start(i bits.BitString) {
	if i.Size()+2 > d.f.Width() {
		panic("duplex: |I| must be less than or equal to the permutation width minus 2")
	}
	d.s = i.Concat(bits.Pad10Star1(d.f.Width(), i.Size()))
	d.applyRounds(d.nStart)
}

// Step absorbs sigma with frame-free padding, applies F[nStep], and returns
// the first ell bits of the resulting state. Panics if ell > r or
// |sigma|+2 > r.
func (d *MonkeyDuplex) Step(sigma bits.BitString, ell int) bits.BitString {
	return d.absorb(sigma, ell, d.nStep)
}

// Stride is identical to Step but applies F[nStride], the "stronger"
// separator used exactly once per message, immediately before the final tag
// squeeze.
func (d *MonkeyDuplex) Stride(sigma bits.BitString, ell int) bits.BitString {
	return d.absorb(sigma, ell, d.nStride)
}

func (d *MonkeyDuplex) absorb(sigma bits.BitString, ell, rounds int) bits.BitString {
	if ell > d.r {
		panic("duplex: ell must be less than or equal to r")
	}
	if sigma.Size()+2 > d.r {
		panic("duplex: |sigma| must be less than or equal to r minus 2")
	}

	p := sigma.Concat(bits.Pad10Star1(d.r, sigma.Size()))
	p = p.Concat(bits.Zeroes(d.f.Width() - d.r))
	d.s = d.s.Xor(p)
	d.applyRounds(rounds)

	return d.s.Truncate(ell)
}

func (d *MonkeyDuplex) applyRounds(n int) {
	state := append([]byte(nil), d.s.Bytes()...)
	d.f.Round(n).Apply(state)
	d.s = bits.FromBytes(state)
}
