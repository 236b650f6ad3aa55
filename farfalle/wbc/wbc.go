// Package wbc implements Farfalle-WBC, a wide-block cipher built from two
// Farfalle instances in a four-round unbalanced Feistel network.
package wbc

import (
	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/farfalle"
)

// WBC is a stateless Farfalle-WBC instance: every operation is a pure
// function of its arguments, so one instance may be shared freely across
// goroutines.
type WBC struct {
	h *farfalle.Farfalle
	g *farfalle.Farfalle
	l int
}

// New returns a Farfalle-WBC instance using H for the outer (short) rounds
// and G for the inner (long) rounds, with branch-length granularity l bits.
func New(h, g *farfalle.Farfalle, l int) *WBC {
	return &WBC{h: h, g: g, l: l}
}

// Split returns n_L, the bit length of the left branch of an n-bit block,
// chosen so that both branches are at least l bits and, where possible, the
// left branch is a multiple of l bits.
func (w *WBC) Split(n int) int {
	b := w.h.Width()

	if n <= 2*b-(w.l+2) {
		return w.l * ((n + w.l) / (2 * w.l))
	}

	q := (n + w.l + 1 + b) / b
	tx := 1
	for (tx << 1) < q {
		tx <<= 1
	}
	return (q-tx)*b - w.l
}

// Encipher enciphers the n-bit block P under key K and tweak W, returning an
// n-bit block C. n must be at least 2*l bits.
func (w *WBC) Encipher(k, tweak, p bits.BitString) bits.BitString {
	b := w.h.Width()

	nL := w.Split(p.Size())
	nR := p.Size() - nL
	l := bits.Substring(p, 0, nL)
	r := bits.Substring(p, nL, nR)

	hval := w.h.Eval(k, bits.Of(l.AppendBit(0)), min(b, r.Size()), 0)
	r = r.Xor(hval.Concat(bits.Zeroes(r.Size() - hval.Size())))
	l = l.Xor(w.g.Eval(k, bits.Append(bits.Of(tweak), r.AppendBit(1)), l.Size(), 0))
	r = r.Xor(w.g.Eval(k, bits.Append(bits.Of(tweak), l.AppendBit(0)), r.Size(), 0))
	hval = w.h.Eval(k, bits.Of(r.AppendBit(1)), min(b, l.Size()), 0)
	l = l.Xor(hval.Concat(bits.Zeroes(l.Size() - hval.Size())))

	return l.Concat(r)
}

// Decipher inverts Encipher: deciphers the n-bit block C under key K and
// tweak W, returning an n-bit block P.
func (w *WBC) Decipher(k, tweak, c bits.BitString) bits.BitString {
	b := w.h.Width()

	nL := w.Split(c.Size())
	nR := c.Size() - nL
	l := bits.Substring(c, 0, nL)
	r := bits.Substring(c, nL, nR)

	hval := w.h.Eval(k, bits.Of(r.AppendBit(1)), min(b, l.Size()), 0)
	l = l.Xor(hval.Concat(bits.Zeroes(l.Size() - hval.Size())))
	r = r.Xor(w.g.Eval(k, bits.Append(bits.Of(tweak), l.AppendBit(0)), r.Size(), 0))
	l = l.Xor(w.g.Eval(k, bits.Append(bits.Of(tweak), r.AppendBit(1)), l.Size(), 0))
	hval = w.h.Eval(k, bits.Of(l.AppendBit(0)), min(b, r.Size()), 0)
	r = r.Xor(hval.Concat(bits.Zeroes(r.Size() - hval.Size())))

	return l.Concat(r)
}

// Width returns H's permutation width in bits.
func (w *WBC) Width() int {
	return w.h.Width()
}

// H returns the Farfalle instance used for the outer (short) rounds.
func (w *WBC) H() *farfalle.Farfalle {
	return w.h
}

// G returns the Farfalle instance used for the inner (long) rounds.
func (w *WBC) G() *farfalle.Farfalle {
	return w.g
}

// L returns the branch-length granularity in bits.
func (w *WBC) L() int {
	return w.l
}
