// Package monkeywrap implements MonkeyWrap, the authenticated-encryption
// mode built on [duplex.MonkeyDuplex] that underlies Ketje.
package monkeywrap

import (
	"crypto/subtle"
	"errors"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/duplex"
	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

// ErrAuthenticationFailed is returned by Unwrap when the received tag does
// not match. The session must not be used further.
var ErrAuthenticationFailed = errors.New("monkeywrap: authentication failed")

// MonkeyWrap is a session-stateful authenticated-encryption object. Create
// one with New, call Initialize exactly once, then any number of Wrap calls
// on the sender side or Unwrap calls on the receiver side, in matching order.
// A MonkeyWrap must never be shared between sender and receiver, nor used
// concurrently.
type MonkeyWrap struct {
	rho int
	d   *duplex.MonkeyDuplex
}

// New returns a MonkeyWrap over the iterable permutation f with payload rate
// rho and round counts (nStart, nStep, nStride). The underlying duplex rate
// is rho+4. Panics if rho+4 exceeds the permutation width.
func New(f keccakp.Iterable, rho, nStart, nStep, nStride int) *MonkeyWrap {
	if rho+4 > f.Width() {
		panic("monkeywrap: rho must be less than or equal to the permutation width minus 4")
	}
	return &MonkeyWrap{
		rho: rho,
		d:   duplex.New(f, rho+4, nStart, nStep, nStride),
	}
}

// Initialize starts a session with key K and nonce N. Panics if |K|+18 or
// |N|+|K|+18 exceed the permutation width, or if |K| is not a multiple of 8.
func (w *MonkeyWrap) Initialize(k, n bits.BitString) {
	width := w.d.Width()
	if k.Size()+18 > width {
		panic("monkeywrap: |K|+18 must be less than or equal to the permutation width")
	}
	if k.Size()%8 != 0 {
		panic("monkeywrap: |K| must be a multiple of 8")
	}
	if n.Size()+k.Size()+18 > width {
		panic("monkeywrap: |N|+|K|+18 must be less than or equal to the permutation width")
	}

	i := bits.Keypack(k, k.Size()+16).Concat(n)
	w.d.Start(i)
}

// Wrap encrypts B, authenticating A and B, and advances the session. Returns
// the ciphertext and an ell-bit tag.
func (w *MonkeyWrap) Wrap(a, b bits.BitString, ell int) (c, t bits.BitString) {
	ablocks := bits.NewBlocksReadOnly(a, w.rho)
	bblocks := bits.NewBlocksReadOnly(b, w.rho)
	var cbuf bits.BitString
	cblocks := bits.NewBlocks(&cbuf, w.rho)

	na := ablocks.Count()
	nb := bblocks.Count()

	for i := 0; i+2 <= na; i++ {
		ai := ablocks.Block(i).Bits()
		w.d.Step(ai.AppendBit(0).AppendBit(0), 0)
	}

	lastA := ablocks.Block(na - 1).Bits()
	b0 := bblocks.Block(0).Bits()
	z := w.d.Step(lastA.AppendBit(0).AppendBit(1), b0.Size())
	cblocks.Block(0).Set(b0.Xor(z))

	for i := 0; i+2 <= nb; i++ {
		bi := bblocks.Block(i).Bits()
		bNext := bblocks.Block(i + 1).Bits()
		z = w.d.Step(bi.AppendBit(1).AppendBit(1), bNext.Size())
		cblocks.Block(i + 1).Set(bNext.Xor(z))
	}

	lastB := bblocks.Block(nb - 1).Bits()
	tag := w.d.Stride(lastB.AppendBit(1).AppendBit(0), w.rho)
	for tag.Size() < ell {
		tag = tag.Concat(w.d.Step(bits.Empty(), w.rho))
	}
	tag = tag.Truncate(ell)

	return cbuf, tag
}

// Unwrap decrypts C, authenticating A and the received tag T, and advances
// the session. On success, returns the plaintext. On a tag mismatch, returns
// ErrAuthenticationFailed; the session must not be used further.
func (w *MonkeyWrap) Unwrap(a, c, t bits.BitString) (bits.BitString, error) {
	ablocks := bits.NewBlocksReadOnly(a, w.rho)
	cblocks := bits.NewBlocksReadOnly(c, w.rho)
	var bbuf bits.BitString
	bblocks := bits.NewBlocks(&bbuf, w.rho)

	na := ablocks.Count()
	nc := cblocks.Count()

	for i := 0; i+2 <= na; i++ {
		ai := ablocks.Block(i).Bits()
		w.d.Step(ai.AppendBit(0).AppendBit(0), 0)
	}

	lastA := ablocks.Block(na - 1).Bits()
	c0 := cblocks.Block(0).Bits()
	z := w.d.Step(lastA.AppendBit(0).AppendBit(1), c0.Size())
	b0 := c0.Xor(z)
	bblocks.Block(0).Set(b0)

	for i := 0; i+2 <= nc; i++ {
		bi := bblocks.Block(i).Bits()
		cNext := cblocks.Block(i + 1).Bits()
		z = w.d.Step(bi.AppendBit(1).AppendBit(1), cNext.Size())
		bNext := cNext.Xor(z)
		bblocks.Block(i + 1).Set(bNext)
	}

	lastB := bblocks.Block(nc - 1).Bits()
	tprime := w.d.Stride(lastB.AppendBit(1).AppendBit(0), w.rho)
	for tprime.Size() < t.Size() {
		tprime = tprime.Concat(w.d.Step(bits.Empty(), w.rho))
	}
	tprime = tprime.Truncate(t.Size())

	if subtle.ConstantTimeCompare(tprime.Bytes(), t.Bytes()) != 1 {
		return bits.Empty(), ErrAuthenticationFailed
	}

	return bbuf, nil
}
