// Package wbcae implements Farfalle-WBC-AE, an authenticated variant of
// [wbc.WBC] that appends a zero-redundancy tag to the plaintext before
// enciphering it and checks that the tag deciphers back to zero.
package wbcae

import (
	"errors"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/farfalle/wbc"
)

// ErrAuthenticationFailed is returned by Unwrap when the redundancy tag does
// not decipher to zero.
var ErrAuthenticationFailed = errors.New("wbcae: authentication failed")

// WBCAE is a stateless Farfalle-WBC-AE instance built on a [wbc.WBC] core
// plus a t-bit redundancy tag.
type WBCAE struct {
	w *wbc.WBC
	t int
}

// New returns a Farfalle-WBC-AE instance over core with redundancy tag
// length t bits.
func New(core *wbc.WBC, t int) *WBCAE {
	return &WBCAE{w: core, t: t}
}

// Wrap authenticates A and encrypts P under key K and tweak A, appending a
// t-bit zero redundancy tag before enciphering. The returned ciphertext is
// |P|+t bits long.
func (a *WBCAE) Wrap(k, assoc, p bits.BitString) bits.BitString {
	pp := p.Concat(bits.Zeroes(a.t))
	return a.w.Encipher(k, assoc, pp)
}

// Unwrap deciphers C under key K and tweak A and checks that the trailing
// t-bit redundancy tag is zero. On success, returns the |C|-t bit plaintext.
// On a tag mismatch, returns ErrAuthenticationFailed.
func (a *WBCAE) Unwrap(k, assoc, c bits.BitString) (bits.BitString, error) {
	b := a.w.H().Width()

	nL := a.w.Split(c.Size())
	nR := c.Size() - nL
	l := bits.Substring(c, 0, nL)
	r := bits.Substring(c, nL, nR)

	hval := a.w.H().Eval(k, bits.Of(r.AppendBit(1)), min(b, l.Size()), 0)
	l = l.Xor(hval.Concat(bits.Zeroes(l.Size() - hval.Size())))
	r = r.Xor(a.w.G().Eval(k, bits.Append(bits.Of(assoc), l.AppendBit(0)), r.Size(), 0))

	// allZero ORs every byte together and tests once, so its running time
	// does not depend on which bit (if any) is set.
	allZero := func(s bits.BitString) bool {
		var acc byte
		for _, v := range s.Bytes() {
			acc |= v
		}
		return acc == 0
	}

	var pp bits.BitString

	if r.Size() >= b+a.t {
		if !allZero(bits.Substring(r, r.Size()-a.t, a.t)) {
			return bits.Empty(), ErrAuthenticationFailed
		}
		l = l.Xor(a.w.G().Eval(k, bits.Append(bits.Of(assoc), r.AppendBit(1)), l.Size(), 0))
		hval = a.w.H().Eval(k, bits.Of(l.AppendBit(0)), b, 0)
		r = r.Xor(hval.Concat(bits.Zeroes(r.Size() - hval.Size())))
		pp = l.Concat(r)
	} else {
		l = l.Xor(a.w.G().Eval(k, bits.Append(bits.Of(assoc), r.AppendBit(1)), l.Size(), 0))
		hval = a.w.H().Eval(k, bits.Of(l.AppendBit(0)), min(b, r.Size()), 0)
		r = r.Xor(hval.Concat(bits.Zeroes(r.Size() - hval.Size())))
		pp = l.Concat(r)
		if !allZero(bits.Substring(pp, c.Size()-a.t, a.t)) {
			return bits.Empty(), ErrAuthenticationFailed
		}
	}

	return pp.Truncate(c.Size() - a.t), nil
}
