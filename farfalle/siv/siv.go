// Package siv implements Farfalle-SIV, a deterministic (nonce-misuse
// resistant) authenticated-encryption mode built on [farfalle.Farfalle].
package siv

import (
	"crypto/subtle"
	"errors"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/farfalle"
)

// ErrAuthenticationFailed is returned by Unwrap on a tag mismatch.
var ErrAuthenticationFailed = errors.New("siv: authentication failed")

// SIV is a stateless Farfalle-SIV instance: every operation is a pure
// function of its arguments, so one instance may be shared freely across
// goroutines.
type SIV struct {
	f *farfalle.Farfalle
	t int
}

// New returns a Farfalle-SIV instance using f with tag length t bits.
func New(f *farfalle.Farfalle, t int) *SIV {
	return &SIV{f: f, t: t}
}

// Wrap computes T = F(K, P*A, t) then C = P ^ F(K, T*A, |P|), and returns
// (C, T).
func (s *SIV) Wrap(k, a, p bits.BitString) (c, t bits.BitString) {
	t = s.f.Eval(k, bits.Append(bits.Of(a), p), s.t, 0)
	c = p.Xor(s.f.Eval(k, bits.Append(bits.Of(a), t), p.Size(), 0))
	return c, t
}

// Unwrap recomputes P = C ^ F(K, T*A, |C|) and verifies T against a freshly
// computed tag. Returns ErrAuthenticationFailed on mismatch.
func (s *SIV) Unwrap(k, a, c, t bits.BitString) (bits.BitString, error) {
	p := c.Xor(s.f.Eval(k, bits.Append(bits.Of(a), t), c.Size(), 0))
	tPrime := s.f.Eval(k, bits.Append(bits.Of(a), p), s.t, 0)

	if subtle.ConstantTimeCompare(tPrime.Bytes(), t.Bytes()) != 1 {
		return bits.Empty(), ErrAuthenticationFailed
	}

	return p, nil
}
