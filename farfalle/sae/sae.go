// Package sae implements Farfalle-SAE, a session-based authenticated-
// encryption mode that accumulates a running history of every associated-data
// and ciphertext block exchanged over the session, built on
// [farfalle.Farfalle].
package sae

import (
	"crypto/subtle"
	"errors"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/farfalle"
)

// ErrAuthenticationFailed is returned by New (on the receiver side) and by
// Unwrap when a tag does not match. Per the construction, a failure at
// either point means the session is no longer synchronized and must be
// abandoned.
var ErrAuthenticationFailed = errors.New("sae: authentication failed")

// SAE is a session-stateful Farfalle-SAE instance. Create one with New (which
// also produces or checks the initial tag T0), then call Wrap repeatedly on
// the sender side or Unwrap repeatedly on the receiver side, in matching
// order. An SAE must never be shared between sender and receiver, nor used
// concurrently.
type SAE struct {
	f       *farfalle.Farfalle
	t       int
	offset  int
	k       bits.BitString
	history bits.BitStrings
}

// New starts a Farfalle-SAE session under key K and nonce N, with tag length
// t bits and output block length l bits (offset is derived from t and l as
// l*ceil(t/l)).
//
// On the sender side (sender == true), the initial tag T0 is computed and
// returned. On the receiver side (sender == false), t0 must hold the sender's
// T0; it is checked against the locally computed value and
// ErrAuthenticationFailed is returned on mismatch.
func New(f *farfalle.Farfalle, t, l int, k, n bits.BitString, sender bool, t0 bits.BitString) (*SAE, bits.BitString, error) {
	offset := l * ((t + l - 1) / l)
	history := bits.Of(n)
	tp := f.Eval(k, history, t, 0)

	if sender {
		return &SAE{f: f, t: t, offset: offset, k: k, history: history}, tp, nil
	}

	if subtle.ConstantTimeCompare(tp.Bytes(), t0.Bytes()) != 1 {
		return nil, bits.Empty(), ErrAuthenticationFailed
	}

	return &SAE{f: f, t: t, offset: offset, k: k, history: history}, tp, nil
}

// Wrap encrypts P, authenticating A and P, and extends the session history.
// Returns the ciphertext and a t-bit tag.
func (s *SAE) Wrap(a, p bits.BitString) (c, t bits.BitString) {
	c = p.Xor(s.f.Eval(s.k, s.history, p.Size(), s.offset))

	if a.Size() > 0 || p.Size() == 0 {
		s.history = bits.Append(s.history, a.AppendBit(0))
	}
	if p.Size() > 0 {
		s.history = bits.Append(s.history, c.AppendBit(1))
	}

	t = s.f.Eval(s.k, s.history, s.t, 0)
	return c, t
}

// Unwrap decrypts C, authenticating A and the received tag T, and extends
// the session history. On success, returns the plaintext. On a tag
// mismatch, returns ErrAuthenticationFailed; the session must not be used
// further.
func (s *SAE) Unwrap(a, c, t bits.BitString) (bits.BitString, error) {
	p := c.Xor(s.f.Eval(s.k, s.history, c.Size(), s.offset))

	if a.Size() > 0 || c.Size() == 0 {
		s.history = bits.Append(s.history, a.AppendBit(0))
	}
	if c.Size() > 0 {
		s.history = bits.Append(s.history, c.AppendBit(1))
	}

	tp := s.f.Eval(s.k, s.history, s.t, 0)
	if subtle.ConstantTimeCompare(tp.Bytes(), t.Bytes()) != 1 {
		return bits.Empty(), ErrAuthenticationFailed
	}

	return p, nil
}
