// Package motorist (continued): Motorist itself, the three-phase session
// object wrapping an Engine of Pistons.
package motorist

import (
	"bufio"
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

// phase tracks Motorist's session state machine.
type phase int

const (
	ready phase = iota
	riding
	failed
)

// ErrNotRiding is returned by Wrap when the session has not been started, or
// has failed, or has not completed StartEngine.
var ErrNotRiding = errors.New("motorist: session is not in the riding phase")

// ErrNotReady is returned by StartEngine when the session has already been
// started.
var ErrNotReady = errors.New("motorist: session is not in the ready phase")

// ErrAuthenticationFailed is returned by StartEngine or Wrap, on the
// unwrapping side, when the recovered tag does not match the one supplied.
// The session transitions to its failed phase and must not be used further.
var ErrAuthenticationFailed = errors.New("motorist: authentication failed")

// Motorist is Keyak's parallel-sponge engine: pi independent Pistons over a
// width-bit permutation f, each with a w-bit-granular crypt rate derived
// from the outer capacity c, wrapped under a single tau-bit session tag.
type Motorist struct {
	engine  *Engine
	pistons []*Piston
	pi      int
	w, c    int
	cprime  int
	tau     int
	state   phase
}

// New returns a Motorist with pi pistons over permutation f (width bits),
// capacity c bits, and session tag length tau bits. The lane size w is
// derived from the permutation width as max(width/25, 8), matching the
// Keccak-p lane size.
func New(f keccakp.Simple, width, pi, c, tau int) *Motorist {
	w := max(width/25, 8)
	rs := w / 8 * ((width - max(c, 32)) / w)
	ra := w / 8 * ((width - 32) / w)

	pistons := make([]*Piston, pi)
	for i := range pistons {
		pistons[i] = NewPiston(f, width, rs, ra)
	}

	return &Motorist{
		engine:  NewEngine(pistons),
		pistons: pistons,
		pi:      pi,
		w:       w,
		c:       c,
		cprime:  w * ((c + w - 1) / w),
		tau:     tau,
		state:   ready,
	}
}

// W returns the lane size used to derive the piston rates, in bits.
func (m *Motorist) W() int {
	return m.w
}

// C returns the capacity in bits.
func (m *Motorist) C() int {
	return m.c
}

// StartEngine diversifies the pistons on suv (the session/user/vector
// string) and, if forget is set, immediately ratchets the state via
// MakeKnot. If tagFlag is set, the tau-bit session tag is either produced
// (unwrap == false, returned in the first result) or checked against tag
// (unwrap == true); a mismatch returns ErrAuthenticationFailed and moves the
// session to its failed phase.
func (m *Motorist) StartEngine(suv []byte, tagFlag, unwrap, forget bool, tag []byte) ([]byte, error) {
	if m.state != ready {
		return nil, ErrNotReady
	}

	if err := m.engine.InjectCollective(bytes.NewReader(suv), true); err != nil {
		return nil, err
	}
	if forget {
		if err := m.makeKnot(); err != nil {
			return nil, err
		}
	}
	m.state = riding

	return m.handleTag(tagFlag, unwrap, tag)
}

// Wrap runs the engine to completion over plaintext/ciphertext stream i and
// associated-data stream a (unwrap selects decryption), then always
// finalizes with a session tag: MakeKnot runs first whenever there is more
// than one piston, or forget is set. Returns the crypt output and, on the
// unwrap side, surfaces ErrAuthenticationFailed (with nil output) on a tag
// mismatch.
func (m *Motorist) Wrap(i, a io.Reader, unwrap, forget bool, tag []byte) ([]byte, []byte, error) {
	if m.state != riding {
		return nil, nil, ErrNotRiding
	}

	bi := bufio.NewReader(i)
	ba := bufio.NewReader(a)
	var o bytes.Buffer

	for {
		if err := m.engine.Wrap(bi, &o, ba, unwrap); err != nil {
			return nil, nil, err
		}
		if !hasMore(bi) && !hasMore(ba) {
			break
		}
	}

	if m.pi > 1 || forget {
		if err := m.makeKnot(); err != nil {
			return nil, nil, err
		}
	}

	producedTag, err := m.handleTag(true, unwrap, tag)
	if err != nil {
		return nil, nil, err
	}

	return o.Bytes(), producedTag, nil
}

// makeKnot folds a c'-bit tag from every piston back into all of them,
// ratcheting the session state so that past input cannot be recovered even
// if a later key or state leaks.
func (m *Motorist) makeKnot() error {
	var tPrime bytes.Buffer
	l := make([]int, m.pi)
	for i := range l {
		l[i] = m.cprime / 8
	}
	if err := m.engine.GetTags(&tPrime, l); err != nil {
		return err
	}
	return m.engine.InjectCollective(bytes.NewReader(tPrime.Bytes()), false)
}

// handleTag produces or checks the session tag: only the first piston
// contributes tau/8 bytes, the rest contribute none.
func (m *Motorist) handleTag(tagFlag, unwrap bool, tag []byte) ([]byte, error) {
	l := make([]int, m.pi)
	var tPrime bytes.Buffer

	if !tagFlag {
		if err := m.engine.GetTags(&tPrime, l); err != nil {
			return nil, err
		}
		return nil, nil
	}

	l[0] = m.tau / 8
	if err := m.engine.GetTags(&tPrime, l); err != nil {
		return nil, err
	}

	if !unwrap {
		return tPrime.Bytes(), nil
	}

	if subtle.ConstantTimeCompare(tPrime.Bytes(), tag) != 1 {
		m.state = failed
		return nil, ErrAuthenticationFailed
	}

	return tag, nil
}
