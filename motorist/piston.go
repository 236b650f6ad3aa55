// Package motorist implements Motorist, Keyak's parallel-sponge engine: Π
// independent Piston lanes driven in lockstep by an Engine, wrapping a
// message and associated data under a single key while interleaving work
// across lanes for throughput.
package motorist

import (
	"bufio"
	"errors"
	"io"

	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

func hasMore(r *bufio.Reader) bool {
	_, err := r.Peek(1)
	return err == nil
}

// Piston is a single sponge lane of a Motorist engine: a permutation f
// applied to a b-bit state, with Rs bytes of crypt rate and Ra bytes of
// inject rate (Rs <= Ra). The state layout reserves four control bytes past
// Ra: an end-of-message marker, a crypt-length marker, and inject-start/end
// length markers.
type Piston struct {
	f     keccakp.Simple
	state []byte
	rs    int
	ra    int

	eom, cryptEnd, injectStart, injectEnd int
	omegaC, omegaI                        int
}

// NewPiston returns a fresh Piston over permutation f (operating on a
// width-bit state) with crypt rate rs bytes and inject rate ra bytes. Panics
// if the parameters violate Motorist's structural constraints.
func NewPiston(f keccakp.Simple, width, rs, ra int) *Piston {
	if width%8 != 0 {
		panic("motorist: width must be a multiple of 8")
	}
	if (width-32)/8 >= 248 {
		panic("motorist: (width-32)/8 must be less than 248")
	}
	if rs > ra {
		panic("motorist: Rs must be less than or equal to Ra")
	}
	if ra > (width-32)/8 {
		panic("motorist: Ra must be less than or equal to (width-32)/8")
	}
	return &Piston{
		f:           f,
		state:       make([]byte, width/8),
		rs:          rs,
		ra:          ra,
		eom:         ra,
		cryptEnd:    ra + 1,
		injectStart: ra + 2,
		injectEnd:   ra + 3,
	}
}

// Clone returns an independent copy of p, sharing the same permutation but
// with its own state.
func (p *Piston) Clone() *Piston {
	state := make([]byte, len(p.state))
	copy(state, p.state)
	return &Piston{
		f: p.f, state: state, rs: p.rs, ra: p.ra,
		eom: p.eom, cryptEnd: p.cryptEnd, injectStart: p.injectStart, injectEnd: p.injectEnd,
		omegaC: p.omegaC, omegaI: p.omegaI,
	}
}

// Crypt consumes up to Rs bytes from r, XORing them with the crypt-rate
// portion of the state and writing the result to w. When unwrap is false
// this encrypts (the state absorbs the plaintext byte); when true it
// decrypts (the state absorbs the recovered plaintext byte). Always
// finalizes the consumed byte count into the state, even when r is
// exhausted early or empty.
func (p *Piston) Crypt(r *bufio.Reader, w io.Writer, unwrap bool) error {
	for hasMore(r) && p.omegaC < p.rs {
		x, err := r.ReadByte()
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte{p.state[p.omegaC] ^ x}); err != nil {
			return err
		}
		if unwrap {
			p.state[p.omegaC] = x
		} else {
			p.state[p.omegaC] ^= x
		}
		p.omegaC++
	}
	p.state[p.cryptEnd] ^= byte(p.omegaC)
	p.omegaC = 0
	p.omegaI = p.rs
	return nil
}

// Inject consumes up to Ra bytes from x, XORing them into the inject-rate
// portion of the state.
func (p *Piston) Inject(x *bufio.Reader) error {
	p.state[p.injectStart] ^= byte(p.omegaI)
	for hasMore(x) && p.omegaI < p.ra {
		b, err := x.ReadByte()
		if err != nil {
			return err
		}
		p.state[p.omegaI] ^= b
		p.omegaI++
	}
	p.state[p.injectEnd] ^= byte(p.omegaI)
	p.omegaC = 0
	p.omegaI = 0
	return nil
}

// Spark applies the permutation to the state.
func (p *Piston) Spark() {
	p.f.Apply(p.state)
}

// GetTag writes l bytes of tag to t, folding in an end-of-message marker
// before sparking. l must be at most Rs.
func (p *Piston) GetTag(t io.Writer, l int) error {
	if l > p.rs {
		return errors.New("motorist: requested tag is too long")
	}
	marker := l
	if l == 0 {
		marker = 255
	}
	p.state[p.eom] ^= byte(marker)
	p.Spark()
	if _, err := t.Write(p.state[:l]); err != nil {
		return err
	}
	p.omegaC = l
	return nil
}
