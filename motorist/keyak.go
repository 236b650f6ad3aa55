package motorist

import (
	"bytes"
	"errors"

	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

// ErrKeyTooLarge is returned by StartEngine when the key does not fit in
// Keyak's key pack for the instance's capacity.
var ErrKeyTooLarge = errors.New("motorist: key is too large for the key pack")

// Keyak is a Motorist session preconfigured with Keyak's own key-packing
// convention for StartEngine.
type Keyak struct {
	m *Motorist
}

func newKeyak(width, rounds, pi, c, tau int) *Keyak {
	f := keccakp.New(width).Round(rounds)
	return &Keyak{m: New(f, width, pi, c, tau)}
}

// NewRiverKeyak returns RiverKeyak (b=800, nr=12, Π=1, c=256, τ=128).
func NewRiverKeyak() *Keyak { return newKeyak(800, 12, 1, 256, 128) }

// NewLakeKeyak returns LakeKeyak (b=1600, nr=12, Π=1, c=256, τ=128).
func NewLakeKeyak() *Keyak { return newKeyak(1600, 12, 1, 256, 128) }

// NewSeaKeyak returns SeaKeyak (b=1600, nr=12, Π=2, c=256, τ=128).
func NewSeaKeyak() *Keyak { return newKeyak(1600, 12, 2, 256, 128) }

// NewOceanKeyak returns OceanKeyak (b=1600, nr=12, Π=4, c=256, τ=128).
func NewOceanKeyak() *Keyak { return newKeyak(1600, 12, 4, 256, 128) }

// NewLunarKeyak returns LunarKeyak (b=1600, nr=12, Π=8, c=256, τ=128).
func NewLunarKeyak() *Keyak { return newKeyak(1600, 12, 8, 256, 128) }

// keypack encodes k into an l-byte buffer: enc8(l) || k || 0x01 || 0x00*.
func keypack(k []byte, l int) ([]byte, error) {
	if len(k)+2 > l {
		return nil, ErrKeyTooLarge
	}
	out := make([]byte, 0, l)
	out = append(out, byte(l))
	out = append(out, k...)
	out = append(out, 1)
	for len(out) < l {
		out = append(out, 0)
	}
	return out, nil
}

// StartEngine derives the session-user-vector string from key K and nonce N
// using Keyak's key-packing convention, then starts the underlying Motorist
// session. See [Motorist.StartEngine] for the parameter semantics.
func (k *Keyak) StartEngine(key, n []byte, tagFlag, unwrap, forget bool, tag []byte) ([]byte, error) {
	w := k.m.W()
	c := k.m.C()
	lk := w / 8 * ((c + 9 + w - 1) / w)

	kp, err := keypack(key, lk)
	if err != nil {
		return nil, err
	}

	suv := bytes.Join([][]byte{kp, n}, nil)
	return k.m.StartEngine(suv, tagFlag, unwrap, forget, tag)
}

// Wrap delegates to the underlying Motorist session. See [Motorist.Wrap].
func (k *Keyak) Wrap(i, a []byte, unwrap, forget bool, tag []byte) ([]byte, []byte, error) {
	return k.m.Wrap(bytes.NewReader(i), bytes.NewReader(a), unwrap, forget, tag)
}

// Width returns the permutation width in bits.
func (k *Keyak) Width() int {
	return 8 * len(k.m.pistons[0].state)
}
