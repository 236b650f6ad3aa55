package monkeywrap_test

import (
	"testing"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/internal/testdata"
	"github.com/KeccakTeam/KeccakTools-sub001/monkeywrap"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzKetjeSessionRoundTrip generates a random sequence of (A, B) messages
// and checks that a KetjeJr session run on the sender side always matches a
// freshly initialised receiver, message for message.
func FuzzKetjeSessionRoundTrip(f *testing.F) {
	drbg := testdata.New("ketje fuzz seed")
	for range 10 {
		f.Add(drbg.Data(512))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		// KetjeJr's width is 200 bits; Initialize requires |K|+18 <= width and
		// |N|+|K|+18 <= width, so key and nonce are kept small enough to
		// leave ample headroom for both bounds.
		key, err := tp.GetBytes()
		if err != nil || len(key) == 0 || len(key) > 4 {
			t.Skip(err)
		}
		nonce, err := tp.GetBytes()
		if err != nil || len(nonce) > 10 {
			t.Skip(err)
		}

		k := bits.FromBytes(key)
		n := bits.FromBytes(nonce)

		sender := monkeywrap.NewKetjeJr()
		sender.Initialize(k, n)
		receiver := monkeywrap.NewKetjeJr()
		receiver.Initialize(k, n)

		msgCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		for range msgCount % 16 {
			a, err := tp.GetBytes()
			if err != nil {
				t.Skip(err)
			}
			p, err := tp.GetBytes()
			if err != nil {
				t.Skip(err)
			}

			aBits := bits.FromBytes(a)
			pBits := bits.FromBytes(p)

			c, tag := sender.Wrap(aBits, pBits, 128)
			got, err := receiver.Unwrap(aBits, c, tag)
			if err != nil {
				t.Fatalf("unexpected authentication failure: %v", err)
			}
			if !got.Equal(pBits) {
				t.Fatalf("round trip mismatch: sent %v, got %v", p, got.Bytes())
			}
		}
	})
}
