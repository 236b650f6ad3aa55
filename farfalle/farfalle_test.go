package farfalle_test

import (
	"testing"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
	"github.com/KeccakTeam/KeccakTools-sub001/farfalle"
	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
	"github.com/KeccakTeam/KeccakTools-sub001/internal/testdata"
)

func newTestFarfalle() *farfalle.Farfalle {
	f := keccakp.New(1600)
	return farfalle.New(f, f, f, f, 6, 6, 6, 6,
		farfalle.LaneRotateRollingFunction{}, farfalle.LaneRotateRollingFunction{})
}

func TestEvalIsDeterministic(t *testing.T) {
	drbg := testdata.New("farfalle determinism")
	k := bits.FromBytes(drbg.Data(16))
	m := bits.FromBytes(drbg.Data(100))

	f := newTestFarfalle()
	out1 := f.Eval(k, bits.Of(m), 64, 0)
	out2 := f.Eval(k, bits.Of(m), 64, 0)

	if !out1.Equal(out2) {
		t.Fatalf("Eval is not deterministic")
	}
}

func TestEvalSensitiveToMessage(t *testing.T) {
	drbg := testdata.New("farfalle sensitivity")
	k := bits.FromBytes(drbg.Data(16))
	m1 := bits.FromBytes([]byte("message one"))
	m2 := bits.FromBytes([]byte("message two"))

	f := newTestFarfalle()
	out1 := f.Eval(k, bits.Of(m1), 64, 0)
	out2 := f.Eval(k, bits.Of(m2), 64, 0)

	if out1.Equal(out2) {
		t.Fatalf("distinct messages produced identical output")
	}
}

func TestEvalOffsetShiftsStream(t *testing.T) {
	drbg := testdata.New("farfalle offset")
	k := bits.FromBytes(drbg.Data(16))
	m := bits.FromBytes(drbg.Data(20))

	f := newTestFarfalle()
	whole := f.Eval(k, bits.Of(m), 128, 0)
	tail := f.Eval(k, bits.Of(m), 64, 64)

	if !bits.Substring(whole, 64, 64).Equal(tail) {
		t.Fatalf("Eval(n, q) is not a contiguous window of the same output stream")
	}
}

func TestIdentityRollingFunctionIsStable(t *testing.T) {
	k := bits.FromBytes([]byte("k"))
	id := farfalle.IdentityRollingFunction{}
	if !id.Roll(k, 0).Equal(id.Roll(k, 5)) {
		t.Fatalf("identity rolling function must ignore the index")
	}
}
