package keccakp_test

import (
	"bytes"
	"testing"

	"github.com/KeccakTeam/KeccakTools-sub001/hazmat/keccakp"
)

func TestNewRejectsUnsupportedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported width")
		}
	}()
	keccakp.New(512)
}

func TestPermuteIsInvertibleViaIdentity(t *testing.T) {
	// Zero rounds must leave the state untouched.
	state := make([]byte, 200/8)
	for i := range state {
		state[i] = byte(i)
	}
	orig := bytes.Clone(state)
	keccakp.New(200).Round(0).Apply(state)
	if !bytes.Equal(state, orig) {
		t.Fatalf("0-round permutation changed the state")
	}
}

func TestPermuteChangesState(t *testing.T) {
	for _, width := range []int{200, 400, 800, 1600} {
		state := make([]byte, width/8)
		orig := bytes.Clone(state)
		keccakp.New(width).Round(maxRoundsFor(width)).Apply(state)
		if bytes.Equal(state, orig) {
			t.Fatalf("width %d: full permutation of the all-zero state left it unchanged", width)
		}
	}
}

func TestPermuteDeterministic(t *testing.T) {
	width := 1600
	state1 := make([]byte, width/8)
	state2 := make([]byte, width/8)
	for i := range state1 {
		state1[i] = byte(i * 7)
		state2[i] = byte(i * 7)
	}
	keccakp.New(width).Round(24).Apply(state1)
	keccakp.New(width).Round(24).Apply(state2)
	if !bytes.Equal(state1, state2) {
		t.Fatalf("permutation is not deterministic")
	}
}

func TestPermuteRejectsExcessiveRounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for too many rounds")
		}
	}()
	state := make([]byte, 200/8)
	keccakp.New(200).Round(19).Apply(state)
}

func maxRoundsFor(width int) int {
	switch width {
	case 200:
		return 18
	case 400:
		return 20
	case 800:
		return 22
	case 1600:
		return 24
	default:
		return 0
	}
}
