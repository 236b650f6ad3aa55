package bits_test

import (
	"testing"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
)

func TestConcatIdentity(t *testing.T) {
	a := bits.FromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if got := bits.Substring(a, 0, a.Size()); !got.Equal(a) {
		t.Fatalf("substring(A, 0, |A|) != A")
	}
	if got := a.Concat(bits.Empty()); !got.Equal(a) {
		t.Fatalf("A || empty != A")
	}
}

func TestConcatAssociative(t *testing.T) {
	a := bits.FromBytes([]byte{0x01, 0x02})
	b := bits.FromBytes([]byte{0x03})
	c := bits.FromBytes([]byte{0x04, 0x05, 0x06})

	left := a.Concat(b).Concat(c)
	right := a.Concat(b.Concat(c))

	if !left.Equal(right) {
		t.Fatalf("(A||B)||C != A||(B||C)")
	}
}

func TestConcatUnaligned(t *testing.T) {
	a := bits.Ones(3)
	b := bits.FromBytes([]byte{0xFF})
	got := a.Concat(b)
	if got.Size() != 11 {
		t.Fatalf("size = %d, want 11", got.Size())
	}
	for i := 0; i < 11; i++ {
		if got.Bit(i) != 1 {
			t.Fatalf("bit %d = %d, want 1", i, got.Bit(i))
		}
	}
}

func TestAppendBit(t *testing.T) {
	a := bits.Zeroes(3)
	got := a.AppendBit(1)
	if got.Size() != 4 {
		t.Fatalf("size = %d, want 4", got.Size())
	}
	if got.Bit(3) != 1 {
		t.Fatalf("appended bit = %d, want 1", got.Bit(3))
	}
}

func TestXorSelfInverse(t *testing.T) {
	a := bits.FromBytes([]byte{0x12, 0x34, 0x56})
	b := bits.FromBytes([]byte{0x78, 0x9A, 0xBC})
	got := a.Xor(b).Xor(b)
	if !got.Equal(a) {
		t.Fatalf("A^B^B != A")
	}
}

func TestXorLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	bits.Zeroes(8).Xor(bits.Zeroes(16))
}

func TestTruncate(t *testing.T) {
	a := bits.FromBytes([]byte{0xFF, 0x00})
	got := a.Truncate(4)
	if got.Size() != 4 {
		t.Fatalf("size = %d, want 4", got.Size())
	}
	for i := 0; i < 4; i++ {
		if got.Bit(i) != 1 {
			t.Fatalf("bit %d = %d, want 1", i, got.Bit(i))
		}
	}
}

func TestOverwrite(t *testing.T) {
	base := bits.Zeroes(24)
	patch := bits.FromBytes([]byte{0xFF})
	got := bits.Overwrite(base, patch, 8)
	if got.Size() != 24 {
		t.Fatalf("size = %d, want 24", got.Size())
	}
	for i := 8; i < 16; i++ {
		if got.Bit(i) != 1 {
			t.Fatalf("bit %d = %d, want 1", i, got.Bit(i))
		}
	}
	for i := 0; i < 8; i++ {
		if got.Bit(i) != 0 {
			t.Fatalf("bit %d = %d, want 0", i, got.Bit(i))
		}
	}
}

func TestAppendSequenceOrder(t *testing.T) {
	a := bits.FromBytes([]byte{0x01})
	b := bits.FromBytes([]byte{0x02})
	c := bits.FromBytes([]byte{0x03})

	seq := bits.Append(bits.Append(bits.Of(a), b), c)
	if len(seq) != 3 {
		t.Fatalf("len = %d, want 3", len(seq))
	}
	if !seq[0].Equal(a) || !seq[1].Equal(b) || !seq[2].Equal(c) {
		t.Fatalf("Append must place each new element last, preserving prior context order")
	}
}
