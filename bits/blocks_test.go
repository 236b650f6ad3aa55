package bits_test

import (
	"testing"

	"github.com/KeccakTeam/KeccakTools-sub001/bits"
)

func TestBlocksCountAtLeastOne(t *testing.T) {
	empty := bits.Empty()
	bs := bits.NewBlocks(&empty, 8)
	if bs.Count() != 1 {
		t.Fatalf("Count() over empty BitString = %d, want 1", bs.Count())
	}
}

func TestBlocksCountAndLastBlockSize(t *testing.T) {
	s := bits.FromBytes([]byte{1, 2, 3, 4, 5}) // 40 bits
	bs := bits.NewBlocks(&s, 24)

	if got := bs.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if got := bs.Block(0).Size(); got != 24 {
		t.Fatalf("Block(0).Size() = %d, want 24", got)
	}
	if got := bs.Block(1).Size(); got != 16 {
		t.Fatalf("Block(1).Size() = %d, want 16 (40-24)", got)
	}
}

func TestBlocksBlockPastEndIsZero(t *testing.T) {
	s := bits.FromBytes([]byte{1, 2})
	bs := bits.NewBlocks(&s, 8)
	if got := bs.Block(5).Size(); got != 0 {
		t.Fatalf("Block(5).Size() = %d, want 0", got)
	}
}

func TestBlocksSetWritesThroughToBacking(t *testing.T) {
	s := bits.FromBytes([]byte{0, 0, 0})
	bs := bits.NewBlocks(&s, 8)

	bs.Block(1).Set(bits.FromBytes([]byte{0xAB}))

	want := bits.FromBytes([]byte{0, 0xAB, 0})
	if !s.Equal(want) {
		t.Fatalf("backing after Set = %v, want %v", s.Bytes(), want.Bytes())
	}
}

func TestBlocksSetExtendsBacking(t *testing.T) {
	s := bits.FromBytes([]byte{1})
	bs := bits.NewBlocks(&s, 8)

	bs.Block(2).Set(bits.FromBytes([]byte{0xFF}))

	if got := s.Size(); got != 24 {
		t.Fatalf("backing size after extending Set = %d, want 24", got)
	}
	if got := bits.Substring(s, 16, 8); !got.Equal(bits.FromBytes([]byte{0xFF})) {
		t.Fatalf("extended block contents = %v, want [0xFF]", got.Bytes())
	}
}

func TestBlocksReadOnlyRejectsWrite(t *testing.T) {
	s := bits.FromBytes([]byte{1, 2, 3})
	bs := bits.NewBlocksReadOnly(s, 8)

	defer func() {
		if recover() == nil {
			t.Fatalf("Set on read-only Blocks did not panic")
		}
	}()
	bs.Block(0).Set(bits.FromBytes([]byte{9}))
}

func TestBlocksReadOnlyIsolatedFromSourceMutation(t *testing.T) {
	s := bits.FromBytes([]byte{1, 2, 3})
	bs := bits.NewBlocksReadOnly(s, 8)

	s = bits.FromBytes([]byte{9, 9, 9})

	if got := bs.Block(0).Bits(); !got.Equal(bits.FromBytes([]byte{1})) {
		t.Fatalf("read-only Blocks observed caller's later mutation: got %v", got.Bytes())
	}
}
