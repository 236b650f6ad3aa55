package bits

// Blocks is a non-owning window that exposes a BitString as a sequence of
// fixed-size r-bit blocks; the final block may be shorter than r. A Blocks
// always has at least one block, even over an empty BitString.
//
// Blocks backed by NewBlocks may be written through; Blocks backed by
// NewBlocksReadOnly reject writes.
type Blocks struct {
	s        *BitString
	snapshot BitString
	r        int
	mutable  bool
}

// NewBlocks returns a Blocks view over s with block size r, writable through
// Block.Set. s is aliased: writes through the returned Blocks are visible in
// *s.
func NewBlocks(s *BitString, r int) *Blocks {
	return &Blocks{s: s, r: r, mutable: true}
}

// NewBlocksReadOnly returns a Blocks view over a copy of s with block size r.
// Writes through the returned Blocks panic.
func NewBlocksReadOnly(s BitString, r int) *Blocks {
	return &Blocks{snapshot: s, r: r, mutable: false}
}

func (bs *Blocks) backing() BitString {
	if bs.mutable {
		return *bs.s
	}
	return bs.snapshot
}

// Count returns the number of blocks, at least 1.
func (bs *Blocks) Count() int {
	n := bs.backing().Size()
	c := (n + bs.r - 1) / bs.r
	if c == 0 {
		return 1
	}
	return c
}

// Block returns the i-th block, a window at bit offset i*r whose apparent
// size is min(r, |S|-i*r) when it extends past the end of the backing
// BitString.
func (bs *Blocks) Block(i int) Block {
	return Block{bs: bs, i: i}
}

// Bits returns the backing BitString's current contents.
func (bs *Blocks) Bits() BitString {
	return bs.backing()
}

// Block is a window onto one block of a Blocks view.
type Block struct {
	bs *Blocks
	i  int
}

// Size returns the apparent size of the block in bits: r, unless the block
// extends past the end of the backing BitString, in which case it is
// min(r, |S|-i*r), or 0 if the block lies entirely past the end.
func (b Block) Size() int {
	s := b.bs.backing()
	off := b.i * b.bs.r
	if off >= s.Size() {
		return 0
	}
	return min(b.bs.r, s.Size()-off)
}

// Bits returns the contents of the block as a BitString.
func (b Block) Bits() BitString {
	return Substring(b.bs.backing(), b.i*b.bs.r, b.bs.r)
}

// Set overwrites the backing BitString at this block's offset with v,
// extending the backing BitString if v extends past its current end.
// Panics if the Blocks view is read-only.
func (b Block) Set(v BitString) {
	if !b.bs.mutable {
		panic("bits: write to read-only Blocks")
	}
	*b.bs.s = Overwrite(*b.bs.s, v, b.i*b.bs.r)
}
