package world

// Chunk is a 16x16x16 volume of blocks. The dense array is the sole source
// of truth for block state inside its bounds.
type Chunk struct {
	Coord  ChunkCoord
	blocks [ChunkVolume]Block
	dirty  bool
}

// NewChunk creates an empty (all-air) chunk at the given coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord, dirty: true}
}

// GetBlock returns the block at the given local position, or air when the
// position is out of bounds.
func (c *Chunk) GetBlock(pos BlockPos) Block {
	if !pos.Valid() {
		return BlockAir
	}
	return c.blocks[pos.Index()]
}

// SetBlock stores a block at the given local position and reports whether
// the stored value changed. Out-of-bounds positions are ignored.
func (c *Chunk) SetBlock(pos BlockPos, b Block) bool {
	if !pos.Valid() {
		return false
	}
	idx := pos.Index()
	if c.blocks[idx] == b {
		return false
	}
	c.blocks[idx] = b
	c.dirty = true
	return true
}

// IsDirty reports whether the chunk changed since the last mesh build.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as meshed.
func (c *Chunk) SetClean() {
	c.dirty = false
}
