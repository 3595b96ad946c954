package world

import (
	"mini-voxel/internal/profiling"
)

// MeshHandle is the opaque identity the renderer keys GPU resources by.
// Handles are unique for the lifetime of the store; a chunk that is evicted
// and later regenerated gets a fresh handle.
type MeshHandle uint64

// ChunkStore owns all loaded chunks and their render-handle identities, and
// drives activation around an observer. The store is mutated by exactly one
// caller per tick; chunks share nothing with each other and the generator is
// read-only, so per-chunk work could be farmed out later without changing
// this layout.
type ChunkStore struct {
	chunks     map[ChunkCoord]*Chunk
	handles    map[ChunkCoord]MeshHandle
	nextHandle MeshHandle
	gen        *Generator
}

// NewChunkStore creates an empty store backed by the given generator.
func NewChunkStore(gen *Generator) *ChunkStore {
	return &ChunkStore{
		chunks:  make(map[ChunkCoord]*Chunk),
		handles: make(map[ChunkCoord]MeshHandle),
		gen:     gen,
	}
}

// Generator returns the store's terrain generator.
func (cs *ChunkStore) Generator() *Generator {
	return cs.gen
}

// Activate synchronizes the loaded set with the Chebyshev neighborhood of
// radius around center, on the single ground layer (chunk y = 0). Missing
// chunks are generated and registered; chunks outside the neighborhood are
// removed together with their handles. Idempotent: a second call with the
// same center and radius changes nothing.
//
// Returns the coordinates that were added and removed so the caller can
// maintain its mesh cache.
func (cs *ChunkStore) Activate(center ChunkCoord, radius int) (added, removed []ChunkCoord) {
	defer profiling.Track("world.Activate")()

	inRange := func(c ChunkCoord) bool {
		dx := c.X - center.X
		dz := c.Z - center.Z
		if dx < 0 {
			dx = -dx
		}
		if dz < 0 {
			dz = -dz
		}
		return c.Y == 0 && dx <= radius && dz <= radius
	}

	for coord := range cs.chunks {
		if !inRange(coord) {
			delete(cs.chunks, coord)
			delete(cs.handles, coord)
			removed = append(removed, coord)
		}
	}

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			coord := ChunkCoord{X: center.X + dx, Y: 0, Z: center.Z + dz}
			if _, ok := cs.chunks[coord]; ok {
				continue
			}
			cs.createChunk(coord)
			added = append(added, coord)
		}
	}

	return added, removed
}

// createChunk generates, registers and assigns a handle to a new chunk.
func (cs *ChunkStore) createChunk(coord ChunkCoord) *Chunk {
	chunk := NewChunk(coord)
	cs.gen.PopulateChunk(chunk)
	cs.chunks[coord] = chunk
	cs.nextHandle++
	cs.handles[coord] = cs.nextHandle
	return chunk
}

// GetChunk returns the chunk at the given coordinate, or nil when not
// loaded.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	return cs.chunks[coord]
}

// GetOrCreateChunk returns the chunk at the given coordinate, generating it
// on demand. The second result reports whether a new chunk was created.
func (cs *ChunkStore) GetOrCreateChunk(coord ChunkCoord) (*Chunk, bool) {
	if chunk, ok := cs.chunks[coord]; ok {
		return chunk, false
	}
	return cs.createChunk(coord), true
}

// Handle returns the render-handle identity for a loaded chunk.
func (cs *ChunkStore) Handle(coord ChunkCoord) (MeshHandle, bool) {
	h, ok := cs.handles[coord]
	return h, ok
}

// GetBlock returns the block at world block coordinates, or air when the
// owning chunk is not loaded. Missing data is not an error here; chunks come
// and go continuously.
func (cs *ChunkStore) GetBlock(x, y, z int) Block {
	chunk := cs.chunks[ChunkCoordFromBlock(x, y, z)]
	if chunk == nil {
		return BlockAir
	}
	return chunk.GetBlock(LocalFromBlock(x, y, z))
}

// SetBlock stores a block at world block coordinates and reports whether the
// stored value changed. A write into an unloaded chunk is a no-op.
func (cs *ChunkStore) SetBlock(x, y, z int, b Block) bool {
	chunk := cs.chunks[ChunkCoordFromBlock(x, y, z)]
	if chunk == nil {
		return false
	}
	return chunk.SetBlock(LocalFromBlock(x, y, z), b)
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	return len(cs.chunks)
}

// Coords returns the coordinates of all loaded chunks, in no particular
// order.
func (cs *ChunkStore) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(cs.chunks))
	for coord := range cs.chunks {
		coords = append(coords, coord)
	}
	return coords
}
