package game

import (
	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"
)

// PaletteBlock maps a hotbar slot to the block it places. Unknown slots
// fall back to dirt.
func PaletteBlock(slot int) world.Block {
	switch slot {
	case 2:
		return world.BlockStone
	case 3:
		return world.BlockGrass
	default:
		return world.BlockDirt
	}
}

// BreakBlock clears the targeted cell and returns the coordinate of the
// chunk that changed. Breaking air is a no-op.
func BreakBlock(store *world.ChunkStore, hit physics.RaycastHit) (world.ChunkCoord, bool) {
	chunk := store.GetChunk(hit.Chunk)
	if chunk == nil {
		return world.ChunkCoord{}, false
	}
	if !chunk.SetBlock(hit.Block, world.BlockAir) {
		return world.ChunkCoord{}, false
	}
	return hit.Chunk, true
}

// PlaceBlock puts b into the cell adjacent to the hit along its face
// normal. The destination may fall in a neighboring chunk on any of the six
// faces; that chunk is generated on demand when it is not loaded, so placing
// below the ground layer works. Returns the destination chunk coordinate and
// whether it was freshly created.
//
// A hit with a zero normal (ray started inside a block) has no adjacent
// cell and is rejected.
func PlaceBlock(store *world.ChunkStore, hit physics.RaycastHit, b world.Block) (coord world.ChunkCoord, created, ok bool) {
	nx := int(hit.Normal.X())
	ny := int(hit.Normal.Y())
	nz := int(hit.Normal.Z())
	if nx == 0 && ny == 0 && nz == 0 {
		return world.ChunkCoord{}, false, false
	}

	coord = hit.Chunk
	local := world.BlockPos{
		X: hit.Block.X + nx,
		Y: hit.Block.Y + ny,
		Z: hit.Block.Z + nz,
	}

	// Carry overflow into the neighboring chunk. The normal is a unit
	// axis vector, so each component moves at most one chunk.
	if local.X >= world.ChunkSize {
		coord.X++
		local.X = 0
	} else if local.X < 0 {
		coord.X--
		local.X = world.ChunkSize - 1
	}
	if local.Y >= world.ChunkSize {
		coord.Y++
		local.Y = 0
	} else if local.Y < 0 {
		coord.Y--
		local.Y = world.ChunkSize - 1
	}
	if local.Z >= world.ChunkSize {
		coord.Z++
		local.Z = 0
	} else if local.Z < 0 {
		coord.Z--
		local.Z = world.ChunkSize - 1
	}

	chunk, created := store.GetOrCreateChunk(coord)
	chunk.SetBlock(local, b)
	return coord, created, true
}
