package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkSize is the edge length of a cubic chunk in blocks.
const ChunkSize = 16

// ChunkVolume is the number of blocks in a chunk.
const ChunkVolume = ChunkSize * ChunkSize * ChunkSize

// ChunkCoord identifies a chunk in the infinite chunk grid.
type ChunkCoord struct {
	X, Y, Z int
}

// ChunkCoordFromWorld returns the coordinate of the chunk containing the
// given world position. Floors toward negative infinity so the partition is
// continuous across zero.
func ChunkCoordFromWorld(pos mgl32.Vec3) ChunkCoord {
	return ChunkCoord{
		X: int(math.Floor(float64(pos.X()) / ChunkSize)),
		Y: int(math.Floor(float64(pos.Y()) / ChunkSize)),
		Z: int(math.Floor(float64(pos.Z()) / ChunkSize)),
	}
}

// ChunkCoordFromBlock returns the coordinate of the chunk containing the
// given world block cell.
func ChunkCoordFromBlock(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSize),
		Y: floorDiv(y, ChunkSize),
		Z: floorDiv(z, ChunkSize),
	}
}

// Origin returns the world position of the chunk's minimum corner.
func (c ChunkCoord) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
}

// BlockPos is a block position local to one chunk, each component in
// [0, ChunkSize).
type BlockPos struct {
	X, Y, Z int
}

// Valid reports whether the position lies inside chunk bounds. Every array
// access goes through this check.
func (p BlockPos) Valid() bool {
	return p.X >= 0 && p.X < ChunkSize &&
		p.Y >= 0 && p.Y < ChunkSize &&
		p.Z >= 0 && p.Z < ChunkSize
}

// Index maps the position to its flat array index (y-major, then z, then x).
func (p BlockPos) Index() int {
	return p.Y*ChunkSize*ChunkSize + p.Z*ChunkSize + p.X
}

// LocalFromBlock wraps world block coordinates into the owning chunk's local
// position, with modulo toward positive so negative coordinates wrap
// correctly.
func LocalFromBlock(x, y, z int) BlockPos {
	return BlockPos{
		X: mod(x, ChunkSize),
		Y: mod(y, ChunkSize),
		Z: mod(z, ChunkSize),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a modulo b in [0, b).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
