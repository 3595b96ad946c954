package game

import (
	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// TargetState is the block currently under the observer's crosshair, if any.
type TargetState struct {
	Hit   physics.RaycastHit
	Valid bool
}

// BlockWorld returns the world block coordinates of the targeted cell.
func (t TargetState) BlockWorld() (x, y, z int) {
	x = t.Hit.Chunk.X*world.ChunkSize + t.Hit.Block.X
	y = t.Hit.Chunk.Y*world.ChunkSize + t.Hit.Block.Y
	z = t.Hit.Chunk.Z*world.ChunkSize + t.Hit.Block.Z
	return
}

// Center returns the world-space center of the targeted cell, used to place
// the highlight box.
func (t TargetState) Center() mgl32.Vec3 {
	x, y, z := t.BlockWorld()
	return mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5}
}
