package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Block identifies one of the fixed block variants. Blocks are pure values;
// all per-variant properties live in the switches below.
type Block uint8

const (
	BlockAir Block = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockSand
	BlockWater
)

// IsSolid reports whether the block is impassable terrain.
func (b Block) IsSolid() bool {
	switch b {
	case BlockAir, BlockWater:
		return false
	default:
		return true
	}
}

// IsTransparent reports whether faces behind this block stay visible.
func (b Block) IsTransparent() bool {
	switch b {
	case BlockAir, BlockWater:
		return true
	default:
		return false
	}
}

// Color returns the base RGBA vertex color for the block.
func (b Block) Color() mgl32.Vec4 {
	switch b {
	case BlockGrass:
		return mgl32.Vec4{0.3, 0.7, 0.3, 1.0}
	case BlockDirt:
		return mgl32.Vec4{0.6, 0.4, 0.2, 1.0}
	case BlockStone:
		return mgl32.Vec4{0.5, 0.5, 0.5, 1.0}
	case BlockSand:
		return mgl32.Vec4{0.9, 0.8, 0.6, 1.0}
	case BlockWater:
		return mgl32.Vec4{0.2, 0.4, 0.8, 0.7}
	default:
		return mgl32.Vec4{0, 0, 0, 0}
	}
}

func (b Block) String() string {
	switch b {
	case BlockAir:
		return "air"
	case BlockGrass:
		return "grass"
	case BlockDirt:
		return "dirt"
	case BlockStone:
		return "stone"
	case BlockSand:
		return "sand"
	case BlockWater:
		return "water"
	default:
		return "unknown"
	}
}
