package physics

import (
	"math"

	"mini-voxel/internal/config"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RaycastHit describes the first occupied cell along a ray.
type RaycastHit struct {
	// Chunk is the coordinate of the chunk containing the hit block.
	Chunk world.ChunkCoord
	// Block is the hit cell's local position within that chunk.
	Block world.BlockPos
	// Normal points outward from the face the ray entered through. It is
	// the zero vector when the ray starts inside an occupied cell.
	Normal mgl32.Vec3
	// Distance from the ray origin to the entered face, in world units.
	Distance float32
}

// Raycast walks the voxel grid cell by cell from origin along dir and
// returns the first non-air cell within maxDist. It uses exact DDA
// traversal, so thin geometry cannot be skipped regardless of distance.
// Iterations are capped to keep degenerate directions from spinning.
func Raycast(store *world.ChunkStore, origin, dir mgl32.Vec3, maxDist float32) (RaycastHit, bool) {
	defer profiling.Track("physics.Raycast")()

	dir = dir.Normalize()

	pos := origin

	stepSize := mgl32.Vec3{
		abs32(1.0 / dir.X()),
		abs32(1.0 / dir.Y()),
		abs32(1.0 / dir.Z()),
	}
	stepDir := mgl32.Vec3{sign32(dir.X()), sign32(dir.Y()), sign32(dir.Z())}

	// Ray-length distance to the first grid boundary on each axis. A zero
	// direction component never advances, so its entry stays at +Inf.
	tMax := mgl32.Vec3{
		boundaryT(pos.X(), stepDir.X(), stepSize.X(), dir.X()),
		boundaryT(pos.Y(), stepDir.Y(), stepSize.Y(), dir.Y()),
		boundaryT(pos.Z(), stepDir.Z(), stepSize.Z(), dir.Z()),
	}

	var distance float32
	var normal mgl32.Vec3

	for i := 0; i < config.RaycastMaxSteps; i++ {
		if distance > maxDist {
			return RaycastHit{}, false
		}

		bx := int(math.Floor(float64(pos.X())))
		by := int(math.Floor(float64(pos.Y())))
		bz := int(math.Floor(float64(pos.Z())))

		coord := world.ChunkCoordFromBlock(bx, by, bz)
		if store.GetChunk(coord) != nil {
			local := world.LocalFromBlock(bx, by, bz)
			if store.GetChunk(coord).GetBlock(local) != world.BlockAir {
				return RaycastHit{
					Chunk:    coord,
					Block:    local,
					Normal:   normal,
					Distance: distance,
				}, true
			}
		}

		// Advance along the axis whose boundary is nearest.
		switch {
		case tMax.X() < tMax.Y() && tMax.X() < tMax.Z():
			pos[0] += stepDir.X()
			distance = tMax.X()
			tMax[0] += stepSize.X()
			normal = mgl32.Vec3{-stepDir.X(), 0, 0}
		case tMax.Y() < tMax.Z():
			pos[1] += stepDir.Y()
			distance = tMax.Y()
			tMax[1] += stepSize.Y()
			normal = mgl32.Vec3{0, -stepDir.Y(), 0}
		default:
			pos[2] += stepDir.Z()
			distance = tMax.Z()
			tMax[2] += stepSize.Z()
			normal = mgl32.Vec3{0, 0, -stepDir.Z()}
		}
	}

	return RaycastHit{}, false
}

// boundaryT returns the ray-length distance from pos to the next grid line
// on one axis, or +Inf for a zero direction component.
func boundaryT(pos, stepDir, stepSize, dirComponent float32) float32 {
	if dirComponent == 0 {
		return float32(math.Inf(1))
	}
	var next float32
	if stepDir > 0 {
		next = float32(math.Ceil(float64(pos))) - pos
	} else {
		next = pos - float32(math.Floor(float64(pos)))
	}
	return next * stepSize
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		// Zero components never advance (tMax stays +Inf), the sign is
		// irrelevant.
		return 1
	}
}
