package meshing

import (
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is the CPU-side triangle list for one chunk. Positions are local to
// the chunk; the renderer places the mesh at the chunk's world origin. A
// mesh with zero vertices is valid and simply draws nothing.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec4
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Ambient occlusion factors, darkest to none.
const (
	aoBothSides = 0.5
	aoCorner    = 0.7
	aoOneSide   = 0.8
	aoNone      = 1.0
)

// faceDir indexes the six axis-aligned face directions.
type faceDir int

const (
	facePosY faceDir = iota
	faceNegY
	facePosZ
	faceNegZ
	facePosX
	faceNegX
)

type ivec3 [3]int

// face describes one quad template: outward normal, neighbor offset for
// visibility, per-vertex corner offsets, AO sample cells (two edge cells and
// their base corner cell, relative to the block), all in block units.
type face struct {
	normal   mgl32.Vec3
	neighbor ivec3
	verts    [4]mgl32.Vec3
	aoBase   [4]ivec3
	side1    [4]ivec3
	side2    [4]ivec3
}

// Quad templates wind counter-clockwise seen from outside so the AO-driven
// diagonal split keeps consistent front faces.
var faces = [6]face{
	facePosY: {
		normal:   mgl32.Vec3{0, 1, 0},
		neighbor: ivec3{0, 1, 0},
		verts: [4]mgl32.Vec3{
			{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1},
		},
		aoBase: [4]ivec3{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
		side1:  [4]ivec3{{0, 0, -1}, {0, 0, -1}, {0, 0, 1}, {0, 0, 1}},
		side2:  [4]ivec3{{-1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {-1, 0, 0}},
	},
	faceNegY: {
		normal:   mgl32.Vec3{0, -1, 0},
		neighbor: ivec3{0, -1, 0},
		verts: [4]mgl32.Vec3{
			{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {1, 0, 0},
		},
		aoBase: [4]ivec3{{0, -1, 0}, {0, -1, 1}, {1, -1, 1}, {1, -1, 0}},
		side1:  [4]ivec3{{0, 0, -1}, {0, 0, 1}, {0, 0, 1}, {0, 0, -1}},
		side2:  [4]ivec3{{-1, 0, 0}, {-1, 0, 0}, {1, 0, 0}, {1, 0, 0}},
	},
	facePosZ: {
		normal:   mgl32.Vec3{0, 0, 1},
		neighbor: ivec3{0, 0, 1},
		verts: [4]mgl32.Vec3{
			{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1},
		},
		aoBase: [4]ivec3{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}},
		side1:  [4]ivec3{{-1, 0, 0}, {-1, 0, 0}, {1, 0, 0}, {1, 0, 0}},
		side2:  [4]ivec3{{0, -1, 0}, {0, 1, 0}, {0, 1, 0}, {0, -1, 0}},
	},
	faceNegZ: {
		normal:   mgl32.Vec3{0, 0, -1},
		neighbor: ivec3{0, 0, -1},
		verts: [4]mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		aoBase: [4]ivec3{{0, 0, -1}, {1, 0, -1}, {1, 1, -1}, {0, 1, -1}},
		side1:  [4]ivec3{{-1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {-1, 0, 0}},
		side2:  [4]ivec3{{0, -1, 0}, {0, -1, 0}, {0, 1, 0}, {0, 1, 0}},
	},
	facePosX: {
		normal:   mgl32.Vec3{1, 0, 0},
		neighbor: ivec3{1, 0, 0},
		verts: [4]mgl32.Vec3{
			{1, 0, 0}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0},
		},
		aoBase: [4]ivec3{{1, 0, 0}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0}},
		side1:  [4]ivec3{{0, -1, 0}, {0, -1, 0}, {0, 1, 0}, {0, 1, 0}},
		side2:  [4]ivec3{{0, 0, -1}, {0, 0, 1}, {0, 0, 1}, {0, 0, -1}},
	},
	faceNegX: {
		normal:   mgl32.Vec3{-1, 0, 0},
		neighbor: ivec3{-1, 0, 0},
		verts: [4]mgl32.Vec3{
			{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 0, 1},
		},
		aoBase: [4]ivec3{{-1, 0, 0}, {-1, 1, 0}, {-1, 1, 1}, {-1, 0, 1}},
		side1:  [4]ivec3{{0, -1, 0}, {0, 1, 0}, {0, 1, 0}, {0, -1, 0}},
		side2:  [4]ivec3{{0, 0, -1}, {0, 0, -1}, {0, 0, 1}, {0, 0, 1}},
	},
}

// Per-quad UVs, independent of block type.
var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// BuildChunkMesh extracts the visible surface of a chunk: every non-air
// block emits a quad for each face whose neighbor is air, transparent, or
// outside the chunk. Chunk-boundary faces are always emitted and
// out-of-chunk cells count as solid for occlusion; cross-chunk culling is
// intentionally not done.
func BuildChunkMesh(c *world.Chunk) *Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()

	m := &Mesh{}

	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				b := c.GetBlock(world.BlockPos{X: x, Y: y, Z: z})
				if b == world.BlockAir {
					continue
				}
				for dir := range faces {
					if faceVisible(c, x, y, z, faceDir(dir)) {
						emitFace(m, c, x, y, z, faceDir(dir), b)
					}
				}
			}
		}
	}

	return m
}

// faceVisible reports whether the face of the block at (x,y,z) in the given
// direction must be rendered.
func faceVisible(c *world.Chunk, x, y, z int, dir faceDir) bool {
	n := faces[dir].neighbor
	pos := world.BlockPos{X: x + n[0], Y: y + n[1], Z: z + n[2]}
	if !pos.Valid() {
		// Chunk boundary: always render.
		return true
	}
	neighbor := c.GetBlock(pos)
	return neighbor == world.BlockAir || neighbor.IsTransparent()
}

// occludedAt reports whether a cell occludes for AO purposes. Cells outside
// the chunk count as occluding; neighbor chunks are not consulted.
func occludedAt(c *world.Chunk, x, y, z int) bool {
	pos := world.BlockPos{X: x, Y: y, Z: z}
	if !pos.Valid() {
		return true
	}
	return c.GetBlock(pos) != world.BlockAir
}

// aoFactor computes the occlusion factor for one face corner from its two
// edge-adjacent cells and their shared corner cell.
func aoFactor(c *world.Chunk, base, side1, side2 ivec3) float32 {
	s1 := occludedAt(c, base[0]+side1[0], base[1]+side1[1], base[2]+side1[2])
	s2 := occludedAt(c, base[0]+side2[0], base[1]+side2[1], base[2]+side2[2])
	corner := occludedAt(c,
		base[0]+side1[0]+side2[0],
		base[1]+side1[1]+side2[1],
		base[2]+side1[2]+side2[2])

	switch {
	case s1 && s2:
		return aoBothSides
	case corner && !s1 && !s2:
		return aoCorner
	case s1 || s2 || corner:
		return aoOneSide
	default:
		return aoNone
	}
}

// emitFace appends one quad (4 vertices, 6 indices) for the block at
// (x,y,z). The quad's diagonal follows the corner pair with the larger
// occlusion sum, which hides interpolation seams on unevenly occluded faces.
func emitFace(m *Mesh, c *world.Chunk, x, y, z int, dir faceDir, b world.Block) {
	f := &faces[dir]
	baseColor := b.Color()
	offset := uint32(len(m.Positions))

	var ao [4]float32
	for i := 0; i < 4; i++ {
		base := ivec3{x + f.aoBase[i][0], y + f.aoBase[i][1], z + f.aoBase[i][2]}
		ao[i] = aoFactor(c, base, f.side1[i], f.side2[i])

		m.Positions = append(m.Positions, mgl32.Vec3{
			float32(x) + f.verts[i].X(),
			float32(y) + f.verts[i].Y(),
			float32(z) + f.verts[i].Z(),
		})
		m.Normals = append(m.Normals, f.normal)
		m.Colors = append(m.Colors, mgl32.Vec4{
			baseColor.X() * ao[i],
			baseColor.Y() * ao[i],
			baseColor.Z() * ao[i],
			baseColor.W(),
		})
		m.UVs = append(m.UVs, quadUVs[i])
	}

	if ao[0]+ao[2] > ao[1]+ao[3] {
		m.Indices = append(m.Indices,
			offset, offset+1, offset+2,
			offset, offset+2, offset+3)
	} else {
		m.Indices = append(m.Indices,
			offset, offset+1, offset+3,
			offset+1, offset+2, offset+3)
	}
}
