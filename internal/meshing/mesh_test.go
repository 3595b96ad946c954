package meshing

import (
	"testing"

	"mini-voxel/internal/world"
)

func emptyChunk() *world.Chunk {
	return world.NewChunk(world.ChunkCoord{})
}

func TestEmptyChunkProducesEmptyMesh(t *testing.T) {
	m := BuildChunkMesh(emptyChunk())
	if !m.Empty() {
		t.Errorf("empty chunk produced %d indices", len(m.Indices))
	}
	if m.VertexCount() != 0 {
		t.Errorf("empty chunk produced %d vertices", m.VertexCount())
	}
}

func TestSingleCubeGeometry(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)

	m := BuildChunkMesh(c)

	// 6 faces, 4 vertices and 6 indices each
	if m.VertexCount() != 24 {
		t.Errorf("vertex count = %d, want 24", m.VertexCount())
	}
	if len(m.Indices) != 36 {
		t.Errorf("index count = %d, want 36", len(m.Indices))
	}
	if len(m.Normals) != 24 || len(m.Colors) != 24 || len(m.UVs) != 24 {
		t.Errorf("attribute lengths diverge: %d normals, %d colors, %d uvs",
			len(m.Normals), len(m.Colors), len(m.UVs))
	}

	// A lone cube has no occluders: every vertex carries the full block color
	want := world.BlockStone.Color()
	for i, col := range m.Colors {
		if col != want {
			t.Errorf("vertex %d color = %v, want %v", i, col, want)
		}
	}
}

func TestAdjacentFacesCulled(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 9, Y: 8, Z: 8}, world.BlockStone)

	m := BuildChunkMesh(c)

	// Two cubes share one interior face pair: 12 - 2 = 10 quads
	if m.VertexCount() != 40 {
		t.Errorf("vertex count = %d, want 40", m.VertexCount())
	}
	if len(m.Indices) != 60 {
		t.Errorf("index count = %d, want 60", len(m.Indices))
	}
}

func TestWaterNeighborKeepsFaceVisible(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 9, Y: 8, Z: 8}, world.BlockWater)

	m := BuildChunkMesh(c)

	// Water is transparent, so the stone keeps all 6 faces. The water
	// block renders too but its face against the stone is culled.
	wantQuads := 6 + 5
	if got := len(m.Indices) / 6; got != wantQuads {
		t.Errorf("quad count = %d, want %d", got, wantQuads)
	}
}

func TestBoundaryFacesAlwaysEmitted(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 0, Y: 0, Z: 0}, world.BlockDirt)

	m := BuildChunkMesh(c)

	// The corner block touches three chunk boundaries; all six faces
	// must still be present.
	if m.VertexCount() != 24 {
		t.Errorf("vertex count = %d, want 24", m.VertexCount())
	}
}

func TestFullChunkEmitsOnlyShell(t *testing.T) {
	c := emptyChunk()
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				c.SetBlock(world.BlockPos{X: x, Y: y, Z: z}, world.BlockStone)
			}
		}
	}

	m := BuildChunkMesh(c)

	// Interior faces are culled; each of the 6 chunk sides exposes 16x16
	// boundary faces.
	wantQuads := 6 * world.ChunkSize * world.ChunkSize
	if got := len(m.Indices) / 6; got != wantQuads {
		t.Errorf("quad count = %d, want %d", got, wantQuads)
	}
}

// aoOfVertex finds the AO factor of a generated vertex by dividing its
// color by the block's base color.
func aoOfVertex(t *testing.T, m *Mesh, pos [3]float32, normal [3]float32, base float32) float32 {
	t.Helper()
	for i := range m.Positions {
		p := m.Positions[i]
		n := m.Normals[i]
		if p.X() == pos[0] && p.Y() == pos[1] && p.Z() == pos[2] &&
			n.X() == normal[0] && n.Y() == normal[1] && n.Z() == normal[2] {
			return m.Colors[i].X() / base
		}
	}
	t.Fatalf("no vertex at %v with normal %v", pos, normal)
	return 0
}

func TestAmbientOcclusionFactors(t *testing.T) {
	base := world.BlockStone.Color().X()

	// Two edge neighbors above the corner: darkest factor.
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 7, Y: 9, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 8, Y: 9, Z: 7}, world.BlockStone)
	m := BuildChunkMesh(c)
	if ao := aoOfVertex(t, m, [3]float32{8, 9, 8}, [3]float32{0, 1, 0}, base); ao != 0.5 {
		t.Errorf("both-sides AO = %v, want 0.5", ao)
	}

	// Corner neighbor only.
	c = emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 7, Y: 9, Z: 7}, world.BlockStone)
	m = BuildChunkMesh(c)
	if ao := aoOfVertex(t, m, [3]float32{8, 9, 8}, [3]float32{0, 1, 0}, base); ao != 0.7 {
		t.Errorf("corner-only AO = %v, want 0.7", ao)
	}

	// One edge neighbor.
	c = emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 7, Y: 9, Z: 8}, world.BlockStone)
	m = BuildChunkMesh(c)
	if ao := aoOfVertex(t, m, [3]float32{8, 9, 8}, [3]float32{0, 1, 0}, base); ao != 0.8 {
		t.Errorf("one-side AO = %v, want 0.8", ao)
	}

	// Nothing nearby.
	c = emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	m = BuildChunkMesh(c)
	if ao := aoOfVertex(t, m, [3]float32{8, 9, 8}, [3]float32{0, 1, 0}, base); ao != 1.0 {
		t.Errorf("open AO = %v, want 1.0", ao)
	}
}

// The quad diagonal must connect the corner pair with the larger occlusion
// sum so interpolation follows the darkened edge.
func TestDiagonalSelection(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockStone)
	// Darken the v1/v3 pair of the top face (corners (9,9,8) and (8,9,9))
	c.SetBlock(world.BlockPos{X: 9, Y: 9, Z: 7}, world.BlockStone)
	c.SetBlock(world.BlockPos{X: 7, Y: 9, Z: 9}, world.BlockStone)

	m := BuildChunkMesh(c)

	// Locate v0 of the target's top face: the only Y-up vertex at (8,9,8)
	quadStart := -1
	for i := range m.Positions {
		p := m.Positions[i]
		if m.Normals[i].Y() == 1 && p.X() == 8 && p.Y() == 9 && p.Z() == 8 {
			quadStart = i
			break
		}
	}
	if quadStart < 0 {
		t.Fatal("no top face emitted for the target block")
	}

	// ao0+ao2 = 2.0 beats ao1+ao3 = 1.6, so the diagonal must run v0-v2:
	// triangles (v0,v1,v2) and (v0,v2,v3).
	qs := uint32(quadStart)
	want := []uint32{qs, qs + 1, qs + 2, qs, qs + 2, qs + 3}
	start := -1
	for j := 0; j+6 <= len(m.Indices); j += 3 {
		if m.Indices[j] == qs || m.Indices[j+1] == qs || m.Indices[j+2] == qs {
			start = j
			break
		}
	}
	if start < 0 {
		t.Fatal("top face indices not found")
	}
	for i, w := range want {
		if m.Indices[start+i] != w {
			t.Fatalf("indices from %d = %v, want %v (diagonal should run v0-v2)",
				start, m.Indices[start:start+6], want)
		}
	}
}

func TestVertexColorsCarryBlockColor(t *testing.T) {
	c := emptyChunk()
	c.SetBlock(world.BlockPos{X: 8, Y: 8, Z: 8}, world.BlockGrass)

	m := BuildChunkMesh(c)

	want := world.BlockGrass.Color()
	for i, col := range m.Colors {
		if col.W() != want.W() {
			t.Errorf("vertex %d alpha = %v, want %v", i, col.W(), want.W())
		}
		// AO only darkens, never brightens
		if col.X() > want.X() || col.Y() > want.Y() || col.Z() > want.Z() {
			t.Errorf("vertex %d color %v brighter than base %v", i, col, want)
		}
	}
}

func BenchmarkBuildChunkMesh(b *testing.B) {
	g := world.NewGenerator(42)
	c := world.NewChunk(world.ChunkCoord{})
	g.PopulateChunk(c)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildChunkMesh(c)
	}
}
