package world

import (
	"crypto/sha256"
	"math"
	"testing"
)

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				h.Write([]byte{byte(c.GetBlock(BlockPos{X: x, Y: y, Z: z}))})
			}
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// TestGeneratorDeterminism verifies same seed produces identical terrain
func TestGeneratorDeterminism(t *testing.T) {
	seed := int64(42)
	var hashes [20][32]byte

	for i := range hashes {
		g := NewGenerator(seed)
		c := NewChunk(ChunkCoord{})
		g.PopulateChunk(c)
		hashes[i] = hashChunkBlocks(c)
	}

	first := hashes[0]
	for i := 1; i < len(hashes); i++ {
		if hashes[i] != first {
			t.Errorf("Chunk generation not deterministic: hash[0] != hash[%d]", i)
		}
	}
}

// TestGeneratorDeterminismMultipleChunks verifies world coordinates are used
// correctly, including negative chunks
func TestGeneratorDeterminismMultipleChunks(t *testing.T) {
	seed := int64(42)
	coords := []ChunkCoord{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
		{-1, 0, -1},
	}

	for _, coord := range coords {
		g1 := NewGenerator(seed)
		c1 := NewChunk(coord)
		g1.PopulateChunk(c1)

		g2 := NewGenerator(seed)
		c2 := NewChunk(coord)
		g2.PopulateChunk(c2)

		if hashChunkBlocks(c1) != hashChunkBlocks(c2) {
			t.Errorf("Chunk at %v not deterministic", coord)
		}
	}
}

// TestGeneratorSeedsDiffer verifies different seeds give different terrain
func TestGeneratorSeedsDiffer(t *testing.T) {
	g1 := NewGenerator(42)
	c1 := NewChunk(ChunkCoord{})
	g1.PopulateChunk(c1)

	g2 := NewGenerator(43)
	c2 := NewChunk(ChunkCoord{})
	g2.PopulateChunk(c2)

	if hashChunkBlocks(c1) == hashChunkBlocks(c2) {
		t.Error("Seeds 42 and 43 produced identical chunks")
	}
}

// TestColumnLayering verifies the column fill policy against the height and
// biome fields
func TestColumnLayering(t *testing.T) {
	g := NewGenerator(42)
	c := NewChunk(ChunkCoord{})
	g.PopulateChunk(c)

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			height := int(math.Floor(g.HeightAt(float64(x), float64(z))))
			biome := g.BiomeAt(float64(x), float64(z))

			for y := 0; y < ChunkSize; y++ {
				got := c.GetBlock(BlockPos{X: x, Y: y, Z: z})

				var want Block
				switch {
				case y > height:
					want = BlockAir
				case y == height:
					if biome > 0.6 {
						want = BlockSand
					} else {
						want = BlockGrass
					}
				case height > 3 && y > height-3:
					want = BlockDirt
				default:
					want = BlockStone
				}

				if got != want {
					t.Fatalf("block at (%d,%d,%d): got %v, want %v (height %d, biome %.3f)",
						x, y, z, got, want, height, biome)
				}
			}
		}
	}
}

// TestHeightAtRange verifies the surface stays inside the sampled band
func TestHeightAtRange(t *testing.T) {
	g := NewGenerator(42)
	for x := -200; x <= 200; x += 13 {
		for z := -200; z <= 200; z += 13 {
			h := g.HeightAt(float64(x), float64(z))
			// combined is bounded well within [-2, 2.5], so the surface
			// stays in a narrow band around the base offset
			if h < -15 || h > 45 {
				t.Errorf("HeightAt(%d,%d) = %.2f outside expected band", x, z, h)
			}
		}
	}
}

// TestBiomeAtRange verifies the biome value is remapped to [0,1]
func TestBiomeAtRange(t *testing.T) {
	g := NewGenerator(42)
	for x := -500; x <= 500; x += 37 {
		for z := -500; z <= 500; z += 37 {
			b := g.BiomeAt(float64(x), float64(z))
			if b < 0 || b > 1 {
				t.Errorf("BiomeAt(%d,%d) = %.3f outside [0,1]", x, z, b)
			}
		}
	}
}

// TestTerrainSeamless verifies two adjacent chunks agree on their shared
// column heights (columns are sampled in world space, not chunk space)
func TestTerrainSeamless(t *testing.T) {
	g := NewGenerator(42)

	a := NewChunk(ChunkCoord{X: 0})
	b := NewChunk(ChunkCoord{X: 1})
	g.PopulateChunk(a)
	g.PopulateChunk(b)

	// The surface in the last column of chunk 0 and the first column of
	// chunk 1 must both match the world-space height field.
	for z := 0; z < ChunkSize; z++ {
		h := int(math.Floor(g.HeightAt(15, float64(z))))
		if h >= 0 && h < ChunkSize {
			if blk := a.GetBlock(BlockPos{X: 15, Y: h, Z: z}); blk == BlockAir {
				t.Errorf("chunk 0 missing surface block at (15,%d,%d)", h, z)
			}
		}
		h = int(math.Floor(g.HeightAt(16, float64(z))))
		if h >= 0 && h < ChunkSize {
			if blk := b.GetBlock(BlockPos{X: 0, Y: h, Z: z}); blk == BlockAir {
				t.Errorf("chunk 1 missing surface block at (0,%d,%d)", h, z)
			}
		}
	}
}

// BenchmarkPopulateChunk measures chunk generation performance
func BenchmarkPopulateChunk(b *testing.B) {
	g := NewGenerator(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewChunk(ChunkCoord{})
		g.PopulateChunk(c)
	}
}
