package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise parameters shared by both fields.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	heightScale = 0.02
	biomeScale  = 0.01
)

// Depth of the dirt band below the surface block.
const dirtDepth = 3

// Generator produces deterministic height and biome fields from a seed.
// It is stateless after construction and safe to share between chunks.
type Generator struct {
	seed        int64
	heightNoise *perlin.Perlin
	biomeNoise  *perlin.Perlin
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		heightNoise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		biomeNoise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed+1),
	}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// HeightAt returns the surface height at world X,Z. Three layered samples:
// a base term, a finer detail term, and a squared mountain term that biases
// the contribution toward ridges.
func (g *Generator) HeightAt(x, z float64) float64 {
	sx := x * heightScale
	sz := z * heightScale

	base := g.heightNoise.Noise2D(sx, sz)
	detail := g.heightNoise.Noise2D(sx*4, sz*4) * 0.25
	mountains := g.heightNoise.Noise2D(sx*0.5, sz*0.5) * 0.5

	combined := base + detail + mountains*mountains*2.0
	return combined*12.0 + 15.0
}

// BiomeAt returns the biome value at world X,Z, remapped to [0,1].
func (g *Generator) BiomeAt(x, z float64) float64 {
	return (g.biomeNoise.Noise2D(x*biomeScale, z*biomeScale) + 1.0) * 0.5
}

// PopulateChunk fills a chunk column by column from the height and biome
// fields. The surface block depends on the biome; a short dirt band sits
// below it unless the terrain is too shallow, and everything deeper is
// stone.
func (g *Generator) PopulateChunk(c *Chunk) {
	origin := c.Coord.Origin()

	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			worldX := float64(origin.X()) + float64(lx)
			worldZ := float64(origin.Z()) + float64(lz)

			height := int(math.Floor(g.HeightAt(worldX, worldZ)))
			biome := g.BiomeAt(worldX, worldZ)

			for ly := 0; ly < ChunkSize; ly++ {
				worldY := c.Coord.Y*ChunkSize + ly

				var b Block
				switch {
				case worldY > height:
					b = BlockAir
				case worldY == height:
					if biome > 0.6 {
						b = BlockSand
					} else {
						b = BlockGrass
					}
				case height > dirtDepth && worldY > height-dirtDepth:
					b = BlockDirt
				default:
					b = BlockStone
				}

				c.SetBlock(BlockPos{X: lx, Y: ly, Z: lz}, b)
			}
		}
	}

	c.dirty = true
}
