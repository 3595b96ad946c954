package game

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// TickInput is everything the session needs from the host for one tick.
// The host owns windowing and raw input; the session only sees intent.
type TickInput struct {
	// Observer is the eye position chunks are activated around and rays
	// are cast from.
	Observer mgl32.Vec3
	// Facing is the view direction; it does not need to be normalized.
	Facing mgl32.Vec3
	// Aiming gates targeting and interaction, e.g. it is false while the
	// cursor is released.
	Aiming bool
	// BreakBlock and PlaceBlock are edge-triggered: true only on the tick
	// the button went down.
	BreakBlock bool
	PlaceBlock bool
	// PaletteSlot selects the block type placed this tick.
	PaletteSlot int
}

// ChunkMesh pairs a chunk's CPU mesh with its render identity. Version
// increases every rebuild so a renderer knows when to re-upload.
type ChunkMesh struct {
	Coord   world.ChunkCoord
	Handle  world.MeshHandle
	Version uint64
	Mesh    *meshing.Mesh
}

// Session ties the store, generator, mesher and interaction together behind
// a single per-tick entry point. It keeps the CPU mesh for every loaded
// chunk; GPU state stays with the renderer.
type Session struct {
	store       *world.ChunkStore
	meshes      map[world.ChunkCoord]*ChunkMesh
	meshVersion uint64
	target      TargetState
}

// NewSession creates a session over a fresh world with the given seed.
func NewSession(seed int64) *Session {
	return &Session{
		store:  world.NewChunkStore(world.NewGenerator(seed)),
		meshes: make(map[world.ChunkCoord]*ChunkMesh),
	}
}

// Store exposes the underlying chunk store.
func (s *Session) Store() *world.ChunkStore {
	return s.store
}

// Target returns the block under the crosshair as of the last tick.
func (s *Session) Target() TargetState {
	return s.target
}

// Meshes returns the live mesh cache keyed by chunk coordinate. Callers
// must treat it as read-only; entries are replaced on rebuild.
func (s *Session) Meshes() map[world.ChunkCoord]*ChunkMesh {
	return s.meshes
}

// Tick runs one simulation step: chunk activation around the observer,
// crosshair targeting, break/place interaction, then remeshing of every
// chunk the step dirtied. All of it is synchronous; when Tick returns the
// mesh cache matches the world exactly.
func (s *Session) Tick(in TickInput) {
	defer profiling.Track("game.Tick")()

	center := world.ChunkCoordFromWorld(in.Observer)
	center.Y = 0
	_, removed := s.store.Activate(center, config.GetActivationRadius())
	for _, coord := range removed {
		delete(s.meshes, coord)
	}

	if in.Aiming {
		hit, ok := physics.Raycast(s.store, in.Observer, in.Facing, config.MaxInteractionDistance)
		s.target = TargetState{Hit: hit, Valid: ok}
	} else {
		s.target = TargetState{}
	}

	if s.target.Valid && in.BreakBlock {
		BreakBlock(s.store, s.target.Hit)
	}
	if s.target.Valid && in.PlaceBlock {
		PlaceBlock(s.store, s.target.Hit, PaletteBlock(in.PaletteSlot))
	}

	s.remeshDirty()
}

// remeshDirty rebuilds the mesh of every dirty loaded chunk and prunes
// cache entries whose chunk is gone.
func (s *Session) remeshDirty() {
	defer profiling.Track("game.remeshDirty")()

	for _, coord := range s.store.Coords() {
		chunk := s.store.GetChunk(coord)
		if !chunk.IsDirty() {
			continue
		}
		handle, _ := s.store.Handle(coord)
		s.meshVersion++
		s.meshes[coord] = &ChunkMesh{
			Coord:   coord,
			Handle:  handle,
			Version: s.meshVersion,
			Mesh:    meshing.BuildChunkMesh(chunk),
		}
		chunk.SetClean()
	}
}
