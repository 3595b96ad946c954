package config

import "sync"

// World and interaction defaults.
const (
	// DefaultSeed seeds the terrain generator when the host does not pick
	// one.
	DefaultSeed int64 = 42

	// DefaultActivationRadius is the Chebyshev radius, in chunks, kept
	// loaded around the observer.
	DefaultActivationRadius = 3

	// MaxInteractionDistance bounds raycasts, in world units.
	MaxInteractionDistance float32 = 5.0

	// RaycastMaxSteps caps DDA iterations for degenerate directions.
	RaycastMaxSteps = 100
)

// WorldSettings holds the runtime-adjustable world configuration.
type WorldSettings struct {
	mu               sync.RWMutex
	activationRadius int
}

var globalWorldSettings = &WorldSettings{
	activationRadius: DefaultActivationRadius,
}

// GetActivationRadius returns the current chunk activation radius.
func GetActivationRadius() int {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.activationRadius
}

// SetActivationRadius sets the chunk activation radius, clamped to sane
// bounds.
func SetActivationRadius(radius int) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()

	if radius < 1 {
		radius = 1
	}
	if radius > 32 {
		radius = 32
	}
	globalWorldSettings.activationRadius = radius
}
