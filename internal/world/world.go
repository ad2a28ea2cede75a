package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World represents the voxel world: chunked block storage plus the
// generator used to populate new chunks on demand.
type World struct {
	store *ChunkStore
	gen   TerrainGenerator
}

// ChunkCoord is a unique identifier for a chunk based on its position.
type ChunkCoord struct {
	X, Y, Z int
}

// New creates a world backed by the noise-based terrain generator.
func New(seed int64) *World {
	return &World{
		store: NewChunkStore(),
		gen:   NewGenerator(seed),
	}
}

// NewFlat creates a world backed by a flat generator at the given height,
// useful for deterministic lighting demos and tests.
func NewFlat(height int) *World {
	return &World{
		store: NewChunkStore(),
		gen:   NewFlatGenerator(height),
	}
}

// NewEmpty creates a world with no terrain generator; chunks are never
// auto-populated (callers set blocks directly). Used by lighting tests
// that want full control over the voxel layout.
func NewEmpty() *World {
	return &World{store: NewChunkStore()}
}

// GetChunk returns the chunk at the specified chunk coordinates.
func (w *World) GetChunk(chunkX, chunkY, chunkZ int, create bool) *Chunk {
	return w.store.GetChunk(chunkX, chunkY, chunkZ, create)
}

// GetOrGenerateChunk returns the chunk at (cx, 0, cz), populating it via
// the configured generator the first time it is created.
func (w *World) GetOrGenerateChunk(cx, cz int) *Chunk {
	existing := w.store.GetChunk(cx, 0, cz, false)
	if existing != nil {
		return existing
	}
	chunk := w.store.GetChunk(cx, 0, cz, true)
	if w.gen != nil {
		w.gen.PopulateChunk(chunk)
	}
	return chunk
}

// GetChunkFromBlockCoords returns the chunk containing the block at the
// specified world coordinates.
func (w *World) GetChunkFromBlockCoords(x, y, z int, create bool) *Chunk {
	return w.store.GetChunkFromBlockCoords(x, y, z, create)
}

// Get returns the block type at the specified world coordinates.
func (w *World) Get(x, y, z int) BlockType {
	return w.store.Get(x, y, z)
}

// IsAir checks if the block at the specified world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.store.IsAir(x, y, z)
}

// Set sets the block type at the specified world coordinates.
func (w *World) Set(x, y, z int, val BlockType) {
	w.store.Set(x, y, z, val)
}

// GetActiveBlocks returns a list of positions of all non-air blocks in the world.
func (w *World) GetActiveBlocks() []mgl32.Vec3 {
	return w.store.GetActiveBlocks()
}

// SurfaceHeightAt exposes the terrain surface height used for generation
// at world (x, z). Returns 0 if no generator is configured.
func (w *World) SurfaceHeightAt(x, z int) int {
	if w.gen == nil {
		return 0
	}
	return w.gen.HeightAt(x, z)
}

// floorDiv performs integer division that rounds down for negative numbers.
func floorDiv(a, b int) int {
	if a < 0 {
		return (a - b + 1) / b
	}
	return a / b
}

// mod returns the remainder of a/b, always positive.
func mod(a, b int) int {
	result := a % b
	if result < 0 {
		result += b
	}
	return result
}
