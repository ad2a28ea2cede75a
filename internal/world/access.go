package world

import "voxlight/internal/lighting"

// Adapter exposes a World as a lighting.VoxelAccess. It is the seam the
// lighting core calls through — the core never touches ChunkStore or
// Chunk directly.
type Adapter struct {
	world *World
}

// NewAdapter wraps a World for use as a lighting.VoxelAccess.
func NewAdapter(w *World) *Adapter {
	return &Adapter{world: w}
}

var _ lighting.VoxelAccess = (*Adapter)(nil)

func (a *Adapter) GetVoxel(x, y, z int) int {
	return int(a.world.store.Get(x, y, z))
}

func (a *Adapter) GetSunlight(x, y, z int) uint8 {
	return a.world.getLight(x, y, z, lighting.Sun)
}

func (a *Adapter) SetSunlight(x, y, z int, level uint8) {
	a.world.setLight(x, y, z, level, lighting.Sun)
}

func (a *Adapter) GetTorchLight(x, y, z int, ch lighting.Channel) uint8 {
	return a.world.getLight(x, y, z, ch)
}

func (a *Adapter) SetTorchLight(x, y, z int, level uint8, ch lighting.Channel) {
	a.world.setLight(x, y, z, level, ch)
}

func (a *Adapter) GetLights(cx, cz int) (lighting.LightPlane, bool) {
	chunk := a.world.store.GetChunk(cx, 0, cz, false)
	if chunk == nil {
		return lighting.LightPlane{}, false
	}
	return chunk.LightPlane(), true
}

// getLight reads a light channel at world coordinates. A chunk that has
// never been touched reads as fully dark (0) rather than being created.
func (w *World) getLight(x, y, z int, ch lighting.Channel) uint8 {
	chunk := w.store.GetChunkFromBlockCoords(x, y, z, false)
	if chunk == nil {
		return 0
	}
	return chunk.GetLight(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ), ch)
}

// setLight writes a light channel at world coordinates, creating the
// backing chunk if necessary (propagation routinely lights columns ahead
// of terrain generation, e.g. sky above a region with no blocks yet).
func (w *World) setLight(x, y, z int, level uint8, ch lighting.Channel) {
	chunk := w.store.GetChunkFromBlockCoords(x, y, z, true)
	chunk.SetLight(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ), level, ch)
}
