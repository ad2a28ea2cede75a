package world

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	// Map of chunks indexed by their coordinates
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at the specified chunk coordinates.
// If the chunk doesn't exist and create is true, it will be created (but NOT populated).
func (cs *ChunkStore) GetChunk(chunkX, chunkY, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Y: chunkY, Z: chunkZ}
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		// Double-check locking: another goroutine might have created it while we were waiting for the lock
		if existing, ok := cs.chunks[coord]; ok {
			cs.mu.Unlock()
			return existing
		}

		chunk = NewChunk(chunkX, chunkY, chunkZ)
		cs.chunks[coord] = chunk
		cs.mu.Unlock()
	}
	return chunk
}

// GetChunkFromBlockCoords returns the chunk containing the block at the specified world coordinates.
func (cs *ChunkStore) GetChunkFromBlockCoords(x, y, z int, create bool) *Chunk {
	// Convert world coordinates to chunk coordinates
	chunkX := floorDiv(x, ChunkSizeX)
	chunkY := floorDiv(y, ChunkSizeY)
	chunkZ := floorDiv(z, ChunkSizeZ)

	return cs.GetChunk(chunkX, chunkY, chunkZ, create)
}

// Get returns the block type at the specified world coordinates.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	chunk := cs.GetChunkFromBlockCoords(x, y, z, false)
	if chunk == nil {
		return BlockTypeAir
	}

	// Convert world coordinates to local chunk coordinates
	localX := mod(x, ChunkSizeX)
	localY := mod(y, ChunkSizeY)
	localZ := mod(z, ChunkSizeZ)

	return chunk.GetBlock(localX, localY, localZ)
}

// IsAir checks if the block at the specified world coordinates is air.
func (cs *ChunkStore) IsAir(x, y, z int) bool {
	return cs.Get(x, y, z) == BlockTypeAir
}

// Set sets the block type at the specified world coordinates.
func (cs *ChunkStore) Set(x, y, z int, val BlockType) {
	chunk := cs.GetChunkFromBlockCoords(x, y, z, true)

	// Convert world coordinates to local chunk coordinates
	localX := mod(x, ChunkSizeX)
	localY := mod(y, ChunkSizeY)
	localZ := mod(z, ChunkSizeZ)

	chunk.SetBlock(localX, localY, localZ, val)

	// Mark neighbor chunks dirty if we touched a border block
	if localX == 0 {
		if nb := cs.GetChunkFromBlockCoords(x-1, y, z, false); nb != nil {
			nb.dirty = true
		}
	} else if localX == ChunkSizeX-1 {
		if nb := cs.GetChunkFromBlockCoords(x+1, y, z, false); nb != nil {
			nb.dirty = true
		}
	}
	if localY == 0 {
		if nb := cs.GetChunkFromBlockCoords(x, y-1, z, false); nb != nil {
			nb.dirty = true
		}
	} else if localY == ChunkSizeY-1 {
		if nb := cs.GetChunkFromBlockCoords(x, y+1, z, false); nb != nil {
			nb.dirty = true
		}
	}
	if localZ == 0 {
		if nb := cs.GetChunkFromBlockCoords(x, y, z-1, false); nb != nil {
			nb.dirty = true
		}
	} else if localZ == ChunkSizeZ-1 {
		if nb := cs.GetChunkFromBlockCoords(x, y, z+1, false); nb != nil {
			nb.dirty = true
		}
	}
}

// GetActiveBlocks returns a list of positions of all non-air blocks in the world.
func (cs *ChunkStore) GetActiveBlocks() []mgl32.Vec3 {
	var positions []mgl32.Vec3
	cs.mu.RLock()
	for _, chunk := range cs.chunks {
		positions = append(positions, chunk.GetActiveBlocks()...)
	}
	cs.mu.RUnlock()
	return positions
}
