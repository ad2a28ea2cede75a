package world

import (
	"testing"

	"voxlight/internal/lighting"
)

// stubRegistry resolves the handful of block types exercised by these
// tests; it satisfies lighting.Registry without pulling in the registry
// package (which would create an import cycle: registry already imports
// world).
type stubRegistry struct{}

func (stubRegistry) GetBlockByID(id int) lighting.Block {
	switch BlockType(id) {
	case BlockTypeAir, BlockTypeGlass:
		return lighting.Block{IsTransparent: true}
	case BlockTypeLampRed:
		return lighting.Block{IsTransparent: true, IsLight: true, RedLightLevel: 15}
	default:
		return lighting.Block{IsTransparent: false}
	}
}

func lightingConfig() lighting.Config {
	return lighting.Config{
		MaxHeight:     ChunkSizeY,
		MaxLightLevel: 15,
		ChunkSize:     ChunkSizeX,
		MinChunkX:     0,
		MinChunkZ:     0,
		MaxChunkX:     0,
		MaxChunkZ:     0,
	}
}

func TestAdapterSatisfiesVoxelAccess(t *testing.T) {
	var _ lighting.VoxelAccess = (*Adapter)(nil)
}

func TestAdapterPropagateFillsEmptyChunk(t *testing.T) {
	w := NewEmpty()
	w.store.GetChunk(0, 0, 0, true)
	adapter := NewAdapter(w)
	reg := stubRegistry{}
	cfg := lightingConfig()

	plane, err := lighting.Propagate(adapter, 0, 0, 0, 0, 0, ChunkSizeX, ChunkSizeY, ChunkSizeZ, reg, cfg)
	if err != nil {
		t.Fatalf("Propagate returned error: %v", err)
	}
	if plane.ShapeX != ChunkSizeX || plane.ShapeY != ChunkSizeY || plane.ShapeZ != ChunkSizeZ {
		t.Fatalf("unexpected plane shape: %+v", plane)
	}
	if s := adapter.GetSunlight(5, 200, 5); s != 15 {
		t.Fatalf("sun(5,200,5) = %d, want 15 in an all-air chunk", s)
	}
}

func TestAdapterPropagateRedLampDecays(t *testing.T) {
	w := NewEmpty()
	w.Set(5, 10, 5, BlockTypeLampRed)
	adapter := NewAdapter(w)
	reg := stubRegistry{}
	cfg := lightingConfig()

	if _, err := lighting.Propagate(adapter, 0, 0, 0, 0, 0, ChunkSizeX, ChunkSizeY, ChunkSizeZ, reg, cfg); err != nil {
		t.Fatalf("Propagate returned error: %v", err)
	}

	if r := adapter.GetTorchLight(5, 10, 5, lighting.Red); r != 15 {
		t.Fatalf("red(5,10,5) = %d, want 15", r)
	}
	if r := adapter.GetTorchLight(6, 10, 5, lighting.Red); r != 14 {
		t.Fatalf("red(6,10,5) = %d, want 14", r)
	}
	if r := adapter.GetTorchLight(5, 10, 5+15, lighting.Red); r != 0 {
		t.Fatalf("red 15 blocks away should be 0, got %d", r)
	}
}

func TestAdapterUnlightClearsLamp(t *testing.T) {
	w := NewEmpty()
	w.Set(5, 10, 5, BlockTypeLampRed)
	adapter := NewAdapter(w)
	reg := stubRegistry{}
	cfg := lightingConfig()

	if _, err := lighting.Propagate(adapter, 0, 0, 0, 0, 0, ChunkSizeX, ChunkSizeY, ChunkSizeZ, reg, cfg); err != nil {
		t.Fatalf("Propagate returned error: %v", err)
	}

	lighting.Unlight(adapter, 5, 10, 5, lighting.Red, cfg, reg)

	if r := adapter.GetTorchLight(5, 10, 5, lighting.Red); r != 0 {
		t.Fatalf("red(5,10,5) = %d, want 0 after unlight", r)
	}
	if r := adapter.GetTorchLight(6, 10, 5, lighting.Red); r != 0 {
		t.Fatalf("red(6,10,5) = %d, want 0 after unlight", r)
	}
}

func TestAdapterMissingCenterChunkErrors(t *testing.T) {
	w := NewEmpty()
	adapter := NewAdapter(w)
	reg := stubRegistry{}
	cfg := lightingConfig()

	// Center outside the working region: GetLights(1,1) never got created
	// because Propagate only ever writes through chunk (0,0)'s block range.
	_, err := lighting.Propagate(adapter, 0, 0, 0, 1, 1, ChunkSizeX, ChunkSizeY, ChunkSizeZ, reg, cfg)
	if err == nil {
		t.Fatal("expected ErrCenterChunkMissing, got nil")
	}
}
