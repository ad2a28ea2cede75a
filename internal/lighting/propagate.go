package lighting

import (
	"errors"
	"fmt"

	"voxlight/internal/profiling"
)

// ErrCenterChunkMissing is returned by Propagate when the caller's center
// chunk has no light plane after the sweep completes — a contract
// violation (Propagate was called with a center outside the working
// region) rather than a condition the core can recover from.
var ErrCenterChunkMissing = errors.New("lighting: center chunk missing after propagate")

// Propagate sweeps a rectangular working region top-down, seeding sun
// light through a lateral mask and enqueuing every emissive block on its
// color channels, then floods each of the four channels once. It returns
// an owned copy of the light plane for the center chunk.
func Propagate(access VoxelAccess, minX, minY, minZ int, centerCX, centerCZ int, shapeX, shapeY, shapeZ int, registry Registry, cfg Config) (LightPlane, error) {
	defer profiling.Track("lighting.Propagate")()

	var redQueue, greenQueue, blueQueue, sunQueue []LightNode

	mask := make([]uint8, shapeX*shapeZ)
	for i := range mask {
		mask[i] = cfg.MaxLightLevel
	}
	maskIndex := func(x, z int) int { return x + z*shapeX }

	for y := cfg.MaxHeight - 1; y >= 0; y-- {
		for x := 0; x < shapeX; x++ {
			for z := 0; z < shapeZ; z++ {
				idx := maskIndex(x, z)

				wx, wz := minX+x, minZ+z
				block := registry.GetBlockByID(access.GetVoxel(wx, y, wz))

				if block.IsTransparent {
					access.SetSunlight(wx, y, wz, mask[idx])

					if mask[idx] == 0 {
						sideLit := (x > 0 && mask[maskIndex(x-1, z)] == cfg.MaxLightLevel) ||
							(x < shapeX-1 && mask[maskIndex(x+1, z)] == cfg.MaxLightLevel) ||
							(z > 0 && mask[maskIndex(x, z-1)] == cfg.MaxLightLevel) ||
							(z < shapeZ-1 && mask[maskIndex(x, z+1)] == cfg.MaxLightLevel)

						if sideLit {
							access.SetSunlight(wx, y, wz, cfg.MaxLightLevel-1)
							sunQueue = append(sunQueue, LightNode{X: wx, Y: y, Z: wz, Level: cfg.MaxLightLevel - 1})
						}
					}
				} else {
					mask[idx] = 0
				}

				if block.IsLight {
					if block.RedLightLevel > 0 {
						access.SetTorchLight(wx, y, wz, block.RedLightLevel, Red)
						redQueue = append(redQueue, LightNode{X: wx, Y: y, Z: wz, Level: block.RedLightLevel})
					}
					if block.GreenLightLevel > 0 {
						access.SetTorchLight(wx, y, wz, block.GreenLightLevel, Green)
						greenQueue = append(greenQueue, LightNode{X: wx, Y: y, Z: wz, Level: block.GreenLightLevel})
					}
					if block.BlueLightLevel > 0 {
						access.SetTorchLight(wx, y, wz, block.BlueLightLevel, Blue)
						blueQueue = append(blueQueue, LightNode{X: wx, Y: y, Z: wz, Level: block.BlueLightLevel})
					}
				}
			}
		}
	}

	bounds := &Bounds{MinX: minX, MinZ: minZ, ShapeX: shapeX, ShapeZ: shapeZ}

	if len(redQueue) > 0 {
		Flood(access, redQueue, Red, registry, cfg, bounds)
	}
	if len(greenQueue) > 0 {
		Flood(access, greenQueue, Green, registry, cfg, bounds)
	}
	if len(blueQueue) > 0 {
		Flood(access, blueQueue, Blue, registry, cfg, bounds)
	}
	if len(sunQueue) > 0 {
		Flood(access, sunQueue, Sun, registry, cfg, bounds)
	}

	plane, ok := access.GetLights(centerCX, centerCZ)
	if !ok {
		return LightPlane{}, fmt.Errorf("propagate center (%d,%d): %w", centerCX, centerCZ, ErrCenterChunkMissing)
	}
	return plane.Clone(), nil
}
