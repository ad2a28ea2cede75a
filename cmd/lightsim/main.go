// Command lightsim generates a small flat region, drops a few light
// sources into it, and runs the lighting core over it end to end: a
// manual smoke test for Propagate/Unlight against a real World/Adapter
// rather than the fake grid the package tests use.
package main

import (
	"flag"
	"log"

	"github.com/xlab/closer"

	"voxlight/internal/config"
	"voxlight/internal/lighting"
	"voxlight/internal/profiling"
	"voxlight/internal/registry"
	"voxlight/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to a world config YAML file (optional)")
	flag.Parse()

	closer.Bind(func() {
		log.Println("lightsim: shutting down")
	})
	defer closer.Close()

	cfg := config.DefaultWorldConfig()
	if *configPath != "" {
		loaded, err := config.LoadWorldConfig(*configPath)
		if err != nil {
			log.Fatalf("lightsim: %v", err)
		}
		cfg = loaded
	}
	cfg.Apply()

	registry.InitRegistry()

	w := world.NewFlat(cfg.SurfaceHeight)
	w.GetOrGenerateChunk(0, 0)
	w.Set(8, cfg.SurfaceHeight+2, 8, world.BlockTypeLampRed)
	w.Set(4, cfg.SurfaceHeight+2, 12, world.BlockTypeLampGreen)
	w.Set(12, cfg.SurfaceHeight+2, 4, world.BlockTypeLampBlue)

	adapter := world.NewAdapter(w)
	reg := registry.Lighting{}
	lightCfg := lighting.Config{
		MaxHeight:     world.ChunkSizeY,
		MaxLightLevel: config.GetMaxLightLevel(),
		ChunkSize:     world.ChunkSizeX,
		MinChunkX:     0,
		MinChunkZ:     0,
		MaxChunkX:     0,
		MaxChunkZ:     0,
	}

	plane, err := lighting.Propagate(adapter, 0, 0, 0, 0, 0, world.ChunkSizeX, world.ChunkSizeY, world.ChunkSizeZ, reg, lightCfg)
	if err != nil {
		log.Fatalf("lightsim: propagate: %v", err)
	}
	log.Printf("lightsim: propagated chunk (0,0): plane shape %dx%dx%d, %d cells", plane.ShapeX, plane.ShapeY, plane.ShapeZ, len(plane.Data))
	log.Printf("lightsim: sun at spawn column top = %d", adapter.GetSunlight(8, cfg.SurfaceHeight+10, 8))
	log.Printf("lightsim: red at lamp = %d, 4 blocks away = %d", adapter.GetTorchLight(8, cfg.SurfaceHeight+2, 8, lighting.Red), adapter.GetTorchLight(8, cfg.SurfaceHeight+2, 12, lighting.Red))

	lighting.Unlight(adapter, 8, cfg.SurfaceHeight+2, 8, lighting.Red, lightCfg, reg)
	log.Printf("lightsim: red at lamp after unlight = %d", adapter.GetTorchLight(8, cfg.SurfaceHeight+2, 8, lighting.Red))

	active := w.GetActiveBlocks()
	log.Printf("lightsim: %d non-air blocks placed", len(active))
	for _, pos := range active {
		log.Printf("lightsim: active block at %v", pos)
	}

	log.Printf("lightsim: profiling top 5: %s", profiling.TopN(5))
}
