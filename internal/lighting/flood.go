package lighting

import "voxlight/internal/profiling"

// Flood expands a queue of seed light nodes breadth-first for one channel,
// writing through access so that every reachable transparent cell ends up
// at least as bright as level-minus-distance from its nearest seed.
//
// Queue nodes supply the seed location and the level already present
// there; Flood does not write the seed itself, only its neighbors. An
// empty queue is a no-op (P4: Flood is idempotent with nothing to add).
func Flood(access VoxelAccess, queue []LightNode, ch Channel, registry Registry, cfg Config, bounds *Bounds) {
	defer profiling.Track("lighting.Flood:" + ch.String())()

	head := 0
	for head < len(queue) {
		node := queue[head]
		head++

		if node.Level == 0 {
			continue
		}

		for _, off := range neighborOffsets {
			nx, ny, nz := node.X+off[0], node.Y+off[1], node.Z+off[2]

			if ny < 0 || ny >= cfg.MaxHeight {
				continue
			}

			ncx, ncz := chunkCoordOf(nx, nz, cfg.ChunkSize)
			if ncx < cfg.MinChunkX || ncx > cfg.MaxChunkX || ncz < cfg.MinChunkZ || ncz > cfg.MaxChunkZ {
				continue
			}

			if bounds != nil {
				if nx < bounds.MinX || nz < bounds.MinZ ||
					nx >= bounds.MinX+bounds.ShapeX || nz >= bounds.MinZ+bounds.ShapeZ {
					continue
				}
			}

			block := registry.GetBlockByID(access.GetVoxel(nx, ny, nz))
			if !block.IsTransparent {
				continue
			}

			next := node.Level - 1
			// Sun descends without attenuation while still at full strength.
			if ch == Sun && off[1] == -1 && node.Level == cfg.MaxLightLevel {
				next = cfg.MaxLightLevel
			}

			if getLevel(access, nx, ny, nz, ch) >= next {
				continue
			}

			setLevel(access, nx, ny, nz, next, ch)
			queue = append(queue, LightNode{X: nx, Y: ny, Z: nz, Level: next})
		}
	}
}
