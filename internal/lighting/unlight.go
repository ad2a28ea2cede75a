package lighting

import "voxlight/internal/profiling"

// Unlight removes the light contribution of a single voxel on one channel
// and restores a consistent field afterward.
//
// It darkens every cell that is a BFS child of the removed source (level
// strictly less than its parent, with the sun-descent exemption mirrored
// from Flood), and collects every cell that instead belongs to a surviving
// source (level greater-or-equal) as a refill seed. The refill queue is
// then flooded globally (no lateral bounds — unlight is not confined to a
// working region).
func Unlight(access VoxelAccess, vx, vy, vz int, ch Channel, cfg Config, registry Registry) {
	defer profiling.Track("lighting.Unlight:" + ch.String())()

	origin := getLevel(access, vx, vy, vz, ch)

	darken := []LightNode{{X: vx, Y: vy, Z: vz, Level: origin}}
	var fill []LightNode

	setLevel(access, vx, vy, vz, 0, ch)

	head := 0
	for head < len(darken) {
		node := darken[head]
		head++

		for _, off := range neighborOffsets {
			nx, ny, nz := node.X+off[0], node.Y+off[1], node.Z+off[2]

			if ny < 0 || ny >= cfg.MaxHeight {
				continue
			}

			nLevel := getLevel(access, nx, ny, nz, ch)
			if nLevel == 0 {
				continue
			}

			sunDescent := ch == Sun && off[1] == -1 && node.Level == cfg.MaxLightLevel && nLevel == cfg.MaxLightLevel

			if nLevel < node.Level || sunDescent {
				darken = append(darken, LightNode{X: nx, Y: ny, Z: nz, Level: nLevel})
				setLevel(access, nx, ny, nz, 0, ch)
				continue
			}

			if nLevel >= node.Level && (ch != Sun || off[1] != -1 || nLevel > node.Level) {
				fill = append(fill, LightNode{X: nx, Y: ny, Z: nz, Level: nLevel})
			}
		}
	}

	Flood(access, fill, ch, registry, cfg, nil)
}
