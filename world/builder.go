package world

import (
	"github.com/voxelkeep/worldgen/world/generator/anchor"
	"github.com/voxelkeep/worldgen/world/generator/biome"
	"github.com/voxelkeep/worldgen/world/generator/feature"
	"github.com/voxelkeep/worldgen/world/generator/hash"
	"github.com/voxelkeep/worldgen/world/generator/terrain"
)

// buildSection fills dst with the synthesized terrain for the 16-cube
// section at origin (cx, cy, cz). It deliberately does not apply the
// overlay: the cache stores pre-overlay terrain so a slot never needs
// invalidating just because an override came or went elsewhere (the caller
// layers the overlay on after caching). It cannot fail: out-of-range Y
// sections still produce a fully defined section (bedrock below zero, air
// above the cap).
func (g *Generator) buildSection(cx, cy, cz int32, dst *Section) biome.ID {
	anchorX := int16(hash.FloorDiv(int(cx), anchor.ChunkSize))
	anchorZ := int16(hash.FloorDiv(int(cz), anchor.ChunkSize))

	origin := anchor.At(anchorX, anchorZ, g.seed)
	f := feature.At(origin, g.field)

	var heights [16][16]int
	for rx := 0; rx < 16; rx++ {
		for rz := 0; rz < 16; rz++ {
			heights[rx][rz] = g.field.HeightAt(rx, rz, origin.X, origin.Z, origin.Hash, origin.Biome)
		}
	}

	dst.Reset()
	for dy := 0; dy < 16; dy++ {
		y := int(cy) + dy
		for dz := 0; dz < 16; dz++ {
			z := int(cz) + dz
			for dx := 0; dx < 16; dx++ {
				x := int(cx) + dx
				id := terrain.At(x, y, z, origin, f, heights[dx][dz])
				dst.Set(uint8(dx), uint8(dy), uint8(dz), id)
			}
		}
	}

	return origin.Biome
}
