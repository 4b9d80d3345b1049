// Package terrain implements the per-block terrain synthesizer: given a
// world coordinate, its chunk anchor, and the column's feature and height,
// it decides the single block id present there.
package terrain

import (
	"github.com/voxelkeep/worldgen/world/generator/anchor"
	"github.com/voxelkeep/worldgen/world/generator/biome"
	"github.com/voxelkeep/worldgen/world/generator/block"
	"github.com/voxelkeep/worldgen/world/generator/feature"
	"github.com/voxelkeep/worldgen/world/generator/hash"
)

// CaveBaseDepth is the sea-level-like midpoint caves carve around; cavern
// size scales with how far the surface sits above TerrainBaseHeight.
const CaveBaseDepth = 32

// Cap is the absolute Y above which everything is air, regardless of biome
// or feature.
const Cap = 80

// At synthesizes the block at world (x, y, z) given the enclosing column's
// anchor, its selected feature, and its terrain height (all derived by the
// caller from the same anchor.Field so a single height computation is
// shared across every block in the column). y < 0 is bedrock, independent
// of every other rule.
func At(x, y, z int, a anchor.Anchor, f feature.Feature, height int) uint8 {
	if y < 0 {
		return block.Bedrock
	}
	if y > Cap {
		return block.Air
	}

	rx := hash.PosMod(x, anchor.ChunkSize)
	rz := hash.PosMod(z, anchor.ChunkSize)

	if y >= 64 && y >= height && f.Present() {
		if id, ok := feature.BlockAt(f, a.Biome, x, y, z, height); ok {
			return id
		}
	}

	if height >= 63 {
		if y == height {
			return surfaceBlock(a.Biome)
		}
		if a.Biome == biome.SnowyPlains || a.Biome == biome.SnowyPlainsCold {
			if y == height+1 {
				return block.Snow
			}
		}
	}

	if y <= height-4 {
		return subsurfaceBlock(rx, rz, y, a, height)
	}

	if y <= height {
		return intermediateBlock(a.Biome, height)
	}

	if y == biome.IceLine && (a.Biome == biome.SnowyPlains || a.Biome == biome.SnowyPlainsCold) {
		return block.Ice
	}
	if y < biome.SeaLevel {
		return block.Water
	}

	return block.Air
}

func surfaceBlock(b biome.ID) uint8 {
	switch b {
	case biome.MangroveSwamp:
		return block.Mud
	case biome.SnowyPlains, biome.SnowyPlainsCold:
		return block.SnowyGrassBlock
	case biome.Desert, biome.Beach:
		return block.Sand
	default:
		return block.GrassBlock
	}
}

func intermediateBlock(b biome.ID, height int) uint8 {
	switch b {
	case biome.Desert:
		return block.Sandstone
	case biome.MangroveSwamp:
		return block.Mud
	case biome.Beach:
		if height > 64 {
			return block.Sandstone
		}
		return block.Dirt
	default:
		return block.Dirt
	}
}

// subsurfaceBlock resolves caves, the single ore candidate for this column,
// and the stone fallback, four or more blocks below the surface.
func subsurfaceBlock(rx, rz, y int, a anchor.Anchor, height int) uint8 {
	gap := height - biome.TerrainBaseHeight
	if y < CaveBaseDepth+gap && y > CaveBaseDepth-gap {
		return block.Air
	}

	t := uint8(rx<<4 | rz)
	oreY := int(hash.XorShift8(t) & 63)

	if y == oreY {
		p := int((a.Hash >> uint(oreY%24)) & 0xFF)
		return oreAt(y, p)
	}

	return block.Stone
}

// oreAt evaluates the ore table top-to-bottom; the first matching band
// wins.
func oreAt(y, p int) uint8 {
	if y < 15 {
		if p < 10 {
			return block.DiamondOre
		}
		if p < 12 {
			return block.GoldOre
		}
		if p < 15 {
			return block.RedstoneOre
		}
	}
	if y < 30 {
		if p < 3 {
			return block.GoldOre
		}
		if p < 8 {
			return block.RedstoneOre
		}
	}
	if y < 54 {
		if p < 30 {
			return block.IronOre
		}
		if p < 40 {
			return block.CopperOre
		}
	}
	if p < 60 {
		return block.CoalOre
	}
	if y < 5 {
		return block.Lava
	}
	return block.Cobblestone
}
