// Package feature selects and places the single deterministic decoration
// (tree, cactus, bush, lily pad, grass, carpet) each chunk column may carry.
package feature

import (
	"github.com/voxelkeep/worldgen/world/generator/anchor"
	"github.com/voxelkeep/worldgen/world/generator/biome"
	"github.com/voxelkeep/worldgen/world/generator/block"
)

// None is the sentinel Y coordinate meaning "this column has no feature."
const None uint8 = 0xFF

// Feature is the single deterministic decoration selected for a chunk
// column, positioned in world coordinates.
type Feature struct {
	X, Z    int
	Y       uint8
	Variant uint8
}

// At selects the feature for the chunk column anchored at a, consulting the
// height field for the feature's resting height. Features positioned near
// a chunk edge are suppressed, except in mangrove swamps, both to keep
// trees from straddling chunk boundaries and to bound overall feature
// density everywhere else.
func At(a anchor.Anchor, f *anchor.Field) Feature {
	position := uint8(a.Hash % 256)
	fx := int(position % anchor.ChunkSize)
	fz := int(position / anchor.ChunkSize)

	if a.Biome != biome.MangroveSwamp {
		if fx < 3 || fx > anchor.ChunkSize-3 || fz < 3 || fz > anchor.ChunkSize-3 {
			return Feature{Y: None}
		}
	}

	worldX := int(a.X)*anchor.ChunkSize + fx
	worldZ := int(a.Z)*anchor.ChunkSize + fz
	height := f.HeightAt(fx, fz, a.X, a.Z, a.Hash, a.Biome)

	return Feature{
		X:       worldX,
		Z:       worldZ,
		Y:       uint8(height + 1),
		Variant: uint8((a.Hash >> uint(fx+fz)) & 1),
	}
}

// Present reports whether this column actually carries a feature.
func (f Feature) Present() bool { return f.Y != None }

// BlockAt returns the block id the feature geometry claims at (x, y, z), and
// whether the feature claims this block at all. Callers only invoke this
// when y >= 64, y >= the column's terrain height, and the feature is
// present.
func BlockAt(f Feature, b biome.ID, x, y, z int, height int) (id uint8, ok bool) {
	switch b {
	case biome.Plains:
		return plainsOakTree(f, x, y, z)
	case biome.Desert:
		return desertFeature(f, x, y, z, height)
	case biome.MangroveSwamp:
		return mangroveFeature(f, x, y, z, height)
	case biome.SnowyPlains, biome.SnowyPlainsCold:
		return snowyPlainsFeature(f, x, y, z, height)
	default:
		return 0, false
	}
}

func plainsOakTree(f Feature, x, y, z int) (uint8, bool) {
	if int(f.Y) < 64 {
		// Never grow trees underwater.
		return 0, false
	}

	fx, fz, fy := f.X, f.Z, int(f.Y)
	variant := int(f.Variant)

	if x == fx && z == fz {
		if y == fy-1 {
			return block.Dirt, true
		}
		if y >= fy && y < fy-variant+6 {
			return block.OakLog, true
		}
	}

	dx := absInt(x - fx)
	dz := absInt(z - fz)

	if dx < 3 && dz < 3 && y > fy-variant+2 && y < fy-variant+5 {
		if y == fy-variant+4 && dx == 2 && dz == 2 {
			return 0, false
		}
		return block.OakLeaves, true
	}
	if dx < 2 && dz < 2 && y >= fy-variant+5 && y <= fy-variant+6 {
		if y == fy-variant+6 && dx == 1 && dz == 1 {
			return 0, false
		}
		return block.OakLeaves, true
	}

	return 0, false
}

func desertFeature(f Feature, x, y, z int, height int) (uint8, bool) {
	if x != f.X || z != f.Z {
		return 0, false
	}

	if f.Variant == 0 {
		if y == height+1 {
			return block.DeadBush, true
		}
		return 0, false
	}

	if y <= height {
		return 0, false
	}
	if height&1 == 1 {
		if y <= height+3 {
			return block.Cactus, true
		}
		return 0, false
	}
	if y <= height+2 {
		return block.Cactus, true
	}
	return 0, false
}

func mangroveFeature(f Feature, x, y, z int, height int) (uint8, bool) {
	if x == f.X && z == f.Z && y == 64 && height < 63 {
		return block.LilyPad, true
	}
	if y == height+1 {
		dx := absInt(x - f.X)
		dz := absInt(z - f.Z)
		if dx+dz < 4 {
			return block.MossCarpet, true
		}
	}
	return 0, false
}

func snowyPlainsFeature(f Feature, x, y, z int, height int) (uint8, bool) {
	if x == f.X && z == f.Z && y == height+1 && height >= 64 {
		return block.ShortGrass, true
	}
	return 0, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
