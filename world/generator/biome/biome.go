// Package biome implements the island-ring biome map and the small family
// of biome types the height field consults for corner heights. Each biome
// is its own type implementing Biome, one file per biome.
package biome

import "github.com/voxelkeep/worldgen/world/generator/hash"

// ID is the fixed 3-bit biome enum exposed to consumers.
type ID uint8

const (
	Plains ID = iota
	Desert
	MangroveSwamp
	SnowyPlains
	Beach
	SnowyPlainsCold
)

const (
	// Size is the side length, in chunks, of one biome island cell.
	Size = 16
	// Radius is the island radius, in chunks, within a biome cell.
	Radius = 8
	// TerrainBaseHeight is the neutral terrain elevation every biome's
	// corner-height formula is offset from.
	TerrainBaseHeight = 64
	// SeaLevel is the Y coordinate at and below which terrain floods.
	SeaLevel = 64
	// IceLine is the Y coordinate at which snowy biomes freeze water.
	IceLine = 63
)

// Biome captures the per-biome rules the height field needs: its id and its
// corner-height formula. Surface and feature choices per biome live in the
// terrain and feature packages.
type Biome interface {
	ID() ID
	// CornerHeight derives an absolute terrain height from a chunk anchor
	// hash.
	CornerHeight(anchorHash uint32) int
}

// registry maps each ID to its Biome implementation. Populated by each
// biome file's init.
var registry = map[ID]Biome{}

func register(b Biome) { registry[b.ID()] = b }

// For returns the Biome implementation for id, defaulting to Plains if id is
// unrecognized (the registry always covers every defined ID, so this only
// guards against an invalid value reaching here from elsewhere).
func For(id ID) Biome {
	if b, ok := registry[id]; ok {
		return b
	}
	return registry[Plains]
}

// At determines the biome for chunk column (cx, cz) given the world seed,
// arranging biomes as concentric circular islands separated by beach rings.
// This is a pure function of (cx, cz, seed); it performs no hashing beyond
// reading bits directly out of the seed, by design: the 32-bit seed is
// treated as a repeating 4x4 matrix of 2-bit biome ids, which avoids
// layering another hash on top of the chunk hash already computed for the
// anchor.
func At(cx, cz int16, seed uint32) ID {
	x := int(cx) + Radius
	z := int(cz) + Radius

	dx := Radius - hash.PosMod(x, Size)
	dz := Radius - hash.PosMod(z, Size)
	if dx*dx+dz*dz > Radius*Radius {
		return Beach
	}

	biomeX := hash.FloorDiv(x, Size)
	biomeZ := hash.FloorDiv(z, Size)
	index := absInt((biomeX & 3) + ((biomeZ * 4) & 15))
	primary := (seed >> uint(index*2)) & 3

	switch primary {
	case 0:
		return Plains
	case 1:
		return Desert
	case 2:
		return MangroveSwamp
	default:
		return SnowyPlains
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
