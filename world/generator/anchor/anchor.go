// Package anchor computes the (hash, biome) pair at every chunk column
// corner and the bilinear height field interpolated over the four corners
// of the enclosing minichunk lattice.
package anchor

import (
	"github.com/brentp/intintmap"

	"github.com/voxelkeep/worldgen/world/generator/biome"
	"github.com/voxelkeep/worldgen/world/generator/hash"
)

// ChunkSize is the lattice unit over which corner heights are interpolated.
// In this build it equals one full chunk column.
const ChunkSize = 16

// Anchor is the (hash, biome) pair at a column corner, the sole input the
// height field and feature placer interpolate from.
type Anchor struct {
	X, Z  int16
	Hash  uint32
	Biome biome.ID
}

// At computes the anchor for chunk column (cx, cz) under seed.
func At(cx, cz int16, seed uint32) Anchor {
	return Anchor{
		X:     cx,
		Z:     cz,
		Hash:  hash.ChunkHash(cx, cz, seed),
		Biome: biome.At(cx, cz, seed),
	}
}

// Field computes terrain heights over a world seed, memoizing the
// per-corner (hash, height) pair so that building many chunks that share a
// lattice corner does not repeatedly re-derive it. The memoization never
// changes an observable result: CornerHeight is a pure function of
// (anchorHash, biome), so caching it is purely a performance optimization
// over an already-deterministic function.
type Field struct {
	seed uint32
	memo *intintmap.Map
}

// NewField returns a Field for the given seed with its corner-height memo
// pre-sized for size entries.
func NewField(seed uint32, size int) *Field {
	if size <= 0 {
		size = 1024
	}
	return &Field{
		seed: seed,
		memo: intintmap.New(size, 0.6),
	}
}

// cornerKey packs a corner's chunk coordinate into the int64 key the memo
// table is keyed on.
func cornerKey(cx, cz int16) int64 {
	return int64(uint64(uint16(cx))<<16 | uint64(uint16(cz)))
}

// cornerValue packs a (hash, height) pair into the int64 value stored in the
// memo table.
func cornerValue(h uint32, height int) int64 {
	return int64(uint64(h)<<8 | uint64(uint8(height)))
}

func unpackCornerValue(v int64) (h uint32, height int) {
	u := uint64(v)
	return uint32(u >> 8), int(uint8(u))
}

// CornerHeight returns the corner's (hash, absolute terrain height) pair,
// computing and memoizing it on first access.
func (f *Field) CornerHeight(cx, cz int16) (uint32, int) {
	key := cornerKey(cx, cz)
	if v, ok := f.memo.Get(key); ok {
		return unpackCornerValue(v)
	}
	a := At(cx, cz, f.seed)
	b := biome.For(a.Biome)
	height := b.CornerHeight(a.Hash)
	f.memo.Put(key, cornerValue(a.Hash, height))
	return a.Hash, height
}

// interpolate performs the bilinear interpolation over the four corner
// heights a (top-left), b (top-right), c (bottom-left), d (bottom-right)
// at in-chunk offset (rx, rz), both in [0, ChunkSize).
func interpolate(a, b, c, d, rx, rz int) int {
	top := a*(ChunkSize-rx) + b*rx
	bottom := c*(ChunkSize-rx) + d*rx
	return (top*(ChunkSize-rz) + bottom*rz) / (ChunkSize * ChunkSize)
}

// HeightAt returns the terrain height at in-chunk coordinate (rx, rz)
// within the chunk column anchored at (anchorX, anchorZ), given that
// column's own (hash, biome). Neighbor corners are re-derived from the
// world seed via the memo so callers never need to assemble the 2x2 anchor
// grid themselves.
func (f *Field) HeightAt(rx, rz int, anchorX, anchorZ int16, anchorHash uint32, b biome.ID) int {
	if rx == 0 && rz == 0 {
		height := biome.For(b).CornerHeight(anchorHash)
		if height > 67 {
			return height - 1
		}
	}

	topLeft := biome.For(b).CornerHeight(anchorHash)
	_, topRight := f.CornerHeight(anchorX+1, anchorZ)
	_, bottomLeft := f.CornerHeight(anchorX, anchorZ+1)
	_, bottomRight := f.CornerHeight(anchorX+1, anchorZ+1)

	return interpolate(topLeft, topRight, bottomLeft, bottomRight, rx, rz)
}
