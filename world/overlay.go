package world

import (
	"sort"

	"github.com/voxelkeep/worldgen/world/generator/block"
)

// MaxBlockChanges bounds the sparse block-change overlay. Once full,
// PutBlock rejects further new coordinates with ErrOverlayFull (existing
// coordinates may still be updated or deleted).
const MaxBlockChanges = 65536

// overlayEntry is one non-tombstone override. The overlay only ever holds
// entries with a non-0xFF Block; tombstoning an entry removes it from the
// slice entirely rather than leaving a marker behind.
type overlayEntry struct {
	X, Z  int16
	Y     uint8
	Block uint8
}

// overlay is the sorted, mutable set of per-coordinate block overrides
// layered atop generated terrain. Entries are kept strictly sorted by
// (X, Z, Y) with no duplicates and no tombstones, enabling O(log n) lookup
// via binary search. It is not internally synchronized: the generator is
// single-threaded, and callers must not mutate it concurrently with a
// lookup.
type overlay struct {
	entries []overlayEntry
}

func newOverlay() *overlay {
	return &overlay{}
}

// lessCoord reports whether (x1,z1,y1) sorts before (x2,z2,y2) under the
// overlay's (X ASC, Z ASC, Y ASC) order.
func lessCoord(x1 int16, z1 int16, y1 uint8, x2 int16, z2 int16, y2 uint8) bool {
	if x1 != x2 {
		return x1 < x2
	}
	if z1 != z2 {
		return z1 < z2
	}
	return y1 < y2
}

// search returns the index of the entry at (x,y,z) and true if present, or
// the insertion position that preserves sort order and false otherwise.
func (o *overlay) search(x int16, y uint8, z int16) (int, bool) {
	i := sort.Search(len(o.entries), func(i int) bool {
		e := o.entries[i]
		return !lessCoord(e.X, e.Z, e.Y, x, z, y)
	})
	if i < len(o.entries) {
		e := o.entries[i]
		if e.X == x && e.Z == z && e.Y == y {
			return i, true
		}
	}
	return i, false
}

// lookup performs an O(log n) binary search for an override at (x,y,z).
func (o *overlay) lookup(x int32, y int32, z int32) (uint8, bool) {
	idx, ok := o.search(int16(x), uint8(y), int16(z))
	if !ok {
		return 0, false
	}
	return o.entries[idx].Block, true
}

// put inserts, updates, or (when blockID is the 0xFF tombstone) deletes the
// override at (x,y,z). Insertion shifts the tail of the slice to maintain
// sort order, which is O(n) in the worst case; lookup and update remain
// O(log n). Returns ErrOverlayFull if a brand new coordinate would exceed
// MaxBlockChanges.
func (o *overlay) put(x int32, y int32, z int32, blockID uint8) error {
	cx, cy, cz := int16(x), uint8(y), int16(z)
	idx, exists := o.search(cx, cy, cz)

	if exists {
		if blockID == 0xFF {
			o.entries = append(o.entries[:idx], o.entries[idx+1:]...)
			return nil
		}
		o.entries[idx].Block = blockID
		return nil
	}

	if blockID == 0xFF {
		// Deleting a coordinate that has no override is a no-op.
		return nil
	}

	if len(o.entries) >= MaxBlockChanges {
		return ErrOverlayFull
	}

	o.entries = append(o.entries, overlayEntry{})
	copy(o.entries[idx+1:], o.entries[idx:])
	o.entries[idx] = overlayEntry{X: cx, Z: cz, Y: cy, Block: blockID}
	return nil
}

// remove deletes the override at (x,y,z), equivalent to put(..., 0xFF).
func (o *overlay) remove(x, y, z int32) {
	_ = o.put(x, y, z, 0xFF)
}

// clear discards every override.
func (o *overlay) clear() {
	o.entries = o.entries[:0]
}

// len reports the number of live overrides.
func (o *overlay) len() int { return len(o.entries) }

// bulkApplyWithin scans the overlay for every entry inside the 16-cube
// section at origin (cx, cy, cz) and writes it into section at the
// interleaved storage index. Entries whose block is the tombstone, a torch,
// or a chest are skipped: those types are transmitted to the client over a
// separate block-update channel and must never be baked into a bulk
// section.
func (o *overlay) bulkApplyWithin(cx, cy, cz int32, s *Section) {
	if len(o.entries) == 0 {
		return
	}

	lo := sort.Search(len(o.entries), func(i int) bool {
		return int32(o.entries[i].X) >= cx
	})
	for i := lo; i < len(o.entries) && int32(o.entries[i].X) < cx+16; i++ {
		e := o.entries[i]
		ex, ez, ey := int32(e.X), int32(e.Z), int32(e.Y)
		if ez < cz || ez >= cz+16 || ey < cy || ey >= cy+16 {
			continue
		}
		if block.BakeExcluded(e.Block) {
			continue
		}
		dx := ex - cx
		dy := ey - cy
		dz := ez - cz
		s.Set(uint8(dx), uint8(dy), uint8(dz), e.Block)
	}
}
