package world

// MaxProbeDistance bounds every cache lookup, insert, and invalidation to a
// fixed-cost linear scan from the hash home slot. Because insert never
// places a section outside this window, find can never miss a section that
// is actually resident.
const MaxProbeDistance = 32

// cacheSlot holds one section's pre-overlay terrain. The cache stores
// terrain as synthesized, before overlay deltas are applied, so a slot never
// needs to be invalidated just because the overlay changed; bulkApplyWithin
// re-layers the overlay onto every hit.
type cacheSlot struct {
	cx, cy, cz int32
	biome      uint8
	valid      bool
	lru        uint16
	data       [SectionBytes]byte
}

// sectionCache is the fixed-size, hash-indexed table of recently built
// sections described in the generator's cache contract. It never grows past
// its configured capacity and never allocates after construction.
type sectionCache struct {
	slots    []cacheSlot
	lruClock uint16
}

func newSectionCache(capacity int) *sectionCache {
	if capacity <= 0 {
		capacity = 4096
	}
	return &sectionCache{slots: make([]cacheSlot, capacity)}
}

// home computes the hash home slot for a section origin.
func (c *sectionCache) home(cx, cy, cz int32) int {
	h := uint32(cx)*73856093 ^ uint32(cy)*19349663 ^ uint32(cz)*83492791
	return int(h % uint32(len(c.slots)))
}

// age returns how long ago lru was last touched, wraparound-safe via
// unsigned subtraction.
func (c *sectionCache) age(lru uint16) uint16 {
	return c.lruClock - lru
}

// find probes up to MaxProbeDistance slots from the section's home slot for
// an exact (cx,cy,cz) match. On hit, it bumps the clock and the slot's own
// lru stamp and copies the cached bytes into dst.
func (c *sectionCache) find(cx, cy, cz int32, dst *Section) (biome uint8, ok bool) {
	n := len(c.slots)
	home := c.home(cx, cy, cz)
	for i := 0; i < MaxProbeDistance && i < n; i++ {
		idx := (home + i) % n
		s := &c.slots[idx]
		if !s.valid {
			continue
		}
		if s.cx == cx && s.cy == cy && s.cz == cz {
			c.lruClock++
			s.lru = c.lruClock
			dst.data = s.data
			return s.biome, true
		}
	}
	return 0, false
}

// insert stores a freshly built section, reusing an invalid slot in the
// probe window if one exists, otherwise evicting the slot with the oldest
// lru stamp in that same window.
func (c *sectionCache) insert(cx, cy, cz int32, biome uint8, src *Section) {
	n := len(c.slots)
	if n == 0 {
		return
	}
	home := c.home(cx, cy, cz)
	limit := MaxProbeDistance
	if limit > n {
		limit = n
	}

	target := -1
	var oldestAge uint16
	for i := 0; i < limit; i++ {
		idx := (home + i) % n
		s := &c.slots[idx]
		if !s.valid {
			target = idx
			break
		}
		a := c.age(s.lru)
		if target == -1 || a > oldestAge {
			target = idx
			oldestAge = a
		}
	}

	c.lruClock++
	s := &c.slots[target]
	s.cx, s.cy, s.cz = cx, cy, cz
	s.biome = biome
	s.valid = true
	s.lru = c.lruClock
	s.data = src.data
}

// invalidate clears the cached copy of the section containing (x,y,z), if
// any is resident within the probe window of its home slot.
func (c *sectionCache) invalidate(x, y, z int32) {
	n := len(c.slots)
	if n == 0 {
		return
	}
	cx := floorDiv16(x)
	cy := floorDiv16(y)
	cz := floorDiv16(z)

	home := c.home(cx, cy, cz)
	limit := MaxProbeDistance
	if limit > n {
		limit = n
	}
	for i := 0; i < limit; i++ {
		idx := (home + i) % n
		s := &c.slots[idx]
		if s.valid && s.cx == cx && s.cy == cy && s.cz == cz {
			s.valid = false
			return
		}
	}
}

// clear invalidates every slot without releasing the backing array.
func (c *sectionCache) clear() {
	for i := range c.slots {
		c.slots[i].valid = false
	}
}

// floorDiv16 floors x/16 toward negative infinity, then scales back up to a
// section origin, matching the sign-correct flooring the invalidation
// contract requires for negative coordinates.
func floorDiv16(v int32) int32 {
	q := v / 16
	if v%16 != 0 && v < 0 {
		q--
	}
	return q * 16
}
