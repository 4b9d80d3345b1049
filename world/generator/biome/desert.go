package biome

func init() { register(desert{}) }

// desert produces dunes that never dip below sea level: base plus a
// constant offset plus two stacked 2-bit fields.
type desert struct{}

func (desert) ID() ID { return Desert }

func (desert) CornerHeight(h uint32) int {
	height := TerrainBaseHeight + 4
	height += int(h&3) + int((h>>4)&3)
	return height
}
