package biome

func init() { register(mangroveSwamp{}) }

// mangroveSwamp produces a mostly-flat wetland peppered with ponds: unlike
// the other biomes' 2-bit (0..3) fields, its four components are mod-3
// (0..2), and when their sum dips below sea level an extra 0..3 is
// subtracted to dig the pond out further rather than leaving a shallow dip.
type mangroveSwamp struct{}

func (mangroveSwamp) ID() ID { return MangroveSwamp }

func (mangroveSwamp) CornerHeight(h uint32) int {
	height := TerrainBaseHeight
	height += int(h%3) + int((h>>4)%3) + int((h>>8)%3) + int((h>>12)%3)
	if height < SeaLevel {
		height -= int((h >> 24) & 3)
	}
	return height
}
