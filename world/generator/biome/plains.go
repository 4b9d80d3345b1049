package biome

func init() { register(plains{}) }

// plains produces gentle rolling hills: base height plus four stacked 2-bit
// fields, stabilizing the distribution while allowing occasional larger
// variance.
type plains struct{}

func (plains) ID() ID { return Plains }

func (plains) CornerHeight(h uint32) int {
	height := TerrainBaseHeight
	height += int(h&3) + int((h>>4)&3) + int((h>>8)&3) + int((h>>12)&3)
	return height
}
