package biome

func init() { register(beach{}) }

// beach always sits at or below sea level: it starts two below sea level
// and subtracts a three-field sum, guaranteeing the ring never floods its
// neighbor island.
type beach struct{}

func (beach) ID() ID { return Beach }

func (beach) CornerHeight(h uint32) int {
	height := SeaLevel - 2
	height -= int(h&3) + int((h>>4)&3) + int((h>>8)&3)
	return height
}
