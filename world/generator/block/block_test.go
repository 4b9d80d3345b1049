package block_test

import (
	"testing"

	"github.com/voxelkeep/worldgen/world/generator/block"
)

func TestBakeExcluded(t *testing.T) {
	cases := map[uint8]bool{
		block.Tombstone: true,
		block.Torch:     true,
		block.Chest:     true,
		block.Stone:     false,
		block.Air:       false,
		block.GrassBlock: false,
	}
	for id, want := range cases {
		if got := block.BakeExcluded(id); got != want {
			t.Errorf("BakeExcluded(%d) = %v, want %v", id, got, want)
		}
	}
}
