package terrain_test

import (
	"testing"

	"github.com/voxelkeep/worldgen/world/generator/anchor"
	"github.com/voxelkeep/worldgen/world/generator/biome"
	"github.com/voxelkeep/worldgen/world/generator/block"
	"github.com/voxelkeep/worldgen/world/generator/feature"
	"github.com/voxelkeep/worldgen/world/generator/terrain"
)

func TestBelowZeroIsAlwaysBedrock(t *testing.T) {
	a := anchor.At(3, 3, 123)
	f := feature.Feature{Y: feature.None}
	for _, y := range []int{-1, -64, -1000} {
		if got := terrain.At(0, y, 0, a, f, 70); got != block.Bedrock {
			t.Errorf("At(y=%d) = %d, want Bedrock", y, got)
		}
	}
}

func TestAboveCapIsAlwaysAir(t *testing.T) {
	a := anchor.At(3, 3, 123)
	f := feature.Feature{Y: feature.None}
	for _, y := range []int{terrain.Cap + 1, terrain.Cap + 100} {
		if got := terrain.At(0, y, 0, a, f, 70); got != block.Air {
			t.Errorf("At(y=%d) = %d, want Air", y, got)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := anchor.At(10, -5, 0xA103DE6C)
	fld := anchor.NewField(0xA103DE6C, 0)
	height := fld.HeightAt(0, 0, a.X, a.Z, a.Hash, a.Biome)
	feat := feature.At(a, fld)

	for y := -1; y < 90; y++ {
		got1 := terrain.At(160, y, -80, a, feat, height)
		got2 := terrain.At(160, y, -80, a, feat, height)
		if got1 != got2 {
			t.Fatalf("terrain.At(y=%d) not deterministic: %d vs %d", y, got1, got2)
		}
	}
}

func TestOceanFillsBelowSeaLevelWhenNoLand(t *testing.T) {
	a := anchor.Anchor{Biome: biome.Plains}
	f := feature.Feature{Y: feature.None}
	height := 40 // well below sea level

	got := terrain.At(0, 50, 0, a, f, height)
	if got != block.Water {
		t.Fatalf("At(y=50, height=40) = %d, want Water", got)
	}
}

func TestSubsurfaceFallsBackToStoneOutsideCaveAndOre(t *testing.T) {
	a := anchor.Anchor{Biome: biome.Plains, Hash: 0}
	f := feature.Feature{Y: feature.None}
	height := 70

	// Far below the surface and (for this synthetic anchor.Hash=0) not an
	// ore coordinate; must resolve to stone rather than leaking air.
	got := terrain.At(0, 10, 0, a, f, height)
	if got != block.Stone {
		t.Fatalf("subsurface resolved to %d at a deep, non-cave, non-ore column, want Stone", got)
	}
}
