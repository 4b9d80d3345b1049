package world_test

import (
	"testing"

	"github.com/voxelkeep/worldgen/world"
)

func TestBlockAtDeterministic(t *testing.T) {
	g := world.New(0xA103DE6C, 64)
	for _, c := range [][3]int32{{0, 64, 0}, {-16, 70, 16}, {128, 0, 128}} {
		a := g.BlockAt(c[0], c[1], c[2])
		b := g.BlockAt(c[0], c[1], c[2])
		if a != b {
			t.Fatalf("BlockAt%v not deterministic: %d vs %d", c, a, b)
		}
	}
}

func TestBuildSectionDeterministic(t *testing.T) {
	g := world.New(0xA103DE6C, 64)
	_, s1 := g.BuildSection(0, 64, 0)
	var copy1 world.Section
	copy1.CopyFrom(s1)

	_, s2 := g.BuildSection(0, 64, 0)
	if copy1.Fletcher32() != s2.Fletcher32() {
		t.Fatal("two BuildSection calls for the same origin produced different checksums")
	}
}

func TestDifferentSectionsDiffer(t *testing.T) {
	g := world.New(0xA103DE6C, 64)
	_, a := g.BuildSection(0, 64, 0)
	checksumA := a.Fletcher32()

	_, b := g.BuildSection(16, 64, 0)
	if checksumA == b.Fletcher32() {
		t.Fatal("sections at different origins produced the same checksum")
	}
}

func TestOverlayShadowsBlockAt(t *testing.T) {
	g := world.New(1, 64)
	const diamondBlock = 28

	before := g.BlockAt(0, 70, 0)
	if err := g.PutBlock(0, 70, 0, diamondBlock); err != nil {
		t.Fatalf("PutBlock: %v", err)
	}
	if got := g.BlockAt(0, 70, 0); got != diamondBlock {
		t.Fatalf("BlockAt after PutBlock = %d, want %d", got, diamondBlock)
	}

	g.ClearOverlay()
	if got := g.BlockAt(0, 70, 0); got != before {
		t.Fatalf("BlockAt after ClearOverlay = %d, want original %d", got, before)
	}
}

func TestPutBlockIsReflectedInNextBuildSection(t *testing.T) {
	g := world.New(1, 64)
	const diamondBlock = 28

	if err := g.PutBlock(8, 8, 8, diamondBlock); err != nil {
		t.Fatalf("PutBlock: %v", err)
	}

	_, s := g.BuildSection(0, 0, 0)
	if got := s.At(8, 8, 8); got != diamondBlock {
		t.Fatalf("section byte at (8,8,8) = %d, want %d", got, diamondBlock)
	}
}

func TestCacheHitMatchesFreshBuildAfterClear(t *testing.T) {
	g := world.New(5, 64)

	_, warm := g.BuildSection(0, 64, 0)
	var warmCopy world.Section
	warmCopy.CopyFrom(warm)

	g.ClearCache()
	_, cold := g.BuildSection(0, 64, 0)

	if warmCopy.Fletcher32() != cold.Fletcher32() {
		t.Fatal("clearing the cache and rebuilding produced a different section")
	}
}

func TestClearCacheForcesRebuildButSameResult(t *testing.T) {
	g := world.New(9, 64)
	_, first := g.BuildSection(32, 48, 32)
	cs1 := first.Fletcher32()

	g.ClearCache()
	_, second := g.BuildSection(32, 48, 32)
	cs2 := second.Fletcher32()

	if cs1 != cs2 {
		t.Fatalf("checksum changed after ClearCache: %x vs %x", cs1, cs2)
	}
}

func TestFingerprintStableAcrossCalls(t *testing.T) {
	g := world.New(42, 64)
	a := g.Fingerprint()
	b := g.Fingerprint()
	if a.StateDigest != b.StateDigest || a.InstanceID != b.InstanceID {
		t.Fatal("Fingerprint changed between calls on the same Generator")
	}
}
