// Package world implements a seeded, deterministic Minecraft-compatible
// terrain generator: a biome map, a bilinear height field, a feature
// placer, a terrain synthesizer, a sparse block-change overlay, and a
// bounded-probe section cache, composed behind a single owning Generator.
package world

import (
	"log/slog"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/voxelkeep/worldgen/world/generator/anchor"
	"github.com/voxelkeep/worldgen/world/generator/feature"
	"github.com/voxelkeep/worldgen/world/generator/hash"
	"github.com/voxelkeep/worldgen/world/generator/terrain"
)

// Generator is the sole owner of the overlay and the section cache. It
// performs no I/O and reads no environment or configuration of its own;
// every input arrives through New or through its operations. Construct one
// per world.
type Generator struct {
	seed  uint32
	field *anchor.Field

	overlay *overlay
	cache   *sectionCache

	jitter *hash.FastRand

	scratch Section

	log         *slog.Logger
	fingerprint Fingerprint
}

// New constructs a Generator for seed with a section cache sized for
// cacheCapacity entries. It never touches disk, environment, or network.
func New(seed uint32, cacheCapacity int) *Generator {
	return newGenerator(Config{Seed: seed, CacheCapacity: cacheCapacity})
}

// NewFromConfig constructs a Generator from a fully assembled Config,
// typically loaded by the collaborator via LoadConfig before calling in.
func NewFromConfig(cfg Config) *Generator {
	return newGenerator(cfg)
}

func newGenerator(cfg Config) *Generator {
	cfg = cfg.withDefaults()

	jitterSeed := fnv1a.HashString32(cfg.WorldName) ^ cfg.Seed

	g := &Generator{
		seed:        cfg.Seed,
		field:       anchor.NewField(cfg.Seed, cfg.CacheCapacity),
		overlay:     newOverlay(),
		cache:       newSectionCache(cfg.CacheCapacity),
		jitter:      hash.NewFastRand(jitterSeed),
		log:         cfg.Log,
		fingerprint: newFingerprint(cfg.Seed, cfg.CacheCapacity),
	}
	g.log.Debug("generator constructed",
		"seed", cfg.Seed,
		"cache_capacity", cfg.CacheCapacity,
		"instance", g.fingerprint.String(),
	)
	return g
}

// Fingerprint returns the instance identity assigned at construction, for
// log correlation only; it never affects generation.
func (g *Generator) Fingerprint() Fingerprint { return g.fingerprint }

// Jitter draws the next value from the generator's cosmetic entropy path,
// an xorshift stream seeded from the world name and seed. It exists for
// cosmetic consumer features (ambient particle timing, client-side jitter);
// no terrain or feature formula ever reads from it.
func (g *Generator) Jitter() uint32 { return g.jitter.Next() }

// BlockAt returns the block id at world coordinate (x, y, z): an overlay
// override if one exists at that coordinate, otherwise the synthesized
// terrain value.
func (g *Generator) BlockAt(x, y, z int32) uint8 {
	if id, ok := g.overlay.lookup(x, y, z); ok {
		return id
	}

	anchorX := int16(hash.FloorDiv(int(x), anchor.ChunkSize))
	anchorZ := int16(hash.FloorDiv(int(z), anchor.ChunkSize))
	origin := anchor.At(anchorX, anchorZ, g.seed)

	rx := hash.PosMod(int(x), anchor.ChunkSize)
	rz := hash.PosMod(int(z), anchor.ChunkSize)
	height := g.field.HeightAt(rx, rz, origin.X, origin.Z, origin.Hash, origin.Biome)

	f := feature.At(origin, g.field)
	return terrain.At(int(x), int(y), int(z), origin, f, height)
}

// BuildSection returns the biome id and the fully synthesized, overlay-
// applied 4096-byte section at section origin (cx, cy, cz). The returned
// *Section aliases the Generator's scratch storage, which the next
// BuildSection call overwrites; callers needing to retain it across such a
// call must copy it first via Section.CopyFrom.
func (g *Generator) BuildSection(cx, cy, cz int32) (biome uint8, section *Section) {
	scratch := &g.scratch

	if b, ok := g.cache.find(cx, cy, cz, scratch); ok {
		if g.overlay.len() > 0 {
			g.overlay.bulkApplyWithin(cx, cy, cz, scratch)
		}
		return b, scratch
	}

	b := g.buildSection(cx, cy, cz, scratch)
	g.cache.insert(cx, cy, cz, uint8(b), scratch)

	if g.overlay.len() > 0 {
		g.overlay.bulkApplyWithin(cx, cy, cz, scratch)
	}
	return uint8(b), scratch
}

// PutBlock overrides the block at (x, y, z) and invalidates the enclosing
// section's cached copy. BuildSection layers the overlay over cached and
// freshly built terrain alike, so the next section read shows the change.
// blockID of 0xFF removes any existing override instead of installing one.
func (g *Generator) PutBlock(x, y, z int32, blockID uint8) error {
	if err := g.overlay.put(x, y, z, blockID); err != nil {
		return err
	}
	g.cache.invalidate(x, y, z)
	return nil
}

// ClearOverlay discards every block override.
func (g *Generator) ClearOverlay() { g.overlay.clear() }

// ClearCache invalidates every cached section, forcing the next
// BuildSection call for any coordinate to resynthesize from scratch.
func (g *Generator) ClearCache() { g.cache.clear() }
