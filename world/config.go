package world

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds the tunable parameters a Generator is constructed from.
// The zero value is usable; sensible defaults are applied by withDefaults.
type Config struct {
	// Seed is the 32-bit world seed every deterministic formula is rooted
	// in. Two generators built with the same Seed produce byte-identical
	// output for every coordinate.
	Seed uint32
	// CacheCapacity is the number of section-cache slots to allocate.
	CacheCapacity int
	// WorldName is an optional operator-supplied label. It never feeds
	// into generation; it only seeds the cosmetic jitter path
	// exposed to cosmetic consumers (see Generator.Jitter).
	WorldName string
	// InterpolateMobMovement is carried through unchanged from the
	// protocol layer's configuration; the generator has no mob-movement
	// logic of its own and never reads this field.
	InterpolateMobMovement bool
	// Log receives structured diagnostics. Defaults to slog.Default().
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = 4096
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// configFile is the on-disk TOML shape for Config, excluding the logger and
// any other non-serializable field.
type configFile struct {
	Seed                   uint32 `toml:"seed"`
	CacheCapacity          int    `toml:"cache_capacity"`
	WorldName              string `toml:"world_name"`
	InterpolateMobMovement bool   `toml:"interpolate_mob_movement"`
}

// LoadConfig reads a Config from a TOML file at path. A missing file is not
// an error: it returns the zero Config, which withDefaults fills in.
func LoadConfig(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read generator config: %w", err)
	}

	data := configFile{}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &data); err != nil {
			return Config{}, fmt.Errorf("decode generator config: %w", err)
		}
	}

	return Config{
		Seed:                   data.Seed,
		CacheCapacity:          data.CacheCapacity,
		WorldName:              data.WorldName,
		InterpolateMobMovement: data.InterpolateMobMovement,
	}, nil
}

// Save writes c to path as TOML, overwriting any existing file.
func (c Config) Save(path string) error {
	data := configFile{
		Seed:                   c.Seed,
		CacheCapacity:          c.CacheCapacity,
		WorldName:              c.WorldName,
		InterpolateMobMovement: c.InterpolateMobMovement,
	}
	encoded, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode generator config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write generator config: %w", err)
	}
	return nil
}
