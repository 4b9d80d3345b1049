package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Fingerprint identifies one Generator instance for log correlation across
// a process's lifetime. InstanceID is a fresh random UUID per Generator;
// StateDigest is derived from the generator's seed and cache capacity. It is
// never consulted by generation logic itself: generators with the same seed
// produce identical worlds whatever their fingerprints.
type Fingerprint struct {
	InstanceID  uuid.UUID
	StateDigest uint64
}

// newFingerprint assigns a fresh instance identity and digests the
// generator's construction parameters.
func newFingerprint(seed uint32, cacheCapacity int) Fingerprint {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], seed)
	binary.LittleEndian.PutUint64(buf[4:12], uint64(cacheCapacity))

	return Fingerprint{
		InstanceID:  uuid.New(),
		StateDigest: xxhash.Sum64(buf[:]),
	}
}

// String renders the fingerprint for structured log fields.
func (f Fingerprint) String() string {
	return f.InstanceID.String()
}
