package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint accumulates fixed-width little-endian values into an xxHash64 digest.
//
// Floats are hashed by their IEEE-754 bit pattern, so 0.0 and -0.0 differ and
// the fingerprint changes with any bit of any input value.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// New returns an empty fingerprint.
func New() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

// Uint32 adds v to the digest.
func (f *Fingerprint) Uint32(v uint32) *Fingerprint {
	binary.LittleEndian.PutUint32(f.buf[:4], v)
	_, _ = f.d.Write(f.buf[:4])

	return f
}

// Float64 adds v to the digest.
func (f *Fingerprint) Float64(v float64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], math.Float64bits(v))
	_, _ = f.d.Write(f.buf[:])

	return f
}

// Sum64 returns the current digest value.
func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}
