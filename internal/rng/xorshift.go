package rng

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned when a seed string is not 16 hex encoded bytes
var ErrInvalidSeed = errors.New("seed must be 32 hex characters")

// Seed is the 16 byte seed of a Xorshift generator
type Seed [16]byte

// ParseSeed decodes a hex encoded seed
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	b, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	if len(b) != len(seed) {
		return seed, fmt.Errorf("%w: got %d bytes", ErrInvalidSeed, len(b))
	}

	copy(seed[:], b)
	return seed, nil
}

func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// Xorshift is Marsaglia's xorshift128 generator with four 32-bit words of state.
// The sequence only depends on the seed, so games can be replayed.
type Xorshift struct {
	x, y, z, w uint32
}

// NewXorshift returns a generator seeded with the little-endian words of seed
func NewXorshift(seed Seed) *Xorshift {
	x := &Xorshift{
		x: binary.LittleEndian.Uint32(seed[0:4]),
		y: binary.LittleEndian.Uint32(seed[4:8]),
		z: binary.LittleEndian.Uint32(seed[8:12]),
		w: binary.LittleEndian.Uint32(seed[12:16]),
	}

	// the all zero state never leaves zero
	if x.x|x.y|x.z|x.w == 0 {
		x.x, x.y, x.z, x.w = 123456789, 362436069, 521288629, 88675123
	}

	return x
}

// Next advances the state and returns the next 32 bits
func (x *Xorshift) Next() uint32 {
	t := x.x ^ (x.x << 11)
	x.x, x.y, x.z = x.y, x.z, x.w
	x.w = x.w ^ (x.w >> 19) ^ t ^ (t >> 8)

	return x.w
}

// Intn returns a number in [0, n). n <= 0 returns 0 without advancing.
func (x *Xorshift) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return int(x.Next() % uint32(n))
}

// State returns the four state words
func (x *Xorshift) State() [4]uint32 {
	return [4]uint32{x.x, x.y, x.z, x.w}
}
