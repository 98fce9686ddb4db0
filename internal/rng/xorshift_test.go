package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXorshift_Next(t *testing.T) {
	a := assert.New(t)

	seed, err := ParseSeed("15cd5b07e5559a15b53b121f33134905")
	a.NoError(err)

	x := NewXorshift(seed)
	a.Equal(uint32(3701687786), x.Next())
	a.Equal(uint32(458299110), x.Next())
	a.Equal(uint32(2500872618), x.Next())
}

func TestXorshift_ZeroSeed(t *testing.T) {
	x := NewXorshift(Seed{})
	assert.Equal(t, [4]uint32{123456789, 362436069, 521288629, 88675123}, x.State())
	assert.Equal(t, uint32(3701687786), x.Next())
}

func TestXorshift_Intn(t *testing.T) {
	a := assert.New(t)

	x := NewXorshift(Crypto{}.Seed())
	for i := 0; i < 1000; i++ {
		n := x.Intn(5)
		a.True(n >= 0 && n < 5)
	}

	before := x.State()
	a.Equal(0, x.Intn(0))
	a.Equal(before, x.State())
}

func TestXorshift_Deterministic(t *testing.T) {
	seed := Seed{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	x1 := NewXorshift(seed)
	x2 := NewXorshift(seed)
	for i := 0; i < 100; i++ {
		assert.Equal(t, x1.Next(), x2.Next())
	}
}

func TestParseSeed(t *testing.T) {
	a := assert.New(t)

	seed, err := ParseSeed("000102030405060708090a0b0c0d0e0f")
	a.NoError(err)
	a.Equal("000102030405060708090a0b0c0d0e0f", seed.String())

	_, err = ParseSeed("abcd")
	a.ErrorIs(err, ErrInvalidSeed)

	_, err = ParseSeed("zz")
	a.ErrorIs(err, ErrInvalidSeed)
}
