package deck

import (
	"testing"

	"crazyrules/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, 52, len(d))
	assert.Equal(t, NewCard(Clubs, Ace), d[0])
	assert.Equal(t, NewCard(Spades, King), d[51])
	assert.Equal(t, FullSet, d.Set())
}

func TestShuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	unshuffled := HashCode(d)

	Shuffle(d, rng.NewXorshift(rng.Seed{1}))
	a.Equal(FullSet, d.Set())
	a.NotEqual(unshuffled, HashCode(d))

	d2 := New()
	Shuffle(d2, rng.NewXorshift(rng.Seed{1}))
	a.Equal(HashCode(d), HashCode(d2), "same seed, same order")

	d3 := New()
	Shuffle(d3, rng.NewXorshift(rng.Seed{2}))
	a.NotEqual(HashCode(d), HashCode(d3))
}
