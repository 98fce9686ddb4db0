package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}

	return cards
}

func TestHand_Remove(t *testing.T) {
	a := assert.New(t)

	h := hand("2c,3c,4d")
	orig := h
	card, ok := h.Remove(1)
	a.True(ok)
	a.Equal(MustParseCard("3c"), card)
	a.Equal("2c,4d", h.String())
	a.Equal("2c,3c,4d", orig.String(), "the removal must not write through to other slices")

	_, ok = h.Remove(5)
	a.False(ok)
	_, ok = h.Remove(-1)
	a.False(ok)
}

func TestHand_PushDrain(t *testing.T) {
	a := assert.New(t)

	h := make(Hand, 0)
	h.Push(MustParseCard("As"))
	h.Push(MustParseCard("3c"))
	a.Equal("As,3c", h.String())

	last, ok := h.LastCard()
	a.True(ok)
	a.Equal(MustParseCard("3c"), last)

	cards := h.Drain()
	a.Equal("As,3c", CardsToString(cards))
	a.Empty(h)

	_, ok = h.LastCard()
	a.False(ok)
}

func TestHand_SuitCounts(t *testing.T) {
	h := hand("2c,3c,4d,Ks,Qs,Js")
	assert.Equal(t, [NumSuits]int{2, 1, 0, 3}, h.SuitCounts())
	assert.Equal(t, SetOf(h...), h.Set())
}

func TestHand_Clone(t *testing.T) {
	h := hand("2c,3c")
	c := h.Clone()
	c[0] = MustParseCard("Ah")
	assert.Equal(t, "2c,3c", h.String())
}
