package rules

import (
	"testing"

	"crazyrules/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func card(s string) deck.Card {
	return deck.MustParseCard(s)
}

func TestDefaultGraph(t *testing.T) {
	a := assert.New(t)

	g := DefaultGraph(nil)
	edges := g.Edges(card("5h"))
	a.Equal(16, edges.Len())
	a.True(edges.Contains(card("Kh")))
	a.True(edges.Contains(card("5s")))
	a.False(edges.Contains(card("6s")))

	a.Equal(deck.EmptySet, g.Edges(deck.Card(52)))
}

func TestPlayabilityGraph_SetEdges(t *testing.T) {
	a := assert.New(t)

	g := DefaultGraph(nil)
	sets := []deck.CardSet{deck.EmptySet, deck.FullSet, deck.SetOf(3, 9, 51), deck.SuitMask(deck.Spades)}
	for c := deck.Card(0); c < deck.NumCards; c++ {
		for _, s := range sets {
			g.SetEdges(c, s)
			a.Equal(s, g.Edges(c))
		}
	}
}

func TestPlayabilityGraph_SetEdges_invalid(t *testing.T) {
	var msg string
	g := DefaultGraph(func(m string) { msg = m })
	g.SetEdges(deck.Card(60), deck.FullSet)
	assert.Equal(t, "set edges for card 60 outside the domain", msg)

	assert.Panics(t, func() {
		DefaultGraph(nil).SetEdges(deck.Card(52), deck.FullSet)
	})
}

func TestPlayabilityGraph_IsPlayable(t *testing.T) {
	a := assert.New(t)

	g := DefaultGraph(nil)
	wild := deck.RankMask(deck.Eight)

	a.True(g.IsPlayable(card("5h"), card("Kh"), wild, deck.NoSuit))
	a.True(g.IsPlayable(card("5h"), card("5c"), wild, deck.NoSuit))
	a.False(g.IsPlayable(card("5h"), card("Kc"), wild, deck.NoSuit))
	a.True(g.IsPlayable(card("8s"), card("Kc"), wild, deck.NoSuit), "wilds are always playable")

	// a declared suit overrides the graph while a wild is on top
	a.True(g.IsPlayable(card("2d"), card("8s"), wild, deck.Diamonds))
	a.False(g.IsPlayable(card("2s"), card("8s"), wild, deck.Diamonds))
}

func TestPlayabilityGraph_wildDeclaration(t *testing.T) {
	a := assert.New(t)

	g := DefaultGraph(nil)
	wild := deck.RankMask(deck.Eight)
	top := card("8c")

	for c := deck.Card(0); c < deck.NumCards; c++ {
		a.Equal(wild.Contains(c), g.IsPlayable(c, top, wild, deck.NoSuit), "card %s", c)
	}
}

func TestPlayabilityGraph_Clone(t *testing.T) {
	g := DefaultGraph(nil)
	cp := g.Clone()
	cp.SetEdges(0, deck.EmptySet)

	assert.NotEqual(t, deck.EmptySet, g.Edges(0))
}
