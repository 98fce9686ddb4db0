package rules

import (
	"crazyrules/internal/invariant"
	"crazyrules/pkg/deck"
)

// PlayabilityGraph holds, for every card, the set of discard tops it may be played on
type PlayabilityGraph struct {
	edges     [deck.NumCards]deck.CardSet
	violation invariant.Hook
}

// DefaultGraph returns the graph where a card may be played on the same suit or the same rank
func DefaultGraph(hook invariant.Hook) *PlayabilityGraph {
	g := &PlayabilityGraph{violation: hook}
	for c := deck.Card(0); c < deck.NumCards; c++ {
		g.edges[c] = deck.SuitMask(c.Suit()).Union(deck.RankMask(c.Rank()))
	}

	return g
}

// Edges returns the discard tops the card may be played on
func (g *PlayabilityGraph) Edges(card deck.Card) deck.CardSet {
	if !card.Valid() {
		return deck.EmptySet
	}

	return g.edges[card]
}

// SetEdges overwrites the edges of the card.
// Callers that want to add edges must union with Edges() first.
func (g *PlayabilityGraph) SetEdges(card deck.Card, edges deck.CardSet) {
	if !card.Valid() {
		invariant.Violated(g.violation, "set edges for card %d outside the domain", uint8(card))
		return
	}

	g.edges[card] = edges
}

// IsPlayable returns true if card may be played on top.
// Wild cards are always playable. While a wild is on top only the declared suit may follow;
// otherwise the graph decides.
func (g *PlayabilityGraph) IsPlayable(card, top deck.Card, wild deck.CardSet, declared deck.Suit) bool {
	if wild.Contains(card) {
		return true
	}

	if wild.Contains(top) {
		return declared == card.Suit()
	}

	return g.Edges(card).Contains(top)
}

// Clone returns a copy of the graph
func (g *PlayabilityGraph) Clone() *PlayabilityGraph {
	cp := *g
	return &cp
}
