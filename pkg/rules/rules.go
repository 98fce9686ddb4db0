// Package rules holds the mutable rules of a round: which cards may be played on which,
// which cards are wild and which effects fire when a card is played.
//
// Effects are written against relative players and piles, so a rule behaves the same whichever seat
// triggers it.
package rules

import (
	"crazyrules/internal/invariant"
	"crazyrules/pkg/deck"
)

// DefaultWildRank is the rank that is wild in a fresh set of rules
const DefaultWildRank = deck.Eight

// Rules are the playability graph, the wild set and the effect table
type Rules struct {
	Graph   *PlayabilityGraph
	Wild    deck.CardSet
	Effects *EffectTable
}

// Default returns the starting rules: same suit or same rank, eights are wild and no effects
func Default(hook invariant.Hook) *Rules {
	return &Rules{
		Graph:   DefaultGraph(hook),
		Wild:    deck.RankMask(DefaultWildRank),
		Effects: NewEffectTable(),
	}
}

// IsWild returns true if the card is currently wild
func (r *Rules) IsWild(card deck.Card) bool {
	return r.Wild.Contains(card)
}

// IsPlayable returns true if card may be played on top given the declared suit
func (r *Rules) IsPlayable(card, top deck.Card, declared deck.Suit) bool {
	return r.Graph.IsPlayable(card, top, r.Wild, declared)
}

// Clone returns a deep copy of the rules
func (r *Rules) Clone() *Rules {
	return &Rules{
		Graph:   r.Graph.Clone(),
		Wild:    r.Wild,
		Effects: r.Effects.Clone(),
	}
}
