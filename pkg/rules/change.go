package rules

import (
	"fmt"
	"strings"

	"crazyrules/pkg/deck"
)

// Change is a rule change the winner of a round can apply
type Change interface {
	// Describe returns a one line summary for the rule change menu
	Describe() string
	// Condition is the set of cards the change is about
	Condition() deck.CardSet
	// WithCondition returns the same change applied to a different set of cards
	WithCondition(cond deck.CardSet) Change
	// Apply mutates the rules
	Apply(r *Rules)
}

// WildChange flips whether each card of Cards is wild
type WildChange struct {
	Cards deck.CardSet
}

// Describe implements Change
func (w WildChange) Describe() string {
	return fmt.Sprintf("toggle wild: %s", w.Cards)
}

// Condition implements Change
func (w WildChange) Condition() deck.CardSet {
	return w.Cards
}

// WithCondition implements Change
func (w WildChange) WithCondition(cond deck.CardSet) Change {
	return WildChange{Cards: cond}
}

// Apply implements Change
func (w WildChange) Apply(r *Rules) {
	r.Wild = deck.NewCardSet(r.Wild.Bits() ^ w.Cards.Bits())
}

// EdgeChange lets every card of Cards also be played on every card of OnTop
type EdgeChange struct {
	Cards deck.CardSet
	OnTop deck.CardSet
}

// Describe implements Change
func (e EdgeChange) Describe() string {
	return fmt.Sprintf("%s may be played on %s", e.Cards, e.OnTop)
}

// Condition implements Change
func (e EdgeChange) Condition() deck.CardSet {
	return e.Cards
}

// WithCondition implements Change
func (e EdgeChange) WithCondition(cond deck.CardSet) Change {
	return EdgeChange{Cards: cond, OnTop: e.OnTop}
}

// Apply implements Change
func (e EdgeChange) Apply(r *Rules) {
	e.Cards.Each(func(c deck.Card) {
		r.Graph.SetEdges(c, r.Graph.Edges(c).Union(e.OnTop))
	})
}

// EffectChange adds effects to a condition. The condition keeps the effects it already has when the change
// is applied.
type EffectChange struct {
	Cards   deck.CardSet
	Effects []Effect
}

// Describe implements Change
func (e EffectChange) Describe() string {
	return fmt.Sprintf("%s: %s", e.Cards, DescribeEffects(e.Effects))
}

// Condition implements Change
func (e EffectChange) Condition() deck.CardSet {
	return e.Cards
}

// WithCondition implements Change
func (e EffectChange) WithCondition(cond deck.CardSet) Change {
	return EffectChange{Cards: cond, Effects: e.Effects}
}

// Apply implements Change
func (e EffectChange) Apply(r *Rules) {
	existing, _ := r.Effects.EffectsForCondition(e.Cards)
	r.Effects.SetCondition(e.Cards, append(existing, e.Effects...))
}

// DescribeEffects joins the effects into one line
func DescribeEffects(effects []Effect) string {
	if len(effects) == 0 {
		return "nothing"
	}

	parts := make([]string, len(effects))
	for i, e := range effects {
		parts[i] = e.String()
	}

	return strings.Join(parts, "; ")
}
