package rules

import (
	"math"
	"sort"

	"crazyrules/pkg/deck"
)

// EffectGroup is the list of effects that fire when the played card is in Condition
type EffectGroup struct {
	Condition  deck.CardSet `json:"condition"`
	Effects    []Effect     `json:"effects"`
	Generation uint64       `json:"generation"`
}

// EffectTable maps conditions to effect groups.
// Every card keeps the conditions that contain it ordered by generation, oldest first,
// so overlapping groups always resolve in the order they were last set.
type EffectTable struct {
	groups     map[deck.CardSet]*EffectGroup
	index      [deck.NumCards][]deck.CardSet
	generation uint64
}

// NewEffectTable returns an empty table
func NewEffectTable() *EffectTable {
	return &EffectTable{
		groups: make(map[deck.CardSet]*EffectGroup),
	}
}

// generationOf returns the generation of the group keyed by cond.
// A condition that isn't in the table sorts last.
func (t *EffectTable) generationOf(cond deck.CardSet) uint64 {
	if g, ok := t.groups[cond]; ok {
		return g.Generation
	}

	return math.MaxUint64
}

// SetCondition stores the effects under cond, replacing any existing effects.
// The group always gets a fresh generation, even when the condition already existed.
func (t *EffectTable) SetCondition(cond deck.CardSet, effects []Effect) {
	t.generation++
	gen := t.generation

	t.groups[cond] = &EffectGroup{
		Condition:  cond,
		Effects:    append([]Effect{}, effects...),
		Generation: gen,
	}

	cond.Each(func(c deck.Card) {
		t.index[c] = t.insert(t.index[c], cond, gen)
	})
}

// insert places cond into conds at the position for gen
func (t *EffectTable) insert(conds []deck.CardSet, cond deck.CardSet, gen uint64) []deck.CardSet {
	for i, existing := range conds {
		if existing == cond {
			conds = append(conds[:i:i], conds[i+1:]...)
			break
		}
	}

	pos := sort.Search(len(conds), func(i int) bool {
		return t.generationOf(conds[i]) > gen
	})

	conds = append(conds, deck.EmptySet)
	copy(conds[pos+1:], conds[pos:])
	conds[pos] = cond

	return conds
}

// EffectsForCard returns the effects of every group whose condition contains the card,
// ordered by group generation
func (t *EffectTable) EffectsForCard(card deck.Card) []Effect {
	if !card.Valid() {
		return nil
	}

	effects := make([]Effect, 0)
	for _, cond := range t.index[card] {
		if g, ok := t.groups[cond]; ok {
			effects = append(effects, g.Effects...)
		}
	}

	return effects
}

// EffectsForCondition returns the exact effects stored under cond
func (t *EffectTable) EffectsForCondition(cond deck.CardSet) ([]Effect, bool) {
	g, ok := t.groups[cond]
	if !ok {
		return nil, false
	}

	return append([]Effect{}, g.Effects...), true
}

// ConditionsForCard returns the conditions containing the card, oldest generation first
func (t *EffectTable) ConditionsForCard(card deck.Card) []deck.CardSet {
	if !card.Valid() {
		return nil
	}

	return append([]deck.CardSet{}, t.index[card]...)
}

// Groups returns every group, oldest generation first
func (t *EffectTable) Groups() []EffectGroup {
	groups := make([]EffectGroup, 0, len(t.groups))
	for _, g := range t.groups {
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Generation < groups[j].Generation
	})

	return groups
}

// Generation returns the last generation issued
func (t *EffectTable) Generation() uint64 {
	return t.generation
}

// Clone returns a deep copy of the table
func (t *EffectTable) Clone() *EffectTable {
	cp := &EffectTable{
		groups:     make(map[deck.CardSet]*EffectGroup, len(t.groups)),
		generation: t.generation,
	}

	for cond, g := range t.groups {
		group := *g
		group.Effects = append([]Effect{}, g.Effects...)
		cp.groups[cond] = &group
	}

	for c := range t.index {
		cp.index[c] = append([]deck.CardSet(nil), t.index[c]...)
	}

	return cp
}
