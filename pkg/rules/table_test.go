package rules

import (
	"testing"

	"crazyrules/pkg/deck"
	"crazyrules/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestEffectTable_ordering(t *testing.T) {
	a := assert.New(t)

	c1 := deck.SetOf(5, 6)
	c2 := deck.SetOf(5, 9)

	tbl := NewEffectTable()
	tbl.SetCondition(c1, []Effect{AdvanceTurn{Player: Next}})
	tbl.SetCondition(c2, []Effect{AdvanceTurn{Player: Across}})

	expects := []Effect{AdvanceTurn{Player: Next}, AdvanceTurn{Player: Across}}
	a.Equal(expects, tbl.EffectsForCard(5))
	a.Equal(expects, tbl.EffectsForCard(5), "re-querying does not change the order")
	a.Equal([]Effect{AdvanceTurn{Player: Next}}, tbl.EffectsForCard(6))
	a.Equal([]Effect{AdvanceTurn{Player: Across}}, tbl.EffectsForCard(9))
	a.Empty(tbl.EffectsForCard(10))
	a.Nil(tbl.EffectsForCard(deck.Card(52)))
	a.Equal([]deck.CardSet{c1, c2}, tbl.ConditionsForCard(5))
}

func TestEffectTable_recencyOverride(t *testing.T) {
	a := assert.New(t)

	c1 := deck.SetOf(5, 6)
	c2 := deck.SetOf(5, 9)

	tbl := NewEffectTable()
	tbl.SetCondition(c1, []Effect{AdvanceTurn{Player: Next}})
	tbl.SetCondition(c2, []Effect{AdvanceTurn{Player: Across}})
	tbl.SetCondition(c1, []Effect{AdvanceTurn{Player: Previous}})

	a.Equal([]Effect{AdvanceTurn{Player: Across}, AdvanceTurn{Player: Previous}}, tbl.EffectsForCard(5))
	a.Equal([]deck.CardSet{c2, c1}, tbl.ConditionsForCard(5))
	a.Len(tbl.ConditionsForCard(6), 1, "overwriting a condition must not duplicate it in the index")
	a.Equal(uint64(3), tbl.Generation())

	groups := tbl.Groups()
	a.Len(groups, 2)
	a.Equal(c2, groups[0].Condition)
	a.Equal(uint64(2), groups[0].Generation)
	a.Equal(c1, groups[1].Condition)
	a.Equal(uint64(3), groups[1].Generation)
}

func TestEffectTable_ruleOverwrite(t *testing.T) {
	a := assert.New(t)

	tbl := NewEffectTable()
	tbl.SetCondition(deck.SetOf(5), []Effect{AdvanceTurn{Player: Next}})
	tbl.SetCondition(deck.SetOf(5, 9), []Effect{AdvanceTurn{Player: Across}})

	effects := tbl.EffectsForCard(5)
	a.Equal([]Effect{AdvanceTurn{Player: Next}, AdvanceTurn{Player: Across}}, effects)

	// fold the effects the way the turn driver does, including its end of turn advance
	current := PlayerID(1)
	for _, e := range effects {
		current = Previous.Apply(e.(AdvanceTurn).Player.Apply(current))
	}
	current = Next.Apply(current)
	a.Equal(Across.Apply(1), current)
}

func TestEffectTable_EffectsForCondition(t *testing.T) {
	a := assert.New(t)

	tbl := NewEffectTable()
	effects := Draw(PlayersOf(Next), 2)
	tbl.SetCondition(deck.RankMask(deck.Two), effects)

	got, ok := tbl.EffectsForCondition(deck.RankMask(deck.Two))
	a.True(ok)
	a.Equal(effects, got)

	got[0] = AdvanceTurn{}
	again, _ := tbl.EffectsForCondition(deck.RankMask(deck.Two))
	a.Equal(effects, again, "the stored list can't be modified through the returned slice")

	_, ok = tbl.EffectsForCondition(deck.SetOf(1))
	a.False(ok)
}

func TestEffectTable_emptyCondition(t *testing.T) {
	tbl := NewEffectTable()
	tbl.SetCondition(deck.EmptySet, []Effect{AdvanceTurn{Player: Across}})

	for c := deck.Card(0); c < deck.NumCards; c++ {
		assert.Empty(t, tbl.EffectsForCard(c))
	}
}

func TestEffectTable_Clone(t *testing.T) {
	a := assert.New(t)

	tbl := NewEffectTable()
	tbl.SetCondition(deck.SetOf(1), []Effect{AdvanceTurn{Player: Across}})
	cp := tbl.Clone()
	cp.SetCondition(deck.SetOf(1, 2), []Effect{AdvanceTurn{Player: Same}})

	a.Len(tbl.EffectsForCard(1), 1)
	a.Len(cp.EffectsForCard(1), 2)
	a.Equal(uint64(1), tbl.Generation())
}

func TestEffectTable_Snapshot(t *testing.T) {
	tbl := NewEffectTable()
	tbl.SetCondition(deck.SetOf(5), []Effect{AdvanceTurn{Player: Next}})
	tbl.SetCondition(deck.SetOf(5, 9), Draw(PlayersOf(Next, Across), 1))

	snapshot.ValidateSnapshot(t, tbl.Groups(), 0)
}
