package game

import (
	"testing"

	"crazyrules/pkg/choice"
	"crazyrules/pkg/deck"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_humanRuleChange(t *testing.T) {
	a := assert.New(t)
	s := newState(t, Options{Humans: []rules.PlayerID{0}, RuleOptions: 2})

	s.winner = 0
	s.phase = phaseRoundOver
	s.startRuleChange()
	require.Len(t, s.ruleChange.options, 2)

	picked := s.ruleChange.options[0]
	before := s.rules.Clone()

	run(s, []ui.Frame{ui.None})
	require.Equal(t, choice.OptionKind, s.Choice().Kind())
	option := s.Choice().Working().(*choice.OptionWorking)
	a.Equal([]string{picked.Describe(), s.ruleChange.options[1].Describe()}, option.Options)

	run(s, ui.Tap(ui.A), []ui.Frame{ui.None})
	require.Equal(t, choice.CardSetKind, s.Choice().Kind())
	a.Equal(picked.Condition(), s.Choice().Working().(*choice.CardSetWorking).Initial)

	run(s, []ui.Frame{ui.None.Press(ui.Start), ui.None})
	require.Equal(t, choice.ConfirmKind, s.Choice().Kind())
	a.Equal(s.describeChange(picked), s.Choice().Working().(*choice.ConfirmWorking).Details)

	// declining goes back to the options
	run(s, []ui.Frame{ui.None.Press(ui.Right)}, ui.Tap(ui.A))
	a.Equal(choice.Idle, s.Choice().State())
	a.Equal(stagePick, s.ruleChange.stage)
	a.Equal(before, s.rules, "nothing applied yet")

	// pick it again and add the two of clubs to the cards
	run(s, []ui.Frame{ui.None}, ui.Tap(ui.A), []ui.Frame{ui.None, ui.None.Press(ui.Right)}, ui.Tap(ui.A))
	run(s, []ui.Frame{ui.None.Press(ui.Start), ui.None}, ui.Tap(ui.A))
	require.True(t, s.Done())

	cond := picked.Condition()
	cond.Toggle(deck.MustParseCard("2c"))
	picked.WithCondition(cond).Apply(before)
	a.Equal(before, s.Rules())
	a.Contains(s.Log().Last().Text(), "P1 adds a rule: ")
}

func TestState_describeChange(t *testing.T) {
	a := assert.New(t)
	s := newState(t, Options{})

	cond := deck.RankMask(deck.Queen)
	s.rules.Effects.SetCondition(cond, []rules.Effect{rules.AdvanceTurn{Player: rules.Across}})

	change := rules.EffectChange{Cards: cond, Effects: []rules.Effect{rules.AdvanceTurn{Player: rules.Same}}}
	a.Equal([]string{
		cond.String(),
		"now: " + rules.AdvanceTurn{Player: rules.Across}.String(),
		"new: " + rules.DescribeEffects([]rules.Effect{rules.AdvanceTurn{Player: rules.Across}, rules.AdvanceTurn{Player: rules.Same}}),
	}, s.describeChange(change))

	// an edited condition only shows its own effects
	moved := change.WithCondition(deck.SuitMask(deck.Clubs))
	a.Equal([]string{
		deck.SuitMask(deck.Clubs).String(),
		"now: nothing",
		"new: " + rules.AdvanceTurn{Player: rules.Same}.String(),
	}, s.describeChange(moved))

	wild := rules.WildChange{Cards: deck.RankMask(deck.Two)}
	a.Equal([]string{wild.Describe()}, s.describeChange(wild))
}

func TestState_skipRuleChange(t *testing.T) {
	s := newState(t, Options{})
	s.startRuleChange()
	assert.True(t, s.Done())
}
