package game

import (
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/rules"

	"github.com/sirupsen/logrus"
)

type ruleChangeStage int

const (
	stagePick ruleChangeStage = iota
	stageEdit
	stageConfirm
)

// ruleChange is the winner's pick of a new rule. A human winner goes through option, card set and confirm
// choices; declining the confirmation goes back to the options.
type ruleChange struct {
	options []rules.Change
	stage   ruleChangeStage
	picked  int
	edited  rules.Change
}

func (s *State) startRuleChange() {
	if s.options.RuleOptions <= 0 {
		s.phase = phaseDone
		return
	}

	s.phase = phaseRuleChange
	s.ruleChange = &ruleChange{options: rules.Propose(s.rng, s.options.RuleOptions)}
}

func (s *State) stepRuleChange() {
	rc := s.ruleChange
	if !s.IsHuman(s.winner) {
		s.applyRuleChange(rc.options[0])
		return
	}

	switch rc.stage {
	case stagePick:
		labels := make([]string, len(rc.options))
		for i, c := range rc.options {
			labels[i] = c.Describe()
		}

		i, ok := s.choice.RequestOption("choose a new rule", labels)
		if !ok {
			return
		}

		rc.picked = i
		rc.stage = stageEdit
	case stageEdit:
		picked := rc.options[rc.picked]
		cards, ok := s.choice.RequestCardSet("choose the cards", picked.Condition())
		if !ok {
			return
		}

		rc.edited = picked.WithCondition(cards)
		rc.stage = stageConfirm
	case stageConfirm:
		yes, ok := s.choice.RequestConfirm("apply this rule?", s.describeChange(rc.edited))
		if !ok {
			return
		}

		if !yes {
			rc.stage = stagePick
			return
		}

		s.applyRuleChange(rc.edited)
	}
}

// describeChange returns the confirmation lines. An effect change shows the effects of its condition before
// and after.
func (s *State) describeChange(c rules.Change) []string {
	effect, ok := c.(rules.EffectChange)
	if !ok {
		return []string{c.Describe()}
	}

	current, _ := s.rules.Effects.EffectsForCondition(effect.Cards)
	return []string{
		effect.Cards.String(),
		"now: " + rules.DescribeEffects(current),
		"new: " + rules.DescribeEffects(append(current, effect.Effects...)),
	}
}

func (s *State) applyRuleChange(c rules.Change) {
	c.Apply(s.rules)
	s.push(gamelog.NewMessage(s.winner, "{} adds a rule: %s", c.Describe()))
	s.logger.WithFields(logrus.Fields{
		"winner": s.winner.String(),
		"change": c.Describe(),
	}).Info("rule change")

	s.ruleChange = nil
	s.phase = phaseDone
}
