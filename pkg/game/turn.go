package game

import (
	"crazyrules/pkg/choice"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/sound"
	"crazyrules/pkg/ui"

	"github.com/sirupsen/logrus"
)

// handWidget is the widget id of the first card of the human hand
const handWidget ui.WidgetID = 1

// Update steps the round by one frame.
// An open decision gets the input first. Then the animations advance, and only once nothing is in flight
// does the table move on: the round ends, the rule change runs, or the current seat acts.
func (s *State) Update(in ui.Input) {
	s.frame++
	s.overlay.Reset()

	consumed := choice.Interact(s.choice, in, &s.ctx, &s.overlay, s.sound)
	s.advanceAnimations()
	if len(s.animations) > 0 {
		return
	}

	if s.options.CheckConservation {
		s.checkConservation()
	}

	if s.pendingAction != nil {
		if s.frame < s.pendingAction.ExecuteAfter {
			return
		}

		action := s.pendingAction.Action
		s.pendingAction = nil
		switch action {
		case pendingActionRuleChange:
			s.startRuleChange()
		default:
			s.violation("unknown table action %d", action)
		}

		return
	}

	switch s.phase {
	case phasePlaying:
		s.trackShedding()
		if s.isRoundOver() {
			s.endRound()
			return
		}

		if s.IsHuman(s.current) {
			if !consumed {
				s.humanTurn(in)
			}
		} else {
			s.cpuTurn()
		}
	case phaseRuleChange:
		s.stepRuleChange()
	}
}

// isRoundOver records the winner once the round is over
func (s *State) isRoundOver() bool {
	winner, over := s.findWinner()
	if over {
		s.winner = winner
	}

	return over
}

// trackShedding remembers the turn on which the smallest hand last reached a new low
func (s *State) trackShedding() {
	for _, hand := range s.hands {
		if len(hand) < s.lowest {
			s.lowest = len(hand)
			s.shedAt = s.turns
		}
	}
}

// stalled returns true if every seat passed in a row, or if no hand got smaller for too long
func (s *State) stalled() bool {
	return s.passes >= rules.NumPlayers || s.turns-s.shedAt >= stalledTurns
}

// findWinner returns the seat with an empty hand, or in a stalemate, the seat with the fewest cards
func (s *State) findWinner() (rules.PlayerID, bool) {
	for p, hand := range s.hands {
		if len(hand) == 0 {
			return rules.PlayerID(p), true
		}
	}

	if !s.stalled() {
		return 0, false
	}

	winner := rules.PlayerID(0)
	for p := rules.PlayerID(1); p < rules.NumPlayers; p++ {
		if len(s.hands[p]) < len(s.hands[winner]) {
			winner = p
		}
	}

	return winner, true
}

func (s *State) endRound() {
	s.phase = phaseRoundOver
	s.sound.Play(sound.RoundOver)
	s.push(gamelog.NewMessage(s.winner, "{} wins the round"))
	s.logger.WithField("winner", s.winner.String()).Info("round over")

	s.pendingAction = &pendingTableAction{
		Action:       pendingActionRuleChange,
		ExecuteAfter: s.frame + roundOverDelay,
	}
}

// HotCard returns the index of the card under the cursor of the current human hand
func (s *State) HotCard() (int, bool) {
	if !s.IsHuman(s.current) {
		return 0, false
	}

	i := int(s.ctx.Hot) - int(handWidget)
	if i < 0 || i >= len(s.hands[s.current]) {
		return 0, len(s.hands[s.current]) > 0
	}

	return i, true
}

// WaitingForInput returns true if nothing moves on until a human presses a button
func (s *State) WaitingForInput() bool {
	if s.choice.State() == choice.Awaiting {
		return true
	}

	if len(s.animations) > 0 || s.pendingAction != nil || s.phase != phasePlaying {
		return false
	}

	_, over := s.findWinner()
	return !over && s.IsHuman(s.current)
}

// canPlay returns true if any card in the current hand is playable
func (s *State) canPlay() bool {
	for _, c := range s.hands[s.current] {
		if s.IsPlayable(c) {
			return true
		}
	}

	return false
}

// cpuTurn plays the first playable card that is not wild, then the first wild card, and otherwise draws.
// A seat draws once per turn and passes if the drawn card does not help.
func (s *State) cpuTurn() {
	hand := s.hands[s.current]
	wild := -1
	for i, c := range hand {
		if !s.IsPlayable(c) {
			continue
		}

		if s.rules.IsWild(c) {
			if wild < 0 {
				wild = i
			}
			continue
		}

		s.play(i)
		return
	}

	if wild >= 0 {
		s.play(wild)
		return
	}

	if s.drew || !s.draw() {
		s.pass()
	}
}

// humanTurn moves the hot card with left and right, plays it with a click of A and draws with B.
// B after a draw passes the turn.
func (s *State) humanTurn(in ui.Input) {
	hand := s.hands[s.current]
	s.ctx.MoveHot(in, handWidget, len(hand), ui.Left, ui.Right)

	for i, c := range hand {
		if !s.ctx.Clickable(in, handWidget+ui.WidgetID(i)) {
			continue
		}

		if !s.IsPlayable(c) {
			s.sound.Play(sound.Invalid)
			return
		}

		s.play(i)
		return
	}

	if !in.Pressed(ui.B) {
		return
	}

	if s.drew || (!s.draw() && !s.canPlay()) {
		s.pass()
	}
}

// play takes a card out of the current hand and sends it to the discard pile
func (s *State) play(i int) {
	player := s.current
	start := s.slotPosition(rules.HandOf(player), i)
	card, ok := s.hands[player].Remove(i)
	if !ok {
		s.violation("%s has no card at %d", player, i)
		return
	}

	completion := Completion{Kind: DiscardAndApply, Player: player}
	if s.rules.IsWild(card) {
		completion.Kind = SelectWildCPU
		if s.IsHuman(player) {
			completion.Kind = SelectWildHuman
		}
	}

	s.passes = 0
	s.logger.WithFields(logrus.Fields{
		"player": player.String(),
		"card":   card.String(),
	}).Debug("play")

	s.push(gamelog.NewMessage(player, "{} plays %s", card).WithCards(card))
	s.animate(card, start, s.landingPosition(rules.DiscardID), completion)
}

// draw sends the front card of the deck to the current hand. The turn does not pass, but the seat may not
// draw again this turn.
func (s *State) draw() bool {
	player := s.current
	card, ok := s.drawCard()
	if !ok {
		return false
	}

	s.passes = 0
	s.drew = true
	s.push(gamelog.NewMessage(player, "{} draws a card"))
	s.animate(card, s.slotPosition(rules.DeckID, 0), s.landingPosition(rules.HandOf(player)),
		Completion{Kind: MoveToHand, Hand: rules.HandOf(player)})

	return true
}

// pass ends the turn of a seat that cannot play, either after its draw or with nothing left to draw
func (s *State) pass() {
	s.passes++
	if s.drew {
		s.push(gamelog.NewMessage(s.current, "{} passes"))
	} else {
		s.push(gamelog.NewMessage(s.current, "no card available, {} passes"))
	}

	s.endTurn()
}
