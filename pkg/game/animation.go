package game

import (
	"fmt"

	"crazyrules/pkg/deck"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/sound"
)

// animationSteps is the number of frames a movement takes along its longer axis, give or take one
const animationSteps = 16

// Point is a screen position
type Point struct {
	X, Y int
}

// CompletionKind is what happens when a card reaches its target
type CompletionKind int

// completion kinds
const (
	// DiscardAndApply puts the card on the discard pile, applies its effects and ends the turn
	DiscardAndApply CompletionKind = iota
	// SelectWildCPU declares the suit the player holds most of, then discards and applies
	SelectWildCPU
	// SelectWildHuman waits for the player to choose a suit, then discards and applies
	SelectWildHuman
	// MoveToHand puts the card into a player's hand
	MoveToHand
	// MoveToDeck puts the card at the back of the deck
	MoveToDeck
	// MoveToDiscard puts the card on top of the discard pile
	MoveToDiscard
)

func (k CompletionKind) String() string {
	switch k {
	case DiscardAndApply:
		return "discardAndApply"
	case SelectWildCPU:
		return "selectWildCPU"
	case SelectWildHuman:
		return "selectWildHuman"
	case MoveToHand:
		return "moveToHand"
	case MoveToDeck:
		return "moveToDeck"
	case MoveToDiscard:
		return "moveToDiscard"
	}

	return fmt.Sprintf("completion(%d)", int(k))
}

// Completion is the deferred commit of a movement
type Completion struct {
	Kind CompletionKind
	// Player is the seat that played the card for the discard kinds
	Player rules.PlayerID
	// Hand is the target of MoveToHand
	Hand rules.HandID
}

// CardAnimation is a card in flight. The card belongs to no pile until the completion runs.
type CardAnimation struct {
	Card       deck.Card
	Pos        Point
	Target     Point
	RateX      int
	RateY      int
	Completion Completion
}

func newAnimation(card deck.Card, from, to Point, completion Completion) *CardAnimation {
	return &CardAnimation{
		Card:       card,
		Pos:        from,
		Target:     to,
		RateX:      rate(to.X - from.X),
		RateY:      rate(to.Y - from.Y),
		Completion: completion,
	}
}

func rate(distance int) int {
	r := abs(distance) / animationSteps
	if r < 1 {
		return 1
	}

	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// approach moves from toward to by at most step
func approach(from, to, step int) int {
	switch {
	case from < to:
		if from+step > to {
			return to
		}
		return from + step
	case from > to:
		if from-step < to {
			return to
		}
		return from - step
	}

	return from
}

// Step advances the card one frame. Each axis finishes on its own. It returns true once the card is at its target.
func (a *CardAnimation) Step() bool {
	a.Pos.X = approach(a.Pos.X, a.Target.X, a.RateX)
	a.Pos.Y = approach(a.Pos.Y, a.Target.Y, a.RateY)

	return a.Arrived()
}

// Arrived returns true if the card is at its target
func (a *CardAnimation) Arrived() bool {
	return a.Pos == a.Target
}

// animate takes a card that has already left its pile and puts it in flight
func (s *State) animate(card deck.Card, from, to Point, completion Completion) {
	s.animations = append(s.animations, newAnimation(card, from, to, completion))
}

// advanceAnimations steps every animation and commits the ones that arrive.
// The scan runs backwards so removing an entry never skips one that is still to be visited. Animations
// created by a completion are appended and first step on the next frame. A completion that is waiting on
// a decision puts its animation back where it was, parked on its target, to be retried every frame.
func (s *State) advanceAnimations() {
	for i := len(s.animations) - 1; i >= 0; i-- {
		a := s.animations[i]
		if !a.Step() {
			continue
		}

		s.animations = append(s.animations[:i], s.animations[i+1:]...)
		if s.complete(a) {
			continue
		}

		s.animations = append(s.animations, nil)
		copy(s.animations[i+1:], s.animations[i:])
		s.animations[i] = a
	}
}

// complete runs the completion of an animation. It returns false if the completion is still waiting.
func (s *State) complete(a *CardAnimation) bool {
	c := a.Completion
	switch c.Kind {
	case DiscardAndApply:
		s.discardAndApply(c.Player, a.Card, a.Card.Suit())
	case SelectWildCPU:
		suit := s.majoritySuit(c.Player, a.Card)
		s.push(gamelog.NewMessage(c.Player, "{} declares %s", suit))
		s.discardAndApply(c.Player, a.Card, suit)
	case SelectWildHuman:
		suit, ok := s.choice.RequestSuit()
		if !ok {
			return false
		}

		s.push(gamelog.NewMessage(c.Player, "{} declares %s", suit))
		s.discardAndApply(c.Player, a.Card, suit)
	case MoveToHand:
		s.pile(c.Hand).Push(a.Card)
		s.sound.Play(sound.CardDrawn)
	case MoveToDeck:
		s.deck.Push(a.Card)
	case MoveToDiscard:
		s.discard.Push(a.Card)
		s.declared = a.Card.Suit()
		s.sound.Play(sound.CardPlaced)
	default:
		s.violation("unknown completion %s", c.Kind)
	}

	return true
}
