package game

import (
	"crazyrules/pkg/deck"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/sound"

	"github.com/sirupsen/logrus"
)

// discardAndApply puts the played card on the discard pile, applies the effects of every rule that contains
// it and then passes the turn on. Every effect resolves its relative players against the player who played
// the card, even after an earlier effect moved the turn.
func (s *State) discardAndApply(player rules.PlayerID, card deck.Card, declared deck.Suit) {
	s.discard.Push(card)
	s.declared = declared
	s.sound.Play(sound.CardPlaced)

	effects := s.rules.Effects.EffectsForCard(card)
	if len(effects) > 0 {
		s.logger.WithFields(logrus.Fields{
			"card":    card.String(),
			"effects": rules.DescribeEffects(effects),
		}).Debug("apply effects")
	}

	for _, effect := range effects {
		s.applyEffect(player, effect)
	}

	s.endTurn()
}

// endTurn is the automatic advance after every play or pass. AdvanceTurn effects compensate for it.
func (s *State) endTurn() {
	s.current = rules.Next.Apply(s.current)
	s.drew = false
	s.turns++
}

// applyEffect applies one effect of a card played by player. AdvanceTurn moves the turn on from wherever it
// currently is, so overlapping turn rules add up.
func (s *State) applyEffect(player rules.PlayerID, effect rules.Effect) {
	switch e := effect.(type) {
	case rules.AdvanceTurn:
		s.current = rules.Previous.Apply(e.Player.Apply(s.current))
		s.push(gamelog.NewMessage(rules.Next.Apply(s.current), "{} is up next"))
	case rules.MoveCards:
		for _, p := range e.Affected.Resolve(player) {
			s.moveCards(p, e)
		}
	default:
		s.violation("unknown effect %T", effect)
	}
}

// moveCards takes the selected card out of the source pile now and puts it into the target pile when its
// animation finishes
func (s *State) moveCards(player rules.PlayerID, move rules.MoveCards) {
	source := move.Source.Resolve(player)
	target := move.Target.Resolve(player)
	if source == target {
		return
	}

	if source.Kind == rules.DeckKind && len(s.deck) == 0 {
		s.reshuffle()
	}

	from := s.pile(source)
	i, ok := move.Selection.Index(source.Kind, len(*from))
	if !ok {
		s.push(gamelog.NewMessage(player, "no card available for {}"))
		return
	}

	start := s.slotPosition(source, i)
	card, _ := from.Remove(i)
	if source.Kind == rules.DiscardKind {
		if top, ok := s.discard.LastCard(); ok {
			s.declared = top.Suit()
		} else {
			s.declared = deck.NoSuit
		}
	}

	s.push(gamelog.NewMessage(player, "{} moves a card from %s to %s", source, target))
	s.animate(card, start, s.landingPosition(target), completionFor(target))
}

func completionFor(target rules.HandID) Completion {
	switch target.Kind {
	case rules.DeckKind:
		return Completion{Kind: MoveToDeck}
	case rules.DiscardKind:
		return Completion{Kind: MoveToDiscard}
	}

	return Completion{Kind: MoveToHand, Hand: target}
}

// reshuffle shuffles every discarded card except the top into the deck
func (s *State) reshuffle() bool {
	n := len(s.discard)
	if n <= 1 {
		return false
	}

	rest := s.discard.Drain()
	top := rest[n-1]
	rest = rest[:n-1]
	deck.Shuffle(rest, s.rng)

	s.deck = append(s.deck, rest...)
	s.discard = deck.Hand{top}
	s.sound.Play(sound.Shuffle)
	s.push(gamelog.SimpleMessage("the discard pile is shuffled into the deck"))

	return true
}

// drawCard takes the front card of the deck, reshuffling the discard pile into the deck if it is empty.
// The second return value is false when no card is available.
func (s *State) drawCard() (deck.Card, bool) {
	if len(s.deck) == 0 && !s.reshuffle() {
		return 0, false
	}

	return s.deck.Remove(0)
}

// majoritySuit is the suit the player holds the most of, ignoring the wild card being played.
// Ties go to the lower suit, an empty hand declares the wild card's own suit.
func (s *State) majoritySuit(player rules.PlayerID, wild deck.Card) deck.Suit {
	hand := s.hands[player]
	if len(hand) == 0 {
		return wild.Suit()
	}

	counts := hand.SuitCounts()
	best := deck.Clubs
	for suit := deck.Suit(1); suit < deck.NumSuits; suit++ {
		if counts[suit] > counts[best] {
			best = suit
		}
	}

	return best
}
