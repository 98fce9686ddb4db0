// Package game is the turn driver of a round: four seats, a deck, a discard pile, the mutable rules and the
// animation pipeline that commits every card movement once it has been shown on screen.
//
// The State is stepped once per frame with Update. All waiting, for an animation or for a player decision,
// happens by returning from Update and looking again on the next frame.
package game

import (
	"crazyrules/internal/invariant"
	"crazyrules/internal/rng"
	"crazyrules/pkg/choice"
	"crazyrules/pkg/deck"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/render"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/sound"
	"crazyrules/pkg/ui"

	"github.com/sirupsen/logrus"
)

// cardsPerSeat is how many cards every seat is dealt
const cardsPerSeat = 7

// stalledTurns is how many turns may go by without any hand reaching a new low before the round is a stalemate
const stalledTurns = 100

type phase int

const (
	phasePlaying phase = iota
	phaseRoundOver
	phaseRuleChange
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phasePlaying:
		return "playing"
	case phaseRoundOver:
		return "round over"
	case phaseRuleChange:
		return "rule change"
	}

	return "done"
}

// State is a single round
type State struct {
	options Options
	logger  logrus.FieldLogger
	sound   sound.Sink

	rng     *rng.Xorshift
	rules   *rules.Rules
	log     *gamelog.Log
	choice  *choice.Slot
	current rules.PlayerID
	humans  [rules.NumPlayers]bool

	deck    deck.Hand
	discard deck.Hand
	hands   [rules.NumPlayers]deck.Hand

	// declared is the suit that must be followed while a wild card is on top of the discard pile
	declared   deck.Suit
	animations []*CardAnimation

	phase  phase
	winner rules.PlayerID
	passes int
	drew   bool

	// turns counts finished turns, shedAt is the turn on which a hand last got smaller than every hand before
	turns  int
	shedAt int
	lowest int

	pendingAction *pendingTableAction
	ruleChange    *ruleChange

	frame   int
	ctx     ui.Context
	overlay render.Commands
}

// New deals a new round. The generator is shared with the caller and keeps advancing across rounds.
func New(gen *rng.Xorshift, opts Options) (*State, error) {
	s := &State{
		options:  opts,
		logger:   opts.Logger,
		sound:    opts.Sound,
		rng:      gen,
		rules:    opts.Rules,
		log:      opts.Log,
		declared: deck.NoSuit,
		lowest:   cardsPerSeat,
	}

	for _, h := range opts.Humans {
		if h >= rules.NumPlayers {
			return nil, SeatError(h)
		}

		s.humans[h] = true
	}

	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	if s.sound == nil {
		s.sound = sound.Discard
	}

	if s.rules == nil {
		s.rules = rules.Default(opts.OnViolation)
	}

	if s.log == nil {
		s.log = gamelog.New(opts.LogCapacity)
	}

	s.choice = choice.NewSlot(opts.OnViolation)
	s.deal()

	return s, nil
}

// NewFromSeed deals a new round with a fresh generator
func NewFromSeed(seed rng.Seed, opts Options) (*State, error) {
	return New(rng.NewXorshift(seed), opts)
}

func (s *State) deal() {
	s.deck = deck.New()
	deck.Shuffle(s.deck, s.rng)
	s.sound.Play(sound.Shuffle)

	for i := 0; i < cardsPerSeat; i++ {
		for p := rules.PlayerID(0); p < rules.NumPlayers; p++ {
			card, _ := s.deck.Remove(0)
			s.hands[p].Push(card)
		}
	}

	starter, _ := s.deck.Remove(0)
	s.discard.Push(starter)
	s.declared = starter.Suit()

	s.logger.WithFields(logrus.Fields{
		"deck":    deck.HashCode(s.deck),
		"starter": starter.String(),
	}).Info("dealt round")

	s.push(gamelog.SimpleMessage("the starter is %s", starter).WithCards(starter))
}

// push adds messages to the game log
func (s *State) push(messages ...*gamelog.Message) {
	s.log.Push(messages...)
	for _, m := range messages {
		text := m.Text()
		s.logger.WithField("frame", s.frame).Debug(text)
		if s.options.OnLog != nil {
			s.options.OnLog(text)
		}
	}
}

func (s *State) violation(format string, a ...interface{}) {
	invariant.Violated(s.options.OnViolation, format, a...)
}

// pile returns the concrete pile of a HandID. A player outside the table wraps onto a seat.
func (s *State) pile(id rules.HandID) *deck.Hand {
	switch id.Kind {
	case rules.DeckKind:
		return &s.deck
	case rules.DiscardKind:
		return &s.discard
	}

	return &s.hands[id.Player%rules.NumPlayers]
}

// Current returns the seat whose turn it is
func (s *State) Current() rules.PlayerID {
	return s.current
}

// IsHuman returns true if the seat is controlled by input
func (s *State) IsHuman(p rules.PlayerID) bool {
	return p < rules.NumPlayers && s.humans[p]
}

// Hand returns a copy of a seat's hand
func (s *State) Hand(p rules.PlayerID) deck.Hand {
	return s.pile(rules.HandOf(p)).Clone()
}

// Deck returns a copy of the deck, front first
func (s *State) Deck() deck.Hand {
	return s.deck.Clone()
}

// Discard returns a copy of the discard pile, top last
func (s *State) Discard() deck.Hand {
	return s.discard.Clone()
}

// Rules returns the rules of the round
func (s *State) Rules() *rules.Rules {
	return s.rules
}

// Log returns the game log
func (s *State) Log() *gamelog.Log {
	return s.log
}

// Choice returns the decision slot
func (s *State) Choice() *choice.Slot {
	return s.choice
}

// Animations returns the cards in flight
func (s *State) Animations() []*CardAnimation {
	return s.animations
}

// DeclaredSuit returns the suit declared for the top of the discard pile
func (s *State) DeclaredSuit() deck.Suit {
	return s.declared
}

// Winner returns the seat that emptied its hand. The second return value is false while playing.
func (s *State) Winner() (rules.PlayerID, bool) {
	return s.winner, s.phase != phasePlaying
}

// Done returns true once the round, including the rule change, is over
func (s *State) Done() bool {
	return s.phase == phaseDone
}

// Frame returns how many frames have been stepped
func (s *State) Frame() int {
	return s.frame
}

// Top returns the card that cards are played against and its declared suit.
// A wild card waiting for its suit counts as the top with no suit declared.
func (s *State) Top() (deck.Card, deck.Suit, bool) {
	for _, a := range s.animations {
		if a.Completion.Kind == SelectWildHuman && a.Arrived() {
			return a.Card, deck.NoSuit, true
		}
	}

	top, ok := s.discard.LastCard()
	return top, s.declared, ok
}

// IsPlayable returns true if the card can be played right now
func (s *State) IsPlayable(card deck.Card) bool {
	if s.rules.IsWild(card) {
		return true
	}

	top, declared, ok := s.Top()
	if !ok {
		return true
	}

	return s.rules.IsPlayable(card, top, declared)
}

// Census returns every card the round holds, and how many there are counting duplicates
func (s *State) Census() (deck.CardSet, int) {
	var set deck.CardSet
	count := 0

	add := func(cards []deck.Card) {
		for _, c := range cards {
			set.Set(c)
			count++
		}
	}

	add(s.deck)
	add(s.discard)
	for _, hand := range s.hands {
		add(hand)
	}

	for _, a := range s.animations {
		set.Set(a.Card)
		count++
	}

	return set, count
}

func (s *State) checkConservation() {
	set, count := s.Census()
	if count != deck.NumCards || set != deck.FullSet {
		s.violation("%d cards are held, missing %s", count, deck.FullSet.Difference(set))
	}
}
