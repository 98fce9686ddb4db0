package deck

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// domainMask has one bit set for every card in the domain
const domainMask uint64 = 1<<NumCards - 1

// CardSet is a set of cards stored as a bitset. Bit n is card n.
// Bits outside of the card domain are always zero, so two sets with the same cards are ==
// and a CardSet is safe to use as a map key.
type CardSet struct {
	bits uint64
}

// EmptySet is the set without any cards
var EmptySet = CardSet{}

// FullSet is the set of every card
var FullSet = CardSet{bits: domainMask}

// NewCardSet returns a set from raw bits. Bits outside the card domain are dropped.
func NewCardSet(bits uint64) CardSet {
	return CardSet{bits: bits & domainMask}
}

// SetOf returns a set of the cards provided. Duplicates and invalid cards are ignored.
func SetOf(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Set(c)
	}

	return s
}

// SuitMask returns the set of every card of the suit
func SuitMask(suit Suit) CardSet {
	if suit >= NumSuits {
		return EmptySet
	}

	return CardSet{bits: (1<<NumRanks - 1) << (uint(suit) * NumRanks)}
}

// RankMask returns the set of every card of the rank
func RankMask(rank Rank) CardSet {
	var s CardSet
	if rank >= NumRanks {
		return s
	}

	for suit := Suit(0); suit < NumSuits; suit++ {
		s.Set(NewCard(suit, rank))
	}

	return s
}

// Bits returns the raw bitset
func (s CardSet) Bits() uint64 {
	return s.bits
}

// Contains returns true if the card is in the set
func (s CardSet) Contains(c Card) bool {
	if !c.Valid() {
		return false
	}

	return s.bits&(1<<c) != 0
}

// Set adds the card to the set
func (s *CardSet) Set(c Card) {
	if c.Valid() {
		s.bits |= 1 << c
	}
}

// Unset removes the card from the set
func (s *CardSet) Unset(c Card) {
	if c.Valid() {
		s.bits &^= 1 << c
	}
}

// Toggle flips membership of the card
func (s *CardSet) Toggle(c Card) {
	if c.Valid() {
		s.bits ^= 1 << c
	}
}

// Union returns a set with the cards of both sets
func (s CardSet) Union(o CardSet) CardSet {
	return CardSet{bits: s.bits | o.bits}
}

// Intersect returns a set of the cards common to both sets
func (s CardSet) Intersect(o CardSet) CardSet {
	return CardSet{bits: s.bits & o.bits}
}

// Difference returns the cards of s that are not in o
func (s CardSet) Difference(o CardSet) CardSet {
	return CardSet{bits: s.bits &^ o.bits}
}

// IsEmpty returns true if there are no cards in the set
func (s CardSet) IsEmpty() bool {
	return s.bits == 0
}

// Len returns the number of cards in the set
func (s CardSet) Len() int {
	return bits.OnesCount64(s.bits)
}

// Each calls fn for every card in ascending order
func (s CardSet) Each(fn func(c Card)) {
	for b := s.bits; b != 0; b &= b - 1 {
		fn(Card(bits.TrailingZeros64(b)))
	}
}

// Cards returns the cards of the set in ascending order
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	s.Each(func(c Card) {
		cards = append(cards, c)
	})

	return cards
}

func (s CardSet) String() string {
	cards := s.Cards()
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return "{" + strings.Join(c, " ") + "}"
}

// MarshalJSON encodes the set as a list of card codes
func (s CardSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Cards())
}

// UnmarshalJSON decodes a list of card codes
func (s *CardSet) UnmarshalJSON(b []byte) error {
	var cards []Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}

	*s = SetOf(cards...)
	return nil
}
