package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit uint8

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades

	// NumSuits is the number of suits in the domain
	NumSuits = 4
)

// NoSuit means no suit has been declared
const NoSuit Suit = 0xFF

// Rank is the rank of a card, from Ace (0) to King (12)
type Rank uint8

// rank constants
const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King

	// NumRanks is the number of ranks in a suit
	NumRanks = 13
)

// NumCards is the size of the card domain
const NumCards = NumSuits * NumRanks

// Card is an individual playing card: suit*13 + rank
type Card uint8

// NewCard returns the card for the suit and rank
func NewCard(suit Suit, rank Rank) Card {
	return Card(uint8(suit)*NumRanks + uint8(rank))
}

// Valid returns true if the card is inside the 52 card domain
func (c Card) Valid() bool {
	return c < NumCards
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return Suit(c / NumRanks)
}

// Rank returns the rank of the card
func (c Card) Rank() Rank {
	return Rank(c % NumRanks)
}

var rankNames = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}

	return rankNames[r]
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case NoSuit:
		return "none"
	}

	return fmt.Sprintf("suit(%d)", uint8(s))
}

// Symbol returns the single rune symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	return "?"
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}

	return c.Rank().String() + c.Suit().Symbol()
}

// Code returns the card in the parseable <rank><suit> format, i.e., 10h
func (c Card) Code() string {
	if !c.Valid() {
		return ""
	}

	return c.Rank().String() + string("cdhs"[c.Suit()])
}

// MarshalText encodes the card as its code
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCard, uint8(c))
	}

	return []byte(c.Code()), nil
}

// UnmarshalText decodes a card code
func (c *Card) UnmarshalText(b []byte) error {
	card, err := ParseCard(string(b))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`(?i)^(a|[2-9]|10|j|q|k)([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is in [A,2-10,J,Q,K] and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	for r, name := range rankNames {
		if strings.EqualFold(name, match[1]) {
			rank = Rank(r)
			break
		}
	}

	suit := Suit(strings.IndexByte("cdhs", strings.ToLower(match[2])[0]))
	return NewCard(suit, rank), nil
}

// MustParseCard is like ParseCard, but panics on error
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// ParseCards parses a comma separated list of cards, i.e., As,10h,8c
func ParseCards(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := ParseCard(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.Code()
	}

	return strings.Join(c, ",")
}
