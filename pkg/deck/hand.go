package deck

// Hand represents an ordered collection of cards.
// Index 0 is the front. For the discard pile the last card is the visible top.
type Hand []Card

// Push adds a card to the back of the hand
func (h *Hand) Push(card Card) {
	*h = append(*h, card)
}

// Remove removes and returns the card at index i
// The second return value is false if i is out of range
func (h *Hand) Remove(i int) (Card, bool) {
	if i < 0 || i >= len(*h) {
		return 0, false
	}

	card := (*h)[i]
	hand := make(Hand, 0, len(*h)-1)
	hand = append(hand, (*h)[:i]...)
	hand = append(hand, (*h)[i+1:]...)
	*h = hand

	return card, true
}

// Drain removes every card and returns them in order
func (h *Hand) Drain() []Card {
	cards := []Card(*h)
	*h = Hand{}
	return cards
}

// LastCard returns the last card in the hand
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return 0, false
	}

	return h[n-1], true
}

// Set returns the cards of the hand as a CardSet
func (h Hand) Set() CardSet {
	return SetOf(h...)
}

// SuitCounts returns how many cards of each suit are in the hand
func (h Hand) SuitCounts() [NumSuits]int {
	var counts [NumSuits]int
	for _, c := range h {
		counts[c.Suit()]++
	}

	return counts
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
