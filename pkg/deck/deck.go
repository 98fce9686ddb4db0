package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"crazyrules/internal/rng"
)

// New returns the 52 cards in ascending order.
// Important! this deck is unshuffled. You must call Shuffle() to shuffle the cards
func New() Hand {
	cards := make(Hand, 0, NumCards)
	for c := Card(0); c < NumCards; c++ {
		cards = append(cards, c)
	}

	return cards
}

// Shuffle shuffles the cards in place using the generator
func Shuffle(cards []Card, gen rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// HashCode returns a SHA1 hash code of the card order
func HashCode(cards []Card) string {
	hash := sha1.New() // nolint:gosec
	for _, card := range cards {
		_, _ = hash.Write([]byte(card.Code()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
