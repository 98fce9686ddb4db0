package rules

import (
	"encoding/json"
	"fmt"
)

// Effect is a secondary effect of playing a card.
// The variants are AdvanceTurn and MoveCards.
type Effect interface {
	fmt.Stringer
	isEffect()
}

// AdvanceTurn moves the turn to a player relative to the acting player
type AdvanceTurn struct {
	Player RelativePlayer
}

func (AdvanceTurn) isEffect() {}

func (a AdvanceTurn) String() string {
	return "turn goes to " + a.Player.String()
}

// MarshalJSON tags the effect with its type
func (a AdvanceTurn) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string         `json:"type"`
		Player RelativePlayer `json:"player"`
	}{"advanceTurn", a.Player})
}

// MoveCards moves one card from Source to Target for every affected player.
// Source and Target are resolved relative to each affected player.
type MoveCards struct {
	Affected  RelativePlayerSet
	Source    RelativeHand
	Target    RelativeHand
	Selection CardSelection
}

func (MoveCards) isEffect() {}

func (m MoveCards) String() string {
	return fmt.Sprintf("%s: card %d of %s to %s", m.Affected, m.Selection.N, m.Source, m.Target)
}

// MarshalJSON tags the effect with its type
func (m MoveCards) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string            `json:"type"`
		Affected  RelativePlayerSet `json:"affected"`
		Source    string            `json:"source"`
		Target    string            `json:"target"`
		Selection CardSelection     `json:"selection"`
	}{"moveCards", m.Affected, m.Source.String(), m.Target.String(), m.Selection})
}

// Draw returns n effects that each move the front card of the deck into the hand of every affected player
func Draw(affected RelativePlayerSet, n int) []Effect {
	effects := make([]Effect, n)
	for i := range effects {
		effects[i] = MoveCards{
			Affected:  affected,
			Source:    Deck,
			Target:    PlayerHand(Same),
			Selection: NthModuloCount(1),
		}
	}

	return effects
}
