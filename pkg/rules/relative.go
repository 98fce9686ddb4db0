package rules

import (
	"fmt"
	"strings"
)

// NumPlayers is the fixed number of seats at the table
const NumPlayers = 4

// PlayerID is an absolute seat, 0 through 3
type PlayerID uint8

func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", uint8(p)+1)
}

// RelativePlayer is a seat relative to whoever is acting
type RelativePlayer uint8

// relative players, in turn order
const (
	Same RelativePlayer = iota
	Next
	Across
	Previous
)

var relativeNames = [NumPlayers]string{"same", "next", "across", "previous"}

// Apply resolves the relative player against the current player
func (r RelativePlayer) Apply(current PlayerID) PlayerID {
	return PlayerID((uint8(current) + uint8(r)%NumPlayers) % NumPlayers)
}

func (r RelativePlayer) String() string {
	return relativeNames[r%NumPlayers]
}

// MarshalText encodes the relative player by name
func (r RelativePlayer) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a relative player name
func (r *RelativePlayer) UnmarshalText(b []byte) error {
	for i, name := range relativeNames {
		if name == string(b) {
			*r = RelativePlayer(i)
			return nil
		}
	}

	return fmt.Errorf("unknown relative player: %s", b)
}

// RelativePlayerSet is a bitset of relative players
type RelativePlayerSet uint8

// AllPlayers is every seat, starting with the acting player
const AllPlayers RelativePlayerSet = 1<<NumPlayers - 1

// PlayersOf returns a set of the relative players
func PlayersOf(players ...RelativePlayer) RelativePlayerSet {
	var s RelativePlayerSet
	for _, p := range players {
		s = s.Insert(p)
	}

	return s
}

// Insert returns the set with p added
func (s RelativePlayerSet) Insert(p RelativePlayer) RelativePlayerSet {
	return s | 1<<(p%NumPlayers)
}

// Contains returns true if p is in the set
func (s RelativePlayerSet) Contains(p RelativePlayer) bool {
	return s&(1<<(p%NumPlayers)) != 0
}

// Players returns the members in order Same, Next, Across, Previous
func (s RelativePlayerSet) Players() []RelativePlayer {
	players := make([]RelativePlayer, 0, NumPlayers)
	for p := Same; p <= Previous; p++ {
		if s.Contains(p) {
			players = append(players, p)
		}
	}

	return players
}

// Resolve returns the absolute seats of the members, relative to current
func (s RelativePlayerSet) Resolve(current PlayerID) []PlayerID {
	players := s.Players()
	ids := make([]PlayerID, len(players))
	for i, p := range players {
		ids[i] = p.Apply(current)
	}

	return ids
}

func (s RelativePlayerSet) String() string {
	players := s.Players()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.String()
	}

	return "{" + strings.Join(names, ",") + "}"
}

// MarshalJSON encodes the set as a list of names
func (s RelativePlayerSet) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// HandKind is the kind of pile a RelativeHand refers to
type HandKind uint8

// hand kinds
const (
	PlayerHandKind HandKind = iota
	DeckKind
	DiscardKind
)

// RelativeHand is a pile: a player's hand relative to the acting player, the deck or the discard pile
type RelativeHand struct {
	Kind   HandKind       `json:"kind"`
	Player RelativePlayer `json:"player,omitempty"`
}

// the non-player piles
var (
	Deck    = RelativeHand{Kind: DeckKind}
	Discard = RelativeHand{Kind: DiscardKind}
)

// PlayerHand returns the hand of a relative player
func PlayerHand(p RelativePlayer) RelativeHand {
	return RelativeHand{Kind: PlayerHandKind, Player: p}
}

// Resolve returns the concrete pile relative to current
func (h RelativeHand) Resolve(current PlayerID) HandID {
	if h.Kind == PlayerHandKind {
		return HandID{Kind: PlayerHandKind, Player: h.Player.Apply(current)}
	}

	return HandID{Kind: h.Kind}
}

func (h RelativeHand) String() string {
	switch h.Kind {
	case DeckKind:
		return "deck"
	case DiscardKind:
		return "discard"
	}

	return h.Player.String() + " hand"
}

// HandID identifies a concrete pile
type HandID struct {
	Kind   HandKind
	Player PlayerID
}

// HandOf returns the HandID for a seat
func HandOf(p PlayerID) HandID {
	return HandID{Kind: PlayerHandKind, Player: p}
}

// the concrete non-player piles
var (
	DeckID    = HandID{Kind: DeckKind}
	DiscardID = HandID{Kind: DiscardKind}
)

func (h HandID) String() string {
	switch h.Kind {
	case DeckKind:
		return "deck"
	case DiscardKind:
		return "discard"
	}

	return h.Player.String()
}

// CardSelection picks a card from a pile.
// NthModuloCount is the only selection: the (N-1) mod len card from the front, or from the top (back)
// of the discard pile, so N=1 is the visible top of the discard pile and the front of every other pile.
type CardSelection struct {
	N int `json:"n"`
}

// NthModuloCount returns the selection of the nth card
func NthModuloCount(n int) CardSelection {
	return CardSelection{N: n}
}

// Index returns the index of the selected card in a pile of the kind and length.
// The second return value is false for an empty pile.
func (s CardSelection) Index(kind HandKind, length int) (int, bool) {
	if length <= 0 {
		return 0, false
	}

	i := (s.N - 1) % length
	if i < 0 {
		i += length
	}

	if kind == DiscardKind {
		i = length - 1 - i
	}

	return i, true
}
