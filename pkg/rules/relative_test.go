package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativePlayer_Apply(t *testing.T) {
	a := assert.New(t)

	a.Equal(PlayerID(2), Same.Apply(2))
	a.Equal(PlayerID(3), Next.Apply(2))
	a.Equal(PlayerID(0), Across.Apply(2))
	a.Equal(PlayerID(1), Previous.Apply(2))
	a.Equal(PlayerID(0), Next.Apply(3))
	a.Equal(PlayerID(3), Previous.Apply(0))

	for p := PlayerID(0); p < NumPlayers; p++ {
		a.Equal(p, Previous.Apply(Next.Apply(p)))
		a.Equal(p, Across.Apply(Across.Apply(p)))
	}
}

func TestRelativePlayer_Text(t *testing.T) {
	a := assert.New(t)

	b, err := Across.MarshalText()
	a.NoError(err)
	a.Equal("across", string(b))

	var r RelativePlayer
	a.NoError(r.UnmarshalText([]byte("previous")))
	a.Equal(Previous, r)
	a.Error(r.UnmarshalText([]byte("behind")))
}

func TestRelativePlayerSet(t *testing.T) {
	a := assert.New(t)

	s := PlayersOf(Across, Same, Across)
	a.True(s.Contains(Same))
	a.True(s.Contains(Across))
	a.False(s.Contains(Next))
	a.Equal([]RelativePlayer{Same, Across}, s.Players())
	a.Equal([]PlayerID{3, 1}, s.Resolve(3))
	a.Equal("{same,across}", s.String())

	s = s.Insert(Previous).Insert(Next)
	a.Equal([]RelativePlayer{Same, Next, Across, Previous}, s.Players())
	a.Equal([]PlayerID{1, 2, 3, 0}, AllPlayers.Resolve(1))
}

func TestRelativeHand_Resolve(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandOf(0), PlayerHand(Next).Resolve(3))
	a.Equal(DeckID, Deck.Resolve(2))
	a.Equal(DiscardID, Discard.Resolve(1))
	a.Equal("P1", HandOf(0).String())
	a.Equal("across hand", PlayerHand(Across).String())
}

func TestCardSelection_Index(t *testing.T) {
	a := assert.New(t)

	i, ok := NthModuloCount(1).Index(PlayerHandKind, 5)
	a.True(ok)
	a.Equal(0, i)

	i, _ = NthModuloCount(1).Index(DiscardKind, 5)
	a.Equal(4, i, "n=1 is the top of the discard pile")

	i, _ = NthModuloCount(2).Index(DiscardKind, 5)
	a.Equal(3, i)

	i, _ = NthModuloCount(7).Index(DeckKind, 5)
	a.Equal(1, i)

	i, _ = NthModuloCount(0).Index(DeckKind, 5)
	a.Equal(4, i)

	_, ok = NthModuloCount(1).Index(DeckKind, 0)
	a.False(ok)
}
