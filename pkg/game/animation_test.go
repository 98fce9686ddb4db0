package game

import (
	"testing"

	"crazyrules/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestCardAnimation_Step(t *testing.T) {
	a := assert.New(t)

	anim := newAnimation(0, Point{}, Point{X: 100, Y: 37}, Completion{Kind: MoveToDeck})
	a.Equal(6, anim.RateX)
	a.Equal(2, anim.RateY)

	frames := 1
	for !anim.Step() {
		if frames == 17 {
			a.Equal(Point{X: 100, Y: 34}, anim.Pos, "each axis finishes on its own")
		}
		frames++
	}

	// ceil(100/6) = 17 and ceil(37/2) = 19
	a.Equal(19, frames)
	a.Equal(anim.Target, anim.Pos)
	a.True(anim.Step(), "stays at the target")

	back := newAnimation(0, Point{X: 100, Y: 37}, Point{}, Completion{Kind: MoveToDeck})
	frames = 1
	for !back.Step() {
		frames++
	}

	a.Equal(19, frames)

	short := newAnimation(0, Point{X: 5, Y: 5}, Point{X: 8, Y: 5}, Completion{Kind: MoveToDeck})
	a.Equal(1, short.RateX)
	a.Equal(1, short.RateY)
	a.False(short.Step())
	a.False(short.Step())
	a.True(short.Step())
}

func TestState_advanceAnimations(t *testing.T) {
	a := assert.New(t)
	s := newState(t, Options{})
	arrange(t, s, [4]string{"Kh", "Kd", "Ks", "Qs"}, "", "Jh")

	// both arrive on the first frame, the later one commits first
	s.animate(deck.MustParseCard("Kc"), deckPosition, deckPosition, Completion{Kind: MoveToDeck})
	s.animate(deck.MustParseCard("Qc"), deckPosition, deckPosition, Completion{Kind: MoveToDeck})
	s.animate(deck.MustParseCard("Jc"), Point{}, deckPosition, Completion{Kind: MoveToDeck})

	s.advanceAnimations()
	a.Equal(cards(t, "Qc,Kc"), s.Deck())
	a.Len(s.Animations(), 1)

	settle(t, s)
	a.Equal(cards(t, "Qc,Kc,Jc"), s.Deck())
}
