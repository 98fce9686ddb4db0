package gamelog

import (
	"testing"

	"crazyrules/pkg/deck"
	"crazyrules/pkg/rules"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Text(t *testing.T) {
	a := assert.New(t)

	m := NewMessage(2, "{} played %s", deck.MustParseCard("8s"))
	a.Equal("P3 played 8♠", m.Text())
	a.NotEmpty(m.UUID)

	m = NewMessageWithPlayers([]rules.PlayerID{0, 1}, "{} tied")
	a.Equal("P1, P2 tied", m.Text())

	a.Equal("the deck was shuffled", SimpleMessage("the deck was shuffled").Text())

	m = SimpleMessage("starter").WithCards(deck.MustParseCard("2c"))
	a.Equal([]deck.Card{deck.MustParseCard("2c")}, m.Cards)
}

func TestLog_ringBuffer(t *testing.T) {
	a := assert.New(t)

	l := New(3)
	a.Nil(l.Last())
	for i := 0; i < 5; i++ {
		l.Push(SimpleMessage("m%d", i))
	}

	a.Equal(3, l.Len())
	a.Equal(3, l.Capacity())
	texts := make([]string, 0)
	for _, m := range l.Messages() {
		texts = append(texts, m.Text())
	}

	a.Equal([]string{"m2", "m3", "m4"}, texts)
	a.Equal("m4", l.Last().Text())

	a.Equal(DefaultCapacity, New(0).Capacity())
}

func TestReflow(t *testing.T) {
	a := assert.New(t)

	a.Equal([]string{"the quick", "brown fox"}, Reflow("the quick brown fox", 10))
	a.Equal([]string{"abcde", "fghij", "k"}, Reflow("abcdefghijk", 5))
	a.Equal([]string{"ab", "cdefg", "hi"}, Reflow("ab cdefghi", 5))
	a.Equal([]string{""}, Reflow("", 5))
	a.Equal([]string{"P1 played 8♠"}, Reflow("P1 played 8♠", 12))
	a.Equal([]string{"no width"}, Reflow("no width", 0))
}

func TestLog_Page(t *testing.T) {
	a := assert.New(t)

	l := New(10)
	for i := 0; i < 5; i++ {
		l.Push(SimpleMessage("line %d", i))
	}

	a.Equal(3, l.Pages(20, 2))
	a.Equal([]string{"line 0", "line 1"}, l.Page(20, 2, 0))
	a.Equal([]string{"line 4"}, l.Page(20, 2, 2))
	a.Equal([]string{"line 4"}, l.Page(20, 2, -1))
	a.Equal([]string{"line 2", "line 3"}, l.Page(20, 2, -2))
	a.Empty(l.Page(20, 2, 3))
	a.Empty(l.Page(20, 2, -4))
	a.Nil(l.Page(20, 0, 0))
	a.Equal(0, l.Pages(20, 0))

	// reflowing to a narrow window produces more pages
	a.Equal(5, l.Pages(4, 2))
}
