package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame(t *testing.T) {
	a := assert.New(t)

	f := None.Press(A, Left).Release(B)
	a.True(f.Pressed(A))
	a.True(f.Pressed(Left))
	a.False(f.Pressed(B))
	a.True(f.Released(B))
	a.False(f.Released(A))
	a.Equal("start", Start.String())
}

func TestScript(t *testing.T) {
	a := assert.New(t)

	s := NewScript(Tap(A), []Frame{None.Press(Right)})
	a.True(s.Next().Pressed(A))
	a.True(s.Next().Released(A))
	a.False(s.Done())
	a.True(s.Next().Pressed(Right))
	a.True(s.Done())
	a.Equal(None, s.Next())
}

func TestContext_Clickable(t *testing.T) {
	a := assert.New(t)

	c := &Context{Hot: 5}
	a.False(c.Clickable(None.Press(A), 5))
	a.Equal(WidgetID(5), c.Active)
	a.True(c.Clickable(None.Release(A), 5))
	a.Equal(NoWidget, c.Active)

	// released somewhere else
	a.False(c.Clickable(None.Press(A), 5))
	c.Hot = 6
	a.False(c.Clickable(None.Release(A), 5))
	a.Equal(NoWidget, c.Active)

	// not hot
	a.False(c.Clickable(None.Press(A), 5))
	a.NotEqual(WidgetID(5), c.Active)
}

func TestContext_MoveHot(t *testing.T) {
	a := assert.New(t)

	c := &Context{}
	a.Equal(0, c.MoveHot(None, 10, 4, Left, Right))
	a.Equal(WidgetID(10), c.Hot)

	a.Equal(3, c.MoveHot(None.Press(Left), 10, 4, Left, Right))
	a.Equal(WidgetID(13), c.Hot)

	a.Equal(0, c.MoveHot(None.Press(Right), 10, 4, Left, Right))

	c.Active = 10
	c.MoveHot(None.Press(Right), 10, 4, Left, Right)
	a.Equal(NoWidget, c.Active)

	a.Equal(0, c.MoveHot(None, 10, 0, Left, Right))

	c.Reset()
	a.Equal(Context{}, *c)
}

func TestParseButton(t *testing.T) {
	a := assert.New(t)

	b, err := ParseButton("Start")
	a.NoError(err)
	a.Equal(Start, b)

	_, err = ParseButton("x")
	a.True(errors.Is(err, ErrUnknownButton))
	a.EqualError(err, `unknown button: "x"`)
}
