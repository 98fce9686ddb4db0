package game

import (
	"crazyrules/pkg/deck"
	"crazyrules/pkg/render"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/ui"
)

// handLayout places the cards of a hand along a line, squeezing them together to stay within span
type handLayout struct {
	Origin Point
	Step   Point
	Span   int
	Label  Point
}

var seatLayouts = [rules.NumPlayers]handLayout{
	{Origin: Point{X: 44, Y: 132}, Step: Point{X: 10}, Span: 150, Label: Point{X: 28, Y: 140}},
	{Origin: Point{X: 4, Y: 16}, Step: Point{Y: 6}, Span: 100, Label: Point{X: 4, Y: 4}},
	{Origin: Point{X: 44, Y: 4}, Step: Point{X: 10}, Span: 150, Label: Point{X: 28, Y: 12}},
	{Origin: Point{X: 220, Y: 16}, Step: Point{Y: 6}, Span: 100, Label: Point{X: 220, Y: 4}},
}

// pile positions
var (
	deckPosition    = Point{X: 92, Y: 64}
	discardPosition = Point{X: 132, Y: 64}
)

// log window
const (
	logX     = 60
	logY     = 96
	logWidth = 30
	logLines = 4
)

func (l handLayout) position(i, n int) Point {
	step := l.Step
	if n > 1 {
		if length := (n - 1) * (step.X + step.Y); length > l.Span {
			if step.X > 0 {
				step.X = l.Span / (n - 1)
			} else {
				step.Y = l.Span / (n - 1)
			}
		}
	}

	return Point{X: l.Origin.X + i*step.X, Y: l.Origin.Y + i*step.Y}
}

// slotPosition is where the card at index i of a pile is drawn
func (s *State) slotPosition(id rules.HandID, i int) Point {
	switch id.Kind {
	case rules.DeckKind:
		return deckPosition
	case rules.DiscardKind:
		return discardPosition
	}

	p := id.Player % rules.NumPlayers
	return seatLayouts[p].position(i, len(s.hands[p]))
}

// landingPosition is where a card added to a pile ends up
func (s *State) landingPosition(id rules.HandID) Point {
	if id.Kind != rules.PlayerHandKind {
		return s.slotPosition(id, 0)
	}

	p := id.Player % rules.NumPlayers
	n := len(s.hands[p])
	return seatLayouts[p].position(n, n+1)
}

// Draw emits the draw commands of the table, the log window and any open decision
func (s *State) Draw(out *render.Commands) {
	out.Fill(0, 0, render.ScreenWidth, render.ScreenHeight, render.Felt)

	if len(s.deck) > 0 {
		out.Sprite(deckPosition.X, deckPosition.Y, render.CardBack)
	}

	if top, ok := s.discard.LastCard(); ok {
		out.Sprite(discardPosition.X, discardPosition.Y, render.CardSprite(top))
		if s.rules.IsWild(top) && s.declared != deck.NoSuit {
			out.Text(discardPosition.X+render.CardWidth+2, discardPosition.Y, s.declared.Symbol(), render.White)
		}
	}

	for p := rules.PlayerID(0); p < rules.NumPlayers; p++ {
		layout := seatLayouts[p]
		color := render.White
		if p == s.current {
			color = render.Highlight
		}

		out.Text(layout.Label.X, layout.Label.Y, p.String(), color)

		hand := s.hands[p]
		for i, c := range hand {
			pt := layout.position(i, len(hand))
			if !s.IsHuman(p) {
				out.Sprite(pt.X, pt.Y, render.CardBack)
				continue
			}

			if p == s.current && s.ctx.Hot == handWidget+ui.WidgetID(i) {
				out.Fill(pt.X-1, pt.Y-1, render.CardWidth+2, render.CardHeight+2, render.Highlight)
			}

			out.Sprite(pt.X, pt.Y, render.CardSprite(c))
		}
	}

	for _, a := range s.animations {
		out.Sprite(a.Pos.X, a.Pos.Y, render.CardSprite(a.Card))
	}

	for i, line := range s.log.Page(logWidth, logLines, -1) {
		out.Text(logX, logY+i*(render.GlyphHeight+1), line, render.White)
	}

	out.Append(&s.overlay)
}
