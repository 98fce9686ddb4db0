package choice

import (
	"crazyrules/pkg/deck"
	"crazyrules/pkg/render"
	"crazyrules/pkg/sound"
	"crazyrules/pkg/ui"
)

// widget id ranges of the choice panels
const (
	suitWidget    ui.WidgetID = 100
	optionWidget  ui.WidgetID = 200
	cardWidget    ui.WidgetID = 300
	confirmWidget ui.WidgetID = 400
)

// panel layout
const (
	panelX    = 8
	panelY    = 8
	lineH     = render.GlyphHeight + 2
	cellW     = render.CardWidth + 1
	cellH     = render.CardHeight/2 + 1
	cardGridY = panelY + 2*lineH
)

// Interact runs one frame of the open choice: it reads input, draws the panel, and resolves the slot when the
// player commits. It returns true if a choice was open, in which case the caller must not read the input itself.
func Interact(s *Slot, in ui.Input, ctx *ui.Context, out *render.Commands, snd sound.Sink) bool {
	if s.State() != Awaiting {
		return false
	}

	if s.takeOpened() {
		ctx.Reset()
	}

	if snd == nil {
		snd = sound.Discard
	}

	out.Fill(panelX-2, panelY-2, render.ScreenWidth-2*panelX+4, render.ScreenHeight-2*panelY+4, render.Black)

	switch w := s.working.(type) {
	case *SuitWorking:
		interactSuit(s, w, in, ctx, out, snd)
	case *OptionWorking:
		interactOption(s, w, in, ctx, out, snd)
	case *CardSetWorking:
		interactCardSet(s, w, in, ctx, out, snd)
	case *ConfirmWorking:
		interactConfirm(s, w, in, ctx, out, snd)
	}

	return true
}

func interactSuit(s *Slot, w *SuitWorking, in ui.Input, ctx *ui.Context, out *render.Commands, snd sound.Sink) {
	w.Cursor = deck.Suit(ctx.MoveHot(in, suitWidget, deck.NumSuits, ui.Left, ui.Right))

	out.Text(panelX, panelY, "choose a suit", render.White)
	for suit := deck.Suit(0); suit < deck.NumSuits; suit++ {
		x := panelX + int(suit)*3*render.GlyphWidth
		if suit == w.Cursor {
			out.Fill(x-1, panelY+lineH-1, render.GlyphWidth+2, render.GlyphHeight+2, render.Highlight)
		}

		out.Text(x, panelY+lineH, suit.Symbol(), suitColor(suit))
	}

	for suit := deck.Suit(0); suit < deck.NumSuits; suit++ {
		if ctx.Clickable(in, suitWidget+ui.WidgetID(suit)) {
			snd.Play(sound.ButtonPressed)
			s.resolve(suit)
			return
		}
	}
}

func interactOption(s *Slot, w *OptionWorking, in ui.Input, ctx *ui.Context, out *render.Commands, snd sound.Sink) {
	if in.Pressed(ui.B) {
		w.Reset()
		ctx.Reset()
	}

	w.Cursor = ctx.MoveHot(in, optionWidget, len(w.Options), ui.Up, ui.Down)

	out.Text(panelX, panelY, w.Prompt, render.White)
	for i, option := range w.Options {
		y := panelY + (i+1)*lineH
		color := render.White
		if i == w.Cursor {
			out.Sprite(panelX, y, render.Cursor)
			color = render.Highlight
		}

		out.Text(panelX+2*render.GlyphWidth, y, option, color)
	}

	for i := range w.Options {
		if ctx.Clickable(in, optionWidget+ui.WidgetID(i)) {
			snd.Play(sound.ButtonPressed)
			s.resolve(i)
			return
		}
	}
}

func interactCardSet(s *Slot, w *CardSetWorking, in ui.Input, ctx *ui.Context, out *render.Commands, snd sound.Sink) {
	if in.Pressed(ui.B) {
		w.Reset()
		ctx.Reset()
	}

	rank, suit := int(w.Cursor.Rank()), int(w.Cursor.Suit())
	switch {
	case in.Pressed(ui.Left):
		rank = (rank + deck.NumRanks - 1) % deck.NumRanks
	case in.Pressed(ui.Right):
		rank = (rank + 1) % deck.NumRanks
	case in.Pressed(ui.Up):
		suit = (suit + deck.NumSuits - 1) % deck.NumSuits
	case in.Pressed(ui.Down):
		suit = (suit + 1) % deck.NumSuits
	}

	w.Cursor = deck.NewCard(deck.Suit(suit), deck.Rank(rank))
	hot := cardWidget + ui.WidgetID(w.Cursor)
	if ctx.Hot != hot {
		ctx.Active = ui.NoWidget
		ctx.Hot = hot
	}

	if ctx.Clickable(in, hot) {
		snd.Play(sound.ButtonPressed)
		w.Current.Toggle(w.Cursor)
	}

	out.Text(panelX, panelY, w.Prompt, render.White)
	out.Text(panelX, panelY+lineH, "a toggle  b reset  start done", render.White)
	for c := deck.Card(0); c < deck.NumCards; c++ {
		x := panelX + int(c.Rank())*cellW
		y := cardGridY + int(c.Suit())*cellH
		switch {
		case c == w.Cursor:
			out.Fill(x-1, y-1, cellW+1, cellH+1, render.Highlight)
		case w.Current.Contains(c):
			out.Fill(x-1, y-1, cellW+1, cellH+1, render.White)
		}

		out.Sprite(x, y, render.CardSprite(c))
	}

	if in.Pressed(ui.Start) {
		snd.Play(sound.ButtonPressed)
		s.resolve(w.Current)
	}
}

func interactConfirm(s *Slot, w *ConfirmWorking, in ui.Input, ctx *ui.Context, out *render.Commands, snd sound.Sink) {
	w.No = ctx.MoveHot(in, confirmWidget, 2, ui.Left, ui.Right) == 1

	out.Text(panelX, panelY, w.Prompt, render.White)
	y := panelY + lineH
	for _, line := range w.Details {
		out.Text(panelX, y, line, render.White)
		y += lineH
	}

	y += lineH
	yes, no := render.Highlight, render.White
	if w.No {
		yes, no = no, yes
	}

	out.Text(panelX, y, "yes", yes)
	out.Text(panelX+6*render.GlyphWidth, y, "no", no)

	for i := 0; i < 2; i++ {
		if ctx.Clickable(in, confirmWidget+ui.WidgetID(i)) {
			snd.Play(sound.ButtonPressed)
			s.resolve(i == 0)
			return
		}
	}
}

func suitColor(suit deck.Suit) render.Color {
	if suit == deck.Diamonds || suit == deck.Hearts {
		return render.Red
	}

	return render.White
}
