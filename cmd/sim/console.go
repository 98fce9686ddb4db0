package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"crazyrules/pkg/choice"
	"crazyrules/pkg/deck"
	"crazyrules/pkg/game"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/ui"
)

// console plays the human seats from lines of button names, i.e., "right right a"
type console struct {
	in     *bufio.Reader
	out    io.Writer
	names  [rules.NumPlayers]string
	frames []ui.Frame
}

func newConsole(in *bufio.Reader, out io.Writer, names [rules.NumPlayers]string) *console {
	return &console{in: in, out: out, names: names}
}

// Next returns the input of the next frame, asking for a line when the game waits on a human
func (c *console) Next(state *game.State) (ui.Frame, error) {
	for len(c.frames) == 0 && state.WaitingForInput() {
		c.prompt(state)
		text, err := c.in.ReadString('\n')
		if err != nil {
			return ui.None, err
		}

		frames, err := parseLine(text)
		if err != nil {
			_, _ = fmt.Fprintln(c.out, err)
			continue
		}

		c.frames = frames
	}

	if len(c.frames) == 0 {
		return ui.None, nil
	}

	f := c.frames[0]
	c.frames = c.frames[1:]
	return f, nil
}

// parseLine turns every button name into a press and a release
func parseLine(text string) ([]ui.Frame, error) {
	var frames []ui.Frame
	for _, name := range strings.Fields(text) {
		b, err := ui.ParseButton(name)
		if err != nil {
			return nil, err
		}

		frames = append(frames, ui.Tap(b)...)
	}

	return frames, nil
}

func (c *console) prompt(state *game.State) {
	switch w := state.Choice().Working().(type) {
	case *choice.SuitWorking:
		suits := make([]string, deck.NumSuits)
		for s := deck.Suit(0); s < deck.NumSuits; s++ {
			suits[s] = mark(s.Symbol(), s == w.Cursor)
		}

		_, _ = fmt.Fprintf(c.out, "choose a suit: %s\n", strings.Join(suits, " "))
	case *choice.OptionWorking:
		_, _ = fmt.Fprintln(c.out, w.Prompt)
		for i, option := range w.Options {
			_, _ = fmt.Fprintf(c.out, "  %s\n", mark(option, i == w.Cursor))
		}
	case *choice.CardSetWorking:
		_, _ = fmt.Fprintf(c.out, "%s: %s, cursor on %s (a toggles, b resets, start is done)\n", w.Prompt, w.Current, w.Cursor)
	case *choice.ConfirmWorking:
		_, _ = fmt.Fprintln(c.out, w.Prompt)
		for _, line := range w.Details {
			_, _ = fmt.Fprintf(c.out, "  %s\n", line)
		}

		_, _ = fmt.Fprintf(c.out, "%s %s\n", mark("yes", !w.No), mark("no", w.No))
	default:
		c.promptHand(state)
	}
}

func (c *console) promptHand(state *game.State) {
	player := state.Current()
	top, declared, _ := state.Top()
	hot, _ := state.HotCard()

	hand := state.Hand(player)
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = mark(card.String(), i == hot)
	}

	_, _ = fmt.Fprintf(c.out, "%s, top is %s (%s), deck has %d\n", c.names[player], top, declared, len(state.Deck()))
	_, _ = fmt.Fprintf(c.out, "  %s (a plays, b draws)\n", strings.Join(cards, " "))
}

func mark(s string, hot bool) string {
	if hot {
		return "[" + s + "]"
	}

	return s
}
