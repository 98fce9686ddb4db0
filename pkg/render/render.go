// Package render is the list of draw commands the core emits each frame.
// An external rasterizer turns the commands into pixels.
package render

import "crazyrules/pkg/deck"

// CommandKind is the kind of draw command
type CommandKind uint8

// command kinds
const (
	SpriteCommand CommandKind = iota
	GlyphCommand
	FillCommand
)

// Sprite identifies an image: a card face, or one of the extra sprites after the faces
type Sprite uint8

// extra sprites
const (
	CardBack Sprite = deck.NumCards + iota
	Cursor
	SuitIcon
)

// CardSprite returns the face sprite of a card
func CardSprite(c deck.Card) Sprite {
	return Sprite(c)
}

// Color is an index into the palette
type Color uint8

// palette
const (
	Felt Color = iota
	Black
	White
	Red
	Highlight
)

// Command is a single draw command. Which fields apply depends on Kind.
type Command struct {
	Kind   CommandKind
	X, Y   int
	W, H   int
	Sprite Sprite
	Glyph  rune
	Color  Color
}

// GlyphWidth and GlyphHeight are the cell size of the fixed width font
const (
	GlyphWidth  = 4
	GlyphHeight = 6
)

// screen and sprite sizes in pixels
const (
	ScreenWidth  = 240
	ScreenHeight = 160
	CardWidth    = 16
	CardHeight   = 24
)

// Commands collects the commands of a frame
type Commands struct {
	list []Command
}

// Sprite blits a sprite at x, y
func (c *Commands) Sprite(x, y int, s Sprite) {
	c.list = append(c.list, Command{Kind: SpriteCommand, X: x, Y: y, Sprite: s})
}

// Fill fills a rectangle
func (c *Commands) Fill(x, y, w, h int, color Color) {
	c.list = append(c.list, Command{Kind: FillCommand, X: x, Y: y, W: w, H: h, Color: color})
}

// Text draws a line of text one glyph per rune
func (c *Commands) Text(x, y int, s string, color Color) {
	for _, r := range s {
		if r != ' ' {
			c.list = append(c.list, Command{Kind: GlyphCommand, X: x, Y: y, Glyph: r, Color: color})
		}

		x += GlyphWidth
	}
}

// Append copies the commands of o after the commands of c
func (c *Commands) Append(o *Commands) {
	c.list = append(c.list, o.list...)
}

// List returns the commands in draw order
func (c *Commands) List() []Command {
	return c.list
}

// Reset drops every command, keeping the storage for the next frame
func (c *Commands) Reset() {
	c.list = c.list[:0]
}

// TextAt returns the glyphs drawn on row y, in draw order
func (c *Commands) TextAt(y int) string {
	var s []rune
	for _, cmd := range c.list {
		if cmd.Kind == GlyphCommand && cmd.Y == y {
			s = append(s, cmd.Glyph)
		}
	}

	return string(s)
}
