// Package ui is the input side of the game core: per-frame button edges and the hot/active widget
// context shared by every interactive routine.
package ui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownButton is returned when a button name cannot be parsed
var ErrUnknownButton = errors.New("unknown button")

// Button is one of the fixed set of buttons
type Button uint8

// buttons
const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	Start
	Select

	numButtons
)

var buttonNames = [numButtons]string{"up", "down", "left", "right", "a", "b", "start", "select"}

func (b Button) String() string {
	if b >= numButtons {
		return "unknown"
	}

	return buttonNames[b]
}

// ParseButton returns the button with the name, ignoring case
func ParseButton(name string) (Button, error) {
	for b, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(b), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
}

// Input answers the per-frame button queries. The core never reads raw hardware state.
type Input interface {
	// Pressed returns true if the button went down this frame
	Pressed(b Button) bool
	// Released returns true if the button went up this frame
	Released(b Button) bool
}

// Frame is the input of a single frame
type Frame struct {
	pressed  uint8
	released uint8
}

// Press returns the frame with b pressed
func (f Frame) Press(buttons ...Button) Frame {
	for _, b := range buttons {
		f.pressed |= 1 << b
	}

	return f
}

// Release returns the frame with b released
func (f Frame) Release(buttons ...Button) Frame {
	for _, b := range buttons {
		f.released |= 1 << b
	}

	return f
}

// Pressed implements Input
func (f Frame) Pressed(b Button) bool {
	return f.pressed&(1<<b) != 0
}

// Released implements Input
func (f Frame) Released(b Button) bool {
	return f.released&(1<<b) != 0
}

// None is a frame without input
var None = Frame{}

// Tap returns the two frames of a press then release of b
func Tap(b Button) []Frame {
	return []Frame{None.Press(b), None.Release(b)}
}

// Script replays a fixed list of frames, then reports no input
type Script struct {
	frames []Frame
	pos    int
}

// NewScript returns a script of the frames
func NewScript(frames ...[]Frame) *Script {
	s := &Script{}
	for _, f := range frames {
		s.frames = append(s.frames, f...)
	}

	return s
}

// Next returns the input of the next frame
func (s *Script) Next() Frame {
	if s.pos >= len(s.frames) {
		return None
	}

	f := s.frames[s.pos]
	s.pos++
	return f
}

// Done returns true if every frame has been replayed
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}
