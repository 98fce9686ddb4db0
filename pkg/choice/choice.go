// Package choice implements the single decision slot shared by the turn logic and the interactive UI.
//
// The turn logic calls a Request function every frame until it returns a value. The first call on an idle
// slot opens a choice of that kind and returns pending. Interact runs the widget of the open choice each
// frame and writes the resolved value into the slot; the next Request of the same kind consumes it and the
// slot returns to idle. Only one choice may be open at a time.
package choice

import (
	"crazyrules/internal/invariant"
	"crazyrules/pkg/deck"
)

// Kind is the kind of decision
type Kind uint8

// choice kinds
const (
	NoKind Kind = iota
	SuitKind
	OptionKind
	CardSetKind
	ConfirmKind
)

func (k Kind) String() string {
	switch k {
	case SuitKind:
		return "suit"
	case OptionKind:
		return "option"
	case CardSetKind:
		return "card set"
	case ConfirmKind:
		return "confirm"
	}

	return "none"
}

// State is the state of the slot
type State uint8

// slot states
const (
	Idle State = iota
	Awaiting
	Resolved
)

func (s State) String() string {
	switch s {
	case Awaiting:
		return "awaiting"
	case Resolved:
		return "resolved"
	}

	return "idle"
}

// Working is the partial data of an open choice
type Working interface {
	// Reset restores the data to what it was when the choice was opened
	Reset()
}

// Slot holds at most one choice
type Slot struct {
	state   State
	kind    Kind
	working Working
	value   interface{}
	opened  bool

	violation invariant.Hook
}

// NewSlot returns an idle slot that reports misuse to hook
func NewSlot(hook invariant.Hook) *Slot {
	return &Slot{violation: hook}
}

// State returns the state of the slot
func (s *Slot) State() State {
	return s.state
}

// Kind returns the kind of the open or resolved choice, or NoKind
func (s *Slot) Kind() Kind {
	return s.kind
}

// Working returns the partial data of the open choice, or nil
func (s *Slot) Working() Working {
	if s.state != Awaiting {
		return nil
	}

	return s.working
}

// Reset sends an open choice back to its initial data without closing it
func (s *Slot) Reset() {
	if s.state == Awaiting {
		s.working.Reset()
	}
}

func (s *Slot) request(k Kind, open func() Working) (interface{}, bool) {
	switch s.state {
	case Idle:
		s.state = Awaiting
		s.kind = k
		s.working = open()
		s.opened = true
		return nil, false
	case Awaiting:
		if s.kind == k {
			return nil, false
		}
	case Resolved:
		if s.kind == k {
			value := s.value
			s.state = Idle
			s.kind = NoKind
			s.working = nil
			s.value = nil
			return value, true
		}
	}

	invariant.Violated(s.violation, "requested a %s choice while a %s choice is %s", k, s.kind, s.state)
	return nil, false
}

// resolve stores the value of the open choice
func (s *Slot) resolve(value interface{}) {
	if s.state != Awaiting {
		invariant.Violated(s.violation, "resolved a %s choice that is %s", s.kind, s.state)
		return
	}

	s.state = Resolved
	s.value = value
}

// takeOpened reports whether the choice was opened since the last call
func (s *Slot) takeOpened() bool {
	opened := s.opened
	s.opened = false
	return opened
}

// SuitWorking is the data of a suit choice
type SuitWorking struct {
	Cursor deck.Suit
}

// Reset implements Working
func (w *SuitWorking) Reset() {
	w.Cursor = deck.Clubs
}

// RequestSuit asks for a suit
func (s *Slot) RequestSuit() (deck.Suit, bool) {
	v, ok := s.request(SuitKind, func() Working {
		return &SuitWorking{}
	})
	if !ok {
		return deck.NoSuit, false
	}

	return v.(deck.Suit), true
}

// OptionWorking is the data of a choice between labelled options
type OptionWorking struct {
	Prompt  string
	Options []string
	Cursor  int
}

// Reset implements Working
func (w *OptionWorking) Reset() {
	w.Cursor = 0
}

// RequestOption asks to pick one of the options and returns its index.
// The prompt and options are only read when the choice is opened.
func (s *Slot) RequestOption(prompt string, options []string) (int, bool) {
	v, ok := s.request(OptionKind, func() Working {
		return &OptionWorking{Prompt: prompt, Options: append([]string{}, options...)}
	})
	if !ok {
		return 0, false
	}

	return v.(int), true
}

// CardSetWorking is the data of a card set edit
type CardSetWorking struct {
	Prompt  string
	Initial deck.CardSet
	Current deck.CardSet
	Cursor  deck.Card
}

// Reset implements Working, starting the edit over
func (w *CardSetWorking) Reset() {
	w.Current = w.Initial
	w.Cursor = 0
}

// RequestCardSet asks to edit a card set, starting from initial
func (s *Slot) RequestCardSet(prompt string, initial deck.CardSet) (deck.CardSet, bool) {
	v, ok := s.request(CardSetKind, func() Working {
		return &CardSetWorking{Prompt: prompt, Initial: initial, Current: initial}
	})
	if !ok {
		return deck.EmptySet, false
	}

	return v.(deck.CardSet), true
}

// ConfirmWorking is the data of a yes/no question
type ConfirmWorking struct {
	Prompt  string
	Details []string
	No      bool
}

// Reset implements Working
func (w *ConfirmWorking) Reset() {
	w.No = false
}

// RequestConfirm asks a yes/no question. Details are extra lines shown with the prompt.
func (s *Slot) RequestConfirm(prompt string, details []string) (bool, bool) {
	v, ok := s.request(ConfirmKind, func() Working {
		return &ConfirmWorking{Prompt: prompt, Details: append([]string{}, details...)}
	})
	if !ok {
		return false, false
	}

	return v.(bool), true
}
