package game

import (
	"crazyrules/internal/rng"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/ui"

	"github.com/sirupsen/logrus"
)

// Session plays round after round with one generator and one game log
type Session struct {
	options    Options
	carryRules bool
	rng        *rng.Xorshift
	state      *State
	round      int
}

// NewSession deals the first round. With carryRules every round starts with the rules the previous one ended with.
func NewSession(seed rng.Seed, opts Options, carryRules bool) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	if opts.Log == nil {
		opts.Log = gamelog.New(opts.LogCapacity)
	}

	s := &Session{
		options:    opts,
		carryRules: carryRules,
		rng:        rng.NewXorshift(seed),
	}

	if err := s.deal(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) deal() error {
	s.round++
	opts := s.options
	opts.Logger = s.options.Logger.WithField("round", s.round)
	switch {
	case s.carryRules && s.state != nil:
		opts.Rules = s.state.Rules()
	case opts.Rules != nil:
		opts.Rules = opts.Rules.Clone()
	}

	msg := gamelog.SimpleMessage("round %d", s.round)
	opts.Log.Push(msg)
	if opts.OnLog != nil {
		opts.OnLog(msg.Text())
	}

	state, err := New(s.rng, opts)
	if err != nil {
		return err
	}

	s.state = state
	return nil
}

// State returns the current round
func (s *Session) State() *State {
	return s.state
}

// Round returns the 1-based number of the current round
func (s *Session) Round() int {
	return s.round
}

// Update steps the current round
func (s *Session) Update(in ui.Input) {
	s.state.Update(in)
}

// NextRound replaces the finished round with a fresh deal
func (s *Session) NextRound() error {
	if !s.state.Done() {
		return ErrRoundNotOver
	}

	return s.deal()
}
