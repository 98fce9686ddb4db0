package game

import (
	"crazyrules/internal/invariant"
	"crazyrules/pkg/gamelog"
	"crazyrules/pkg/rules"
	"crazyrules/pkg/sound"

	"github.com/sirupsen/logrus"
)

// Options are options for creating a new round
type Options struct {
	// Logger receives developer logging. Defaults to the standard logrus logger
	Logger logrus.FieldLogger
	// OnLog receives the text of every game log message
	OnLog func(msg string)
	// OnViolation receives invariant violations. Defaults to panicking
	OnViolation invariant.Hook
	// Sound receives sound events. Defaults to sound.Discard
	Sound sound.Sink

	// Humans are the seats controlled by input. Every other seat is a CPU
	Humans []rules.PlayerID
	// Log is the game log to write to. A new log of LogCapacity is created when nil
	Log         *gamelog.Log
	LogCapacity int
	// RuleOptions is how many rule changes the winner chooses from. Zero skips the rule change
	RuleOptions int
	// Rules are the rules of the round. Default rules are used when nil
	Rules *rules.Rules
	// CheckConservation verifies that every card is accounted for after each quiescent frame
	CheckConservation bool
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		LogCapacity:       gamelog.DefaultCapacity,
		RuleOptions:       3,
		CheckConservation: true,
	}
}
