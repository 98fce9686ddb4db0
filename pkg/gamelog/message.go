package gamelog

import (
	"fmt"
	"strings"
	"time"

	"crazyrules/pkg/deck"
	"crazyrules/pkg/rules"

	"github.com/google/uuid"
)

// Message is an entry in the game log.
// A "{}" in Message is replaced by the labels of PlayerIDs when the message is rendered.
type Message struct {
	UUID      string           `json:"uuid"`
	PlayerIDs []rules.PlayerID `json:"playerIds"`
	Cards     []deck.Card      `json:"cards"`
	Message   string           `json:"message"`
	Time      time.Time        `json:"time"`
}

// NewMessage returns a message about a single player
func NewMessage(player rules.PlayerID, format string, a ...interface{}) *Message {
	return NewMessageWithPlayers([]rules.PlayerID{player}, format, a...)
}

// NewMessageWithPlayers returns a message about several players
func NewMessageWithPlayers(players []rules.PlayerID, format string, a ...interface{}) *Message {
	return &Message{
		UUID:      uuid.New().String(),
		PlayerIDs: append([]rules.PlayerID{}, players...),
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleMessage returns a general statement that isn't about any player
func SimpleMessage(format string, a ...interface{}) *Message {
	return NewMessageWithPlayers(nil, format, a...)
}

// WithCards attaches cards to the message
func (m *Message) WithCards(cards ...deck.Card) *Message {
	m.Cards = append(m.Cards, cards...)
	return m
}

// Text renders the message with player labels substituted
func (m *Message) Text() string {
	if !strings.Contains(m.Message, "{}") {
		return m.Message
	}

	labels := make([]string, len(m.PlayerIDs))
	for i, id := range m.PlayerIDs {
		labels[i] = id.String()
	}

	return strings.Replace(m.Message, "{}", strings.Join(labels, ", "), 1)
}
