// Package gamelog keeps the most recent game log messages and lays them out for the log window.
package gamelog

import "strings"

// DefaultCapacity is the number of messages kept when no capacity is configured
const DefaultCapacity = 64

// Log is a fixed capacity ring buffer of messages. Once full, the oldest message is evicted.
type Log struct {
	messages []*Message
	start    int
	count    int
}

// New returns a log holding at most capacity messages
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{messages: make([]*Message, capacity)}
}

// Push adds messages to the log
func (l *Log) Push(messages ...*Message) {
	for _, m := range messages {
		capacity := len(l.messages)
		if l.count < capacity {
			l.messages[(l.start+l.count)%capacity] = m
			l.count++
			continue
		}

		l.messages[l.start] = m
		l.start = (l.start + 1) % capacity
	}
}

// Len returns the number of messages held
func (l *Log) Len() int {
	return l.count
}

// Capacity returns the maximum number of messages held
func (l *Log) Capacity() int {
	return len(l.messages)
}

// Messages returns the messages, oldest first
func (l *Log) Messages() []*Message {
	messages := make([]*Message, l.count)
	for i := range messages {
		messages[i] = l.messages[(l.start+i)%len(l.messages)]
	}

	return messages
}

// Last returns the newest message or nil
func (l *Log) Last() *Message {
	if l.count == 0 {
		return nil
	}

	return l.messages[(l.start+l.count-1)%len(l.messages)]
}

// Lines returns every message reflowed to width characters, oldest first
func (l *Log) Lines(width int) []string {
	lines := make([]string, 0, l.count)
	for _, m := range l.Messages() {
		lines = append(lines, Reflow(m.Text(), width)...)
	}

	return lines
}

// Pages returns the number of pages of height lines
func (l *Log) Pages(width, height int) int {
	if height <= 0 {
		return 0
	}

	n := len(l.Lines(width))
	return (n + height - 1) / height
}

// Page returns page number page of height lines. Negative pages count back from the newest page,
// so -1 is the page holding the newest message. An out of range page is empty.
func (l *Log) Page(width, height, page int) []string {
	if height <= 0 {
		return nil
	}

	lines := l.Lines(width)
	pages := (len(lines) + height - 1) / height
	if page < 0 {
		page += pages
	}

	if page < 0 || page >= pages {
		return []string{}
	}

	end := (page + 1) * height
	if end > len(lines) {
		end = len(lines)
	}

	return lines[page*height : end]
}

// Reflow breaks s into lines of at most width runes, breaking between words where possible
func Reflow(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}

			lines = append(lines, string(w[:width]))
			w = w[width:]
		}

		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}

	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}

	return lines
}
