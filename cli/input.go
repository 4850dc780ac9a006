package cli

import (
	"bufio"
	"io"
	"unicode"

	"github.com/gridchess/gridchess/session"
)

// LineKeys maps typed characters to intents.
var LineKeys = map[rune]session.Intents{
	'a': {SelectPrev: true},
	'd': {SelectNext: true},
	'j': {CyclePrev: true},
	'l': {CycleNext: true},
	'm': {ToggleMode: true},
	'c': {CommitMove: true},
	't': {SwitchActivePlayer: true},
}

// LineInput reads intents from typed lines. Every character is its
// own tick, so "llc" cycles twice and then commits; 'q' quits.
// Unknown characters yield an empty tick.
type LineInput struct {
	in    *bufio.Reader
	queue []rune
}

func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{in: bufio.NewReader(r)}
}

func (l *LineInput) Next() (session.Intents, error) {
	for len(l.queue) == 0 {
		line, err := l.in.ReadString('\n')
		for _, r := range line {
			if !unicode.IsSpace(r) {
				l.queue = append(l.queue, unicode.ToLower(r))
			}
		}
		if err != nil && len(l.queue) == 0 {
			return session.Intents{}, err
		}
	}
	r := l.queue[0]
	l.queue = l.queue[1:]
	if r == 'q' {
		return session.Intents{}, ErrQuit
	}
	return LineKeys[r], nil
}
