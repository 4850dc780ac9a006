package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/notation"
	"github.com/gridchess/gridchess/quadtree"
	"github.com/gridchess/gridchess/session"
)

// ErrQuit is returned by a Source when the user asks to leave.
var ErrQuit = errors.New("quit")

// A Source produces one tick's worth of intents per call.
type Source interface {
	Next() (session.Intents, error)
}

// A Display shows a fully rendered frame.
type Display interface {
	Show(frame string)
}

type WriterDisplay struct {
	Out io.Writer
}

func (w *WriterDisplay) Show(frame string) {
	io.WriteString(w.Out, frame)
}

type GlyphSet [chess.NumKinds]string

type Glyphs struct {
	White, Black GlyphSet
}

var DefaultGlyphs = Glyphs{
	White: GlyphSet{"P", "N", "B", "R", "Q", "K"},
	Black: GlyphSet{"p", "n", "b", "r", "q", "k"},
}

var UnicodeGlyphs = Glyphs{
	White: GlyphSet{"♙", "♘", "♗", "♖", "♕", "♔"},
	Black: GlyphSet{"♟", "♞", "♝", "♜", "♛", "♚"},
}

func (g *Glyphs) glyph(c chess.Color, k chess.Kind) string {
	switch c {
	case chess.White:
		return g.White[k]
	case chess.Black:
		return g.Black[k]
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

type CLI struct {
	Session *session.Session
	Glyphs  *Glyphs
	Display Display
	In      Source

	moves []string
}

// Play runs the session until the game ends or the source quits. A
// source hitting EOF counts as quitting.
func (c *CLI) Play() error {
	for {
		c.render()
		if c.Session.Over() {
			return nil
		}
		in, err := c.In.Next()
		if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !in.Any() {
			continue
		}
		if ev, ok := c.Session.Tick(in); ok {
			c.moves = append(c.moves, FormatEvent(c.Session, ev))
		}
	}
}

// Moves returns the moves committed so far, one per line.
func (c *CLI) Moves() []string {
	return c.moves
}

func (c *CLI) render() {
	var buf bytes.Buffer
	RenderBoard(c.Glyphs, &buf, c.Session)
	if len(c.moves) > 0 {
		fmt.Fprintf(&buf, "last: %s\n", c.moves[len(c.moves)-1])
	}
	if c.Session.Over() {
		fmt.Fprintf(&buf, "Game Over! %s has no way out.\n", c.Session.Active())
	}
	c.Display.Show(buf.String())
}

func FormatEvent(s *session.Session, ev session.Event) string {
	m := notation.FormatMove(s.Position().Geometry(), notation.Move{
		Kind: ev.Kind, From: ev.From, To: ev.To, Capture: ev.Capture != nil,
	})
	if ev.Color == chess.White {
		return fmt.Sprintf("%d. %s", (ev.Ply+1)/2, m)
	}
	return fmt.Sprintf("%d. ... %s", (ev.Ply+1)/2, m)
}

// RenderBoard draws the position top row first. The active player's
// selected piece is drawn as <X>, candidate cells carry a *, and the
// pending destination while moving is drawn in parentheses.
func RenderBoard(g *Glyphs, out io.Writer, s *session.Session) {
	if g == nil {
		g = &DefaultGlyphs
	}
	p := s.Position()
	geo := p.Geometry()
	pl := s.Player(s.Active())

	marks := make(map[int]bool)
	for _, c := range s.Candidates() {
		marks[c.Cell] = true
	}
	pending := -1
	if c, ok := s.Pending(); ok {
		pending = c.Cell
	}
	selected := -1
	if pl.Selected() != chess.NoPiece {
		selected = p.Piece(s.Active(), pl.Selected()).Cell
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play: %s]\n", s.Active(), pl.Mode())
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	row := make([]string, geo.Cols)
	for y := geo.Rows - 1; y >= 0; y-- {
		for x := range row {
			row[x] = ""
		}
		for _, ref := range p.PiecesIn(quadtree.Rect{Row: y, Col: 0, Rows: 1, Cols: geo.Cols}) {
			pc := p.Piece(ref.Color, ref.ID)
			row[pc.Cell%geo.Cols] = g.glyph(ref.Color, pc.Kind)
		}
		fmt.Fprintf(w, "%d.\t", y+1)
		for x, txt := range row {
			cell := x + y*geo.Cols
			if marks[cell] {
				txt += "*"
			}
			switch cell {
			case selected:
				txt = "<" + txt + ">"
			case pending:
				txt = "(" + txt + ")"
			default:
				txt = "[" + txt + "]"
			}
			fmt.Fprintf(w, "%s\t", txt)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < geo.Cols; x++ {
		fmt.Fprintf(w, "%c.\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()

	fmt.Fprintf(out, "score: W:%d B:%d\n",
		s.Player(chess.White).Score(), s.Player(chess.Black).Score())
	if selected >= 0 {
		pc := p.Piece(s.Active(), pl.Selected())
		var dests []string
		for _, c := range s.Candidates() {
			dests = append(dests, notation.CellName(geo, c.Cell))
		}
		fmt.Fprintf(out, "selected: %s %s -> %s\n",
			notation.KindName(pc.Kind),
			notation.CellName(geo, pc.Cell),
			strings.Join(dests, " "))
	}
}
