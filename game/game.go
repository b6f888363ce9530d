package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/minefield/mines"
)

type MoveType byte

const (
	RevealMove MoveType = 0x01
	MarkMove   MoveType = 0x02
)

type Move struct {
	X    int
	Y    int
	Type MoveType
}

func (move Move) String() string {
	msg := fmt.Sprintf("(%d, %d) ", move.X, move.Y)
	switch move.Type {
	case RevealMove:
		return msg + "Reveal"
	case MarkMove:
		return msg + "Mark"
	default:
		return msg + "UNKNOWN"
	}
}

type MoveResultType int

const (
	NoChange MoveResultType = iota
	MineBlown
	CellRevealed
	Marked
	GameWon
)

type MoveResult struct {
	Result       MoveResultType
	UpdatedCells []CellUpdate
}

type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

var ErrGameOver = errors.New("game is over")

type InvalidMoveError struct {
	Move   Move
	Width  int
	Height int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("move out of range - %s - field (%d, %d)", e.Move, e.Width, e.Height)
}

// Game is one round played on a MineField. It owns the win/loss decision
// and the flag/question marks, neither of which the field knows about.
type Game struct {
	params  Params
	field   *mines.MineField
	marks   []Mark
	visible int
	flags   int
	state   State
	log     logrus.FieldLogger
}

type options struct {
	log logrus.FieldLogger
	rng *rand.Rand
}

type Option func(*options)

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithRand sets the random source used to lay out mines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes the sequence of generated fields reproducible. Every
// round started with the option draws from the same seeded source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}
	return o
}

// New validates params and starts a round on a freshly generated field.
func New(params Params, opts ...Option) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	var fieldOpts []mines.Option
	if o.rng != nil {
		fieldOpts = append(fieldOpts, mines.WithRand(o.rng))
	}
	field, err := mines.New(params.Width, params.Height, params.Mines, fieldOpts...)
	if err != nil {
		return nil, err
	}
	return newGame(field, o), nil
}

// FromField starts a round on an existing field, e.g. one built with
// mines.FromLayout. The field must not have been revealed yet.
func FromField(field *mines.MineField, opts ...Option) *Game {
	return newGame(field, buildOptions(opts))
}

func newGame(field *mines.MineField, o options) *Game {
	g := &Game{
		params: Params{Width: field.Width(), Height: field.Height(), Mines: field.MineCount()},
		field:  field,
		marks:  make([]Mark, field.Area()),
		state:  Playing,
		log:    o.log,
	}
	g.log.WithFields(logrus.Fields{
		"width":  g.params.Width,
		"height": g.params.Height,
		"mines":  g.params.Mines,
	}).Debug("round started")
	return g
}

func (g *Game) Params() Params {
	return g.params
}

func (g *Game) Field() *mines.MineField {
	return g.field
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) VisibleCount() int {
	return g.visible
}

func (g *Game) Flags() int {
	return g.flags
}

// RemainingMines is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (g *Game) RemainingMines() int {
	return g.field.MineCount() - g.flags
}

func (g *Game) Mark(x, y int) Mark {
	return g.marks[y*g.params.Width+x]
}

func (g *Game) MakeMove(move Move) (*MoveResult, error) {
	switch move.Type {
	case RevealMove:
		return g.Reveal(move.X, move.Y)
	case MarkMove:
		return g.CycleMark(move.X, move.Y)
	default:
		return nil, fmt.Errorf("invalid move type %x", move.Type)
	}
}

func (g *Game) checkMove(move Move) error {
	if g.field.IsOutOfBounds(move.X, move.Y) {
		return &InvalidMoveError{Move: move, Width: g.params.Width, Height: g.params.Height}
	}
	if g.state != Playing {
		return ErrGameOver
	}
	return nil
}

func (g *Game) Reveal(x, y int) (*MoveResult, error) {
	if err := g.checkMove(Move{X: x, Y: y, Type: RevealMove}); err != nil {
		return nil, err
	}
	outcome := g.field.Reveal(x, y)
	switch outcome.Kind {
	case mines.AlreadyVisible:
		return &MoveResult{Result: NoChange}, nil
	case mines.Mine:
		g.clearMarks(outcome.Cells)
		g.state = Lost
		g.log.WithFields(logrus.Fields{"x": x, "y": y}).Info("mine blown, round lost")
		return &MoveResult{Result: MineBlown, UpdatedCells: g.updatesFor(outcome.Cells)}, nil
	}

	g.clearMarks(outcome.Cells)
	g.visible += outcome.Cleared()
	g.log.WithFields(logrus.Fields{
		"x":        x,
		"y":        y,
		"revealed": outcome.Cleared(),
		"visible":  g.visible,
	}).Debug("cells revealed")

	result := CellRevealed
	if g.field.Area()-g.visible == g.field.MineCount() {
		result = GameWon
		g.state = Won
		g.log.WithField("visible", g.visible).Info("all safe cells revealed, round won")
	}
	return &MoveResult{Result: result, UpdatedCells: g.updatesFor(outcome.Cells)}, nil
}

// CycleMark advances the mark of a hidden cell: none, flag, question, none.
func (g *Game) CycleMark(x, y int) (*MoveResult, error) {
	if err := g.checkMove(Move{X: x, Y: y, Type: MarkMove}); err != nil {
		return nil, err
	}
	if g.field.IsVisible(x, y) {
		return &MoveResult{Result: NoChange}, nil
	}
	i := y*g.params.Width + x
	prev := g.marks[i]
	next := prev.Next()
	g.marks[i] = next
	if next == Flagged {
		g.flags++
	} else if prev == Flagged {
		g.flags--
	}
	g.log.WithFields(logrus.Fields{"x": x, "y": y, "mark": next}).Debug("cell marked")
	cell := mines.Coord{X: x, Y: y}
	return &MoveResult{Result: Marked, UpdatedCells: g.updatesFor([]mines.Coord{cell})}, nil
}

func (g *Game) clearMarks(cells []mines.Coord) {
	for _, c := range cells {
		i := c.Y*g.params.Width + c.X
		if g.marks[i] == Flagged {
			g.flags--
		}
		g.marks[i] = Unmarked
	}
}
