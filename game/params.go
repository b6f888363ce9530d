package game

import "fmt"

// MaxDimension bounds width and height (exclusive) of a playable field.
const MaxDimension = 50

type Params struct {
	Width  int
	Height int
	Mines  int
}

var DefaultParams = Params{Width: 10, Height: 10, Mines: 10}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d, %d mines", p.Width, p.Height, p.Mines)
}

type InvalidParamsError struct {
	Params Params
}

func (e *InvalidParamsError) Error() string {
	p := e.Params
	switch {
	case p.Width <= 0 || p.Width >= MaxDimension:
		return fmt.Sprintf("width must be between 1 and %d, got %d", MaxDimension-1, p.Width)
	case p.Height <= 0 || p.Height >= MaxDimension:
		return fmt.Sprintf("height must be between 1 and %d, got %d", MaxDimension-1, p.Height)
	case p.Mines < 0:
		return fmt.Sprintf("cannot play with negative amount of mines: %d", p.Mines)
	case p.Mines >= p.Width*p.Height:
		return fmt.Sprintf("not enough space for %d mines (%d >= %d * %d)", p.Mines, p.Mines, p.Width, p.Height)
	default:
		return "invalid game params"
	}
}

// Validate checks the params against the limits offered to players. These
// are stricter than what the engine accepts: at least one cell must be safe.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Width >= MaxDimension ||
		p.Height <= 0 || p.Height >= MaxDimension ||
		p.Mines < 0 || p.Mines >= p.Width*p.Height {
		return &InvalidParamsError{Params: p}
	}
	return nil
}
