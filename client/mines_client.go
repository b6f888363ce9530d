package client

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/minefield/game"
)

type AppState int

const (
	GameStartMenu AppState = iota
	GameScreen
)

type Menu struct {
	widthEditor  widget.Editor
	heightEditor widget.Editor
	minesEditor  widget.Editor
	startButton  widget.Clickable
	errorText    string

	restartButton widget.Clickable
	newGameButton widget.Clickable

	state AppState
}

// cellTag identifies a board cell as a pointer event target.
type cellTag struct {
	x int
	y int
}

type GameManager struct {
	game    *game.Game
	params  game.Params
	tags    [][]cellTag
	options []game.Option
	log     logrus.FieldLogger
}

const (
	cellSpacing int = 2
	cellSizeDp      = 25
)

type pressedMouseButton byte

const (
	NoButton pressedMouseButton = iota
	PrimaryButton
	SecondaryButton
)

func (manager *GameManager) startGame(params game.Params) error {
	g, err := game.New(params, manager.options...)
	if err != nil {
		return err
	}
	manager.game = g
	manager.params = params
	manager.tags = make([][]cellTag, params.Width)
	for x := range params.Width {
		manager.tags[x] = make([]cellTag, params.Height)
		for y := range params.Height {
			manager.tags[x][y] = cellTag{x: x, y: y}
		}
	}
	manager.log.WithField("params", params.String()).Info("starting a new game")
	return nil
}

func createCell(cellSize int, manager *GameManager, tag *cellTag, q input.Source, th *material.Theme, gtx layout.Context) {
	ops := gtx.Ops
	size := image.Point{X: cellSize, Y: cellSize}
	r := image.Rectangle{Max: size}
	offset := image.Point{X: (cellSpacing + cellSize) * tag.x, Y: (cellSpacing + cellSize) * tag.y}
	defer op.Offset(offset).Push(ops).Pop()
	defer clip.Rect(r).Push(ops).Pop()
	event.Op(ops, tag)
	if err := handleCellPressed(ReadCellPresses(tag, q), tag, manager); err != nil {
		manager.log.WithError(err).Warn("failed to apply cell press")
	}
	c, mark := getCellColorAndMark(manager.game, tag.x, tag.y)

	paint.ColorOp{Color: c}.Add(ops)
	paint.PaintOp{}.Add(ops)
	drawMark(mark, cellSize, th, gtx)
}

func handleCellPressed(buttonPressed pressedMouseButton, tag *cellTag, manager *GameManager) error {
	var mType game.MoveType
	switch buttonPressed {
	case NoButton:
		return nil
	case PrimaryButton:
		mType = game.RevealMove
	case SecondaryButton:
		mType = game.MarkMove
	default:
		return fmt.Errorf("unknown button pressed")
	}
	if manager.game.State() != game.Playing {
		return nil
	}
	_, err := manager.game.MakeMove(game.Move{X: tag.x, Y: tag.y, Type: mType})
	return err
}

func ReadCellPresses(tag *cellTag, q input.Source) pressedMouseButton {
	for {
		ev, ok := q.Event(pointer.Filter{
			Target: tag,
			Kinds:  pointer.Press | pointer.Release,
		})
		if !ok {
			break
		}
		if x, ok := ev.(pointer.Event); ok {
			if x.Kind == pointer.Press {
				if x.Buttons.Contain(pointer.ButtonPrimary) {
					return PrimaryButton
				} else if x.Buttons.Contain(pointer.ButtonSecondary) {
					return SecondaryButton
				}
			}
		}
	}
	return NoButton
}

var (
	hiddenColor   = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	revealedColor = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	flagColor     = color.NRGBA{R: 0xAA, G: 0x00, B: 0x00, A: 0xFF}
	questionColor = color.NRGBA{R: 0xAA, G: 0x88, B: 0x00, A: 0xFF}
	mineColor     = color.NRGBA{R: 0xE0, G: 0x30, B: 0x30, A: 0xFF}
)

func getCellColorAndMark(g *game.Game, x, y int) (c color.NRGBA, mark string) {
	switch value := g.View(x, y); value {
	case game.Hidden:
		if g.State() == game.Lost && g.Field().IsMine(x, y) {
			return hiddenColor, "X"
		}
		return hiddenColor, ""
	case game.ShowFlag:
		return flagColor, "F"
	case game.ShowQuestion:
		return questionColor, "?"
	case game.ShowMine:
		return mineColor, "X"
	case game.ShowCount:
		return revealedColor, ""
	default:
		return revealedColor, strconv.Itoa(int(value))
	}
}

func drawMark(mark string, cellSize int, th *material.Theme, gtx layout.Context) {
	offset := image.Point{X: cellSize / 4, Y: cellSize / 8}
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	material.Label(th, unit.Sp(18), mark).Layout(gtx)
}

func drawConfigMenu(gtx layout.Context, th *material.Theme, menu *Menu) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{
			Axis:    layout.Vertical,
			Spacing: layout.SpaceAround,
		}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Editor(th, &menu.widthEditor, "Width").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Editor(th, &menu.heightEditor, "Height").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Editor(th, &menu.minesEditor, "Number of Mines").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Button(th, &menu.startButton, "Start").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Body1(th, menu.errorText).Layout(gtx)
			}),
		)
	})
}

func drawBoard(manager *GameManager, q input.Source, th *material.Theme, gtx layout.Context) layout.Dimensions {
	cellSize := gtx.Dp(unit.Dp(cellSizeDp))
	totalWidth := manager.params.Width*cellSize + (manager.params.Width-1)*cellSpacing
	totalHeight := manager.params.Height*cellSize + (manager.params.Height-1)*cellSpacing
	offset := image.Point{X: 10, Y: 10}
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	for col := range manager.params.Width {
		for row := range manager.params.Height {
			createCell(cellSize, manager, &manager.tags[col][row], q, th, gtx)
		}
	}
	return layout.Dimensions{
		Size: image.Point{X: totalWidth + offset.X*2, Y: totalHeight + offset.Y*2},
	}
}

func drawGameScreen(manager *GameManager, q input.Source, th *material.Theme, gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{
			Axis:      layout.Vertical,
			Spacing:   layout.SpaceAround,
			Alignment: layout.Middle,
		}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				status := fmt.Sprintf("Mines left: %d", manager.game.RemainingMines())
				return material.Body1(th, status).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return drawBoard(manager, q, th, gtx)
			}),
		)
	})
}

func drawEndGame(gtx layout.Context, th *material.Theme, menu *Menu, state game.State) layout.Dimensions {
	var txt string
	switch state {
	case game.Won:
		txt = "Game won"
	case game.Lost:
		txt = "Game lost"
	default:
		return layout.Dimensions{}
	}
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{
			Axis:      layout.Vertical,
			Spacing:   layout.SpaceAround,
			Alignment: layout.Middle,
		}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Label(th, unit.Sp(100), txt).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Button(th, &menu.restartButton, "Restart").Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Button(th, &menu.newGameButton, "New game").Layout(gtx)
			}),
		)
	})
}

func readParams(menu *Menu) (game.Params, error) {
	width, err := strconv.Atoi(menu.widthEditor.Text())
	if err != nil {
		return game.Params{}, fmt.Errorf("width is not a number")
	}
	height, err := strconv.Atoi(menu.heightEditor.Text())
	if err != nil {
		return game.Params{}, fmt.Errorf("height is not a number")
	}
	nMines, err := strconv.Atoi(menu.minesEditor.Text())
	if err != nil {
		return game.Params{}, fmt.Errorf("number of mines is not a number")
	}
	params := game.Params{Width: width, Height: height, Mines: nMines}
	return params, params.Validate()
}

func handleStartGameButton(menu *Menu, manager *GameManager) {
	params, err := readParams(menu)
	if err == nil {
		err = manager.startGame(params)
	}
	if err != nil {
		menu.errorText = err.Error()
		return
	}
	menu.errorText = ""
	menu.state = GameScreen
}

func handleRestartButton(menu *Menu, manager *GameManager) {
	if err := manager.startGame(manager.params); err != nil {
		manager.log.WithError(err).Error("failed to restart game")
		menu.state = GameStartMenu
	}
}

func handleMenuButtons(gtx layout.Context, menu *Menu, manager *GameManager) {
	if menu.startButton.Clicked(gtx) {
		handleStartGameButton(menu, manager)
	}
	if menu.restartButton.Clicked(gtx) {
		handleRestartButton(menu, manager)
	}
	if menu.newGameButton.Clicked(gtx) {
		menu.state = GameStartMenu
	}
}

func mainLoop(w *app.Window, th *material.Theme, menu *Menu, manager *GameManager) error {
	var ops op.Ops
	for {
		switch windowEvent := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, windowEvent)
			handleMenuButtons(gtx, menu, manager)
			switch menu.state {
			case GameStartMenu:
				drawConfigMenu(gtx, th, menu)
			case GameScreen:
				drawGameScreen(manager, windowEvent.Source, th, gtx)
				drawEndGame(gtx, th, menu, manager.game.State())
			}
			windowEvent.Frame(gtx.Ops)
		case app.DestroyEvent:
			return windowEvent.Err
		}
	}
}

// RunClient opens the game window with the settings menu filled in from
// params. It does not return.
func RunClient(params game.Params, log logrus.FieldLogger, opts ...game.Option) {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Minefield"))
		th := material.NewTheme()
		menu := &Menu{state: GameStartMenu}
		menu.widthEditor.SetText(strconv.Itoa(params.Width))
		menu.widthEditor.SingleLine = true
		menu.heightEditor.SetText(strconv.Itoa(params.Height))
		menu.heightEditor.SingleLine = true
		menu.minesEditor.SetText(strconv.Itoa(params.Mines))
		menu.minesEditor.SingleLine = true
		manager := &GameManager{
			options: opts,
			log:     log,
		}

		err := mainLoop(w, th, menu, manager)
		if err != nil {
			log.WithError(err).Error("window closed with error")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
