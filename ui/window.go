package ui

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexxagon/game"
	"github.com/they4kman/hexxagon/hex"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	headerHeight = 30
	boardMargin  = 10
)

var fieldColors = map[game.HexFieldState]pixel.RGBA{
	game.Disabled: pixel.ToRGBA(colornames.Dimgray),
	game.Empty:    pixel.ToRGBA(colornames.Whitesmoke),
	game.Player1:  pixel.ToRGBA(colornames.Crimson),
	game.Player2:  pixel.ToRGBA(colornames.Royalblue),
}

var annotationColors = map[game.AnnotationType]pixel.RGBA{
	game.AnnotateSelected:   pixel.RGB(1, 1, 0),
	game.AnnotateMoveOption: pixel.RGB(0, 1, 0),
}

// Run opens the game window and blocks until it is closed. It must be called
// from within pixelgl.Run.
func Run(config game.GameConfig) error {
	board, err := config.CreateBoard()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"size":   board.Size(),
		"fields": board.FieldCount(),
	}).Info("starting game")

	cfg := pixelgl.WindowConfig{
		Title:  "Hexxagon",
		Bounds: pixel.R(0, 0, config.WindowWidth, config.WindowHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	layout := boardLayout(board.Size(), win.Bounds())
	fields := board.Fields()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	topLeft := win.Bounds().Vertices()[1]
	fieldPosText := text.New(topLeft.Add(pixel.V(20, -20)), basicAtlas)
	fieldPosText.Color = colornames.Darkcyan

	selection := game.NewSelection(board, config.MoveRange)
	annotations := game.NewAnnotations(config.AnnotationDuration)
	imd := imdraw.New(nil)

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)
		now := time.Now()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		var hovered *game.HexField
		if win.MouseInsideWindow() {
			if field, ok := board.FieldAt(layout.FromPixel(win.MousePosition())); ok {
				hovered = &field
			}
		}

		fieldPosText.Clear()
		if hovered != nil {
			fmt.Fprintf(fieldPosText, "%v %v", hovered.Coordinate(), hovered.State())
			fieldPosText.Draw(win, pixel.IM)
		}

		imd.Clear()
		for _, field := range fields {
			drawField(imd, layout, field)
		}

		annotations.Expire(now)
		for i := 0; i < annotations.Len(); i++ {
			annotation := annotations.At(i)
			alpha := config.AnnotationBaseAlpha * annotations.Alpha(annotation, now)

			imd.Color = annotationColors[annotation.Type].Mul(pixel.Alpha(alpha))
			imd.Push(layout.Corners(annotation.Coordinate)...)
			imd.Polygon(0) // 0 = filled
		}

		if hovered != nil {
			imd.Color = colornames.Darkcyan
			imd.Push(layout.Corners(hovered.Coordinate())...)
			imd.Polygon(3)
		}
		imd.Draw(win)

		if action, ok := inputAction(win, hovered); ok && selection.Apply(action) {
			annotations.Annotate(selection, now)
		}

		// Save a snapshot of the board with S
		if win.JustPressed(pixelgl.KeyS) {
			config.SaveSnapshot(board)
		}
	}

	return nil
}

// boardLayout fits the board below the header, inside a margin
func boardLayout(size int, bounds pixel.Rect) hex.Layout {
	return hex.FitLayout(size, pixel.R(
		bounds.Min.X+boardMargin,
		bounds.Min.Y+boardMargin,
		bounds.Max.X-boardMargin,
		bounds.Max.Y-headerHeight,
	))
}

func drawField(imd *imdraw.IMDraw, layout hex.Layout, field game.HexField) {
	corners := layout.Corners(field.Coordinate())

	imd.Color = fieldColors[field.State()]
	imd.Push(corners...)
	imd.Polygon(0)

	imd.Color = colornames.Black
	imd.Push(corners...)
	imd.Polygon(1)
}

// inputAction translates this frame's raw input into a selection command.
// Left click selects the hovered field; a click outside the board, right
// click or Escape cancels.
func inputAction(win *pixelgl.Window, hovered *game.HexField) (game.FieldAction, bool) {
	switch {
	case win.JustPressed(pixelgl.MouseButtonLeft) && hovered != nil:
		return game.SelectField(hovered.Coordinate()), true
	case win.JustPressed(pixelgl.MouseButtonLeft),
		win.JustPressed(pixelgl.MouseButtonRight),
		win.JustPressed(pixelgl.KeyEscape):
		return game.CancelSelection(), true
	default:
		return game.FieldAction{}, false
	}
}
