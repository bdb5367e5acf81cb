package game

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexxagon/hex"
)

var ErrInvalidBoardSize = errors.New("invalid board size")

// Board is a hex-shaped board of concentric rings around the origin. Fields
// are kept in generation order: the center first, then ring after ring.
type Board struct {
	size   int
	fields []HexField
	index  map[hex.Coordinate]int
}

// Directions from the center to the six corners of a ring, in traversal order.
// Each ring edge runs from one corner to the next.
var ringCorners = []hex.Coordinate{
	hex.New(-1, 0),
	hex.New(0, -1),
	hex.New(1, -1),
	hex.New(1, 0),
	hex.New(0, 1),
	hex.New(-1, 1),
}

// NewBoard generates a board with size rings, counting the center field as
// the first. Fields listed in initial take that state; the rest start Empty.
func NewBoard(size int, initial map[hex.Coordinate]HexFieldState) (*Board, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidBoardSize, "size %d, must be at least 1", size)
	}

	coordinates := generateCoordinates(size)

	board := Board{
		size:   size,
		fields: make([]HexField, len(coordinates)),
		index:  make(map[hex.Coordinate]int, len(coordinates)),
	}

	for i, coordinate := range coordinates {
		state, ok := initial[coordinate]
		if !ok {
			state = Empty
		}
		board.fields[i] = HexField{coordinate: coordinate, state: state}
		board.index[coordinate] = i
	}

	for coordinate, state := range initial {
		if _, ok := board.index[coordinate]; !ok {
			logrus.WithFields(logrus.Fields{
				"coordinate": coordinate,
				"state":      state,
				"size":       size,
			}).Warn("ignoring initial state outside of the board")
		}
	}

	logrus.WithFields(logrus.Fields{
		"size":   size,
		"fields": len(board.fields),
	}).Debug("generated board")

	return &board, nil
}

// Rings share no fields, so each one is walked in its own goroutine and the
// results are joined in ring order.
func generateCoordinates(size int) []hex.Coordinate {
	rings := make([][]hex.Coordinate, size)
	rings[0] = []hex.Coordinate{hex.Origin}

	wg := sync.WaitGroup{}
	for ring := 1; ring < size; ring++ {
		wg.Add(1)
		go func(ring int) {
			defer wg.Done()
			rings[ring] = generateRing(ring)
		}(ring)
	}
	wg.Wait()

	coordinates := make([]hex.Coordinate, 0, fieldCountForSize(size))
	for _, ring := range rings {
		coordinates = append(coordinates, ring...)
	}
	return coordinates
}

func generateRing(ring int) []hex.Coordinate {
	coordinates := make([]hex.Coordinate, 0, 6*ring)
	for i, corner := range ringCorners {
		start := corner.Scale(ring)
		end := ringCorners[(i+1)%len(ringCorners)].Scale(ring)

		coordinates = append(coordinates, start)
		coordinates = append(coordinates, hex.Between(start, end)...)
	}
	return coordinates
}

func fieldCountForSize(size int) int {
	return 3*size*size - 3*size + 1
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) FieldCount() int {
	return len(board.fields)
}

// Fields returns a copy of all fields, in generation order
func (board *Board) Fields() []HexField {
	fields := make([]HexField, len(board.fields))
	copy(fields, board.fields)
	return fields
}

func (board *Board) Cells() <-chan HexField {
	out := make(chan HexField)
	go func() {
		for _, field := range board.fields {
			out <- field
		}
		close(out)
	}()
	return out
}

func (board *Board) FieldAt(coordinate hex.Coordinate) (HexField, bool) {
	if i, ok := board.index[coordinate]; ok {
		return board.fields[i], true
	}
	return HexField{}, false
}

func (board *Board) Contains(coordinate hex.Coordinate) bool {
	_, ok := board.index[coordinate]
	return ok
}

// PossibleMoveOptions lists the Empty fields closer to from than moveRange.
// from itself is included when it is Empty. A range of 0 yields no options.
func (board *Board) PossibleMoveOptions(from hex.Coordinate, moveRange int) []hex.Coordinate {
	options := make([]hex.Coordinate, 0)
	if moveRange == 0 {
		return options
	}

	for _, field := range board.fields {
		if field.IsEmpty() && from.Distance(field.coordinate) < moveRange {
			options = append(options, field.coordinate)
		}
	}
	return options
}

// ClassicLayout returns the starting position of a Hexxagon game: the six
// outer corners alternate between both players, and three fields around the
// center are disabled on boards of at least three rings.
func ClassicLayout(size int) map[hex.Coordinate]HexFieldState {
	layout := make(map[hex.Coordinate]HexFieldState)
	if size < 2 {
		return layout
	}

	if size >= 3 {
		layout[hex.New(1, 0)] = Disabled
		layout[hex.New(-1, 1)] = Disabled
		layout[hex.New(0, -1)] = Disabled
	}

	for i, corner := range ringCorners {
		state := Player1
		if i%2 == 1 {
			state = Player2
		}
		layout[corner.Scale(size-1)] = state
	}
	return layout
}
