package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/hexxagon/hex"
	"github.com/they4kman/hexxagon/util/collections"
)

type SelectionState int

const (
	Idle SelectionState = iota
	Selected
)

type Action int

const (
	Select Action = iota
	Cancel
)

// FieldAction is a discrete input command for a Selection
type FieldAction struct {
	coordinate hex.Coordinate
	action     Action
}

func SelectField(coordinate hex.Coordinate) FieldAction {
	return FieldAction{coordinate: coordinate, action: Select}
}

func CancelSelection() FieldAction {
	return FieldAction{action: Cancel}
}

func (action FieldAction) String() string {
	if action.action == Cancel {
		return "Cancel"
	}
	return fmt.Sprintf("Select%v", action.coordinate)
}

// Selection tracks which piece, if any, the player has picked up.
//
// Idle --Select(piece)--> Selected(piece)
// Selected(a) --Select(b), b another piece--> Selected(b)
// Selected --Select(anything else) or Cancel--> Idle
type Selection struct {
	board     *Board
	moveRange int

	state    SelectionState
	selected hex.Coordinate
	options  collections.Set[hex.Coordinate]
}

func NewSelection(board *Board, moveRange int) *Selection {
	return &Selection{
		board:     board,
		moveRange: moveRange,
		state:     Idle,
		options:   make(collections.Set[hex.Coordinate]),
	}
}

func (selection *Selection) State() SelectionState {
	return selection.state
}

// Selected returns the selected coordinate, and whether anything is selected
func (selection *Selection) Selected() (hex.Coordinate, bool) {
	return selection.selected, selection.state == Selected
}

// Options returns the move options of the selected piece, in board order
func (selection *Selection) Options() []hex.Coordinate {
	options := make([]hex.Coordinate, 0, len(selection.options))
	for _, field := range selection.board.fields {
		if selection.options.Contains(field.coordinate) {
			options = append(options, field.coordinate)
		}
	}
	return options
}

func (selection *Selection) IsOption(coordinate hex.Coordinate) bool {
	return selection.options.Contains(coordinate)
}

// Apply performs a single transition, and returns whether the state changed
func (selection *Selection) Apply(action FieldAction) bool {
	previousState, previous := selection.state, selection.selected

	switch action.action {
	case Cancel:
		selection.reset()
	case Select:
		field, onBoard := selection.board.FieldAt(action.coordinate)
		isReselect := selection.state == Selected && action.coordinate == selection.selected

		if onBoard && field.state.IsPlayer() && !isReselect {
			selection.selectField(field)
		} else {
			selection.reset()
		}
	}

	changed := previousState != selection.state || previous != selection.selected
	if changed {
		logrus.WithFields(logrus.Fields{
			"action":   action,
			"state":    selection.state,
			"selected": selection.selected,
			"options":  len(selection.options),
		}).Debug("selection changed")
	}
	return changed
}

func (selection *Selection) selectField(field HexField) {
	selection.state = Selected
	selection.selected = field.coordinate
	selection.options = make(collections.Set[hex.Coordinate])
	for _, option := range selection.board.PossibleMoveOptions(field.coordinate, selection.moveRange) {
		selection.options.Add(option)
	}
}

func (selection *Selection) reset() {
	selection.state = Idle
	selection.selected = hex.Origin
	selection.options = make(collections.Set[hex.Coordinate])
}

func (state SelectionState) String() string {
	switch state {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("SelectionState(%d)", int(state))
	}
}
