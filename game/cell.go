package game

import (
	"fmt"

	"github.com/they4kman/hexxagon/hex"
)

// HexField is a single field of a Board
type HexField struct {
	coordinate hex.Coordinate
	state      HexFieldState
}

func (field HexField) String() string {
	return fmt.Sprintf("HexField(%v, %v)", field.coordinate, field.state)
}

func (field HexField) Coordinate() hex.Coordinate {
	return field.coordinate
}

func (field HexField) State() HexFieldState {
	return field.state
}

func (field HexField) IsEmpty() bool {
	return field.state == Empty
}
