package game

import (
	"fmt"
	"strings"
)

type HexFieldState int

const (
	Disabled HexFieldState = iota
	Empty
	Player1
	Player2
)

var HexFieldStates = []HexFieldState{
	Disabled,
	Empty,
	Player1,
	Player2,
}

var stateNames = map[HexFieldState]string{
	Disabled: "disabled",
	Empty:    "empty",
	Player1:  "player1",
	Player2:  "player2",
}

func (state HexFieldState) String() string {
	if name, ok := stateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("HexFieldState(%d)", int(state))
}

// IsPlayer reports whether a piece occupies the field
func (state HexFieldState) IsPlayer() bool {
	return state == Player1 || state == Player2
}

func ParseHexFieldState(name string) (HexFieldState, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for state, stateName := range stateNames {
		if stateName == name {
			return state, nil
		}
	}
	return Empty, fmt.Errorf("unknown field state %q", name)
}

func (state HexFieldState) MarshalYAML() (interface{}, error) {
	if _, ok := stateNames[state]; !ok {
		return nil, fmt.Errorf("unknown field state %d", int(state))
	}
	return state.String(), nil
}

func (state *HexFieldState) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParseHexFieldState(name)
	if err != nil {
		return err
	}
	*state = parsed
	return nil
}

const (
	// Default number of rings, including the center field
	DefaultBoardSize = 5

	// Fields closer than this are reachable from a selected piece
	DefaultMoveRange = 3
)
