package ui

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/they4kman/hexxagon/game"
	"github.com/they4kman/hexxagon/hex"
)

func TestBoardLayoutLeavesRoomForHeader(t *testing.T) {
	bounds := pixel.R(0, 0, 640, 480)
	layout := boardLayout(5, bounds)

	if layout.Origin != pixel.V(320, 230) {
		t.Fatalf("expected the board centered below the header, got %v", layout.Origin)
	}

	top := layout.ToPixel(hex.New(0, 4)).Y + layout.FieldHeight()/2
	if top > bounds.Max.Y-headerHeight+1e-9 {
		t.Fatalf("board reaches into the header: top at %v", top)
	}
}

func TestEveryStateHasAColor(t *testing.T) {
	for _, state := range game.HexFieldStates {
		if _, ok := fieldColors[state]; !ok {
			t.Errorf("no color for %v", state)
		}
	}
}
