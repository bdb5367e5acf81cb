package game

import (
	"testing"

	"github.com/they4kman/hexxagon/hex"
)

func newClassicSelection(t *testing.T) *Selection {
	return NewSelection(mustBoard(t, 5, ClassicLayout(5)), DefaultMoveRange)
}

func TestSelectPiece(t *testing.T) {
	selection := newClassicSelection(t)
	if selection.State() != Idle {
		t.Fatalf("expected idle, got %v", selection.State())
	}

	if !selection.Apply(SelectField(hex.New(-4, 0))) {
		t.Fatal("selecting a piece should change the selection")
	}
	selected, ok := selection.Selected()
	if !ok || selected != hex.New(-4, 0) {
		t.Fatalf("expected (-4, 0) selected, got %v, %v", selected, ok)
	}
	if options := selection.Options(); len(options) != 8 {
		t.Fatalf("expected 8 move options, got %v", options)
	}
	if !selection.IsOption(hex.New(-3, 0)) || selection.IsOption(hex.New(-4, 0)) {
		t.Error("unexpected move options")
	}
}

func TestSelectNonPieceStaysIdle(t *testing.T) {
	selection := newClassicSelection(t)

	for _, c := range []hex.Coordinate{hex.Origin, hex.New(1, 0), hex.New(7, 0)} {
		if selection.Apply(SelectField(c)) {
			t.Errorf("selecting %v should not change the selection", c)
		}
		if selection.State() != Idle {
			t.Errorf("expected idle after selecting %v", c)
		}
	}
}

func TestDeselect(t *testing.T) {
	cases := []struct {
		name   string
		action FieldAction
	}{
		{"same piece", SelectField(hex.New(0, 4))},
		{"empty field", SelectField(hex.New(0, 3))},
		{"off board", SelectField(hex.New(0, 9))},
		{"cancel", CancelSelection()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			selection := newClassicSelection(t)
			selection.Apply(SelectField(hex.New(0, 4)))

			if !selection.Apply(tc.action) {
				t.Fatalf("%v should change the selection", tc.action)
			}
			if _, ok := selection.Selected(); ok || selection.State() != Idle {
				t.Fatalf("expected idle, got %v", selection.State())
			}
			if len(selection.Options()) != 0 {
				t.Fatalf("expected no move options, got %v", selection.Options())
			}
		})
	}
}

func TestReselectOtherPiece(t *testing.T) {
	selection := newClassicSelection(t)
	selection.Apply(SelectField(hex.New(-4, 0)))

	if !selection.Apply(SelectField(hex.New(0, -4))) {
		t.Fatal("selecting another piece should change the selection")
	}
	if selected, ok := selection.Selected(); !ok || selected != hex.New(0, -4) {
		t.Fatalf("expected (0, -4) selected, got %v", selected)
	}
}

func TestCancelWhileIdle(t *testing.T) {
	if newClassicSelection(t).Apply(CancelSelection()) {
		t.Fatal("cancelling while idle should not change anything")
	}
}
