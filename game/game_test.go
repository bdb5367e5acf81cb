package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/they4kman/hexxagon/hex"
)

func TestCreateBoardFromConfig(t *testing.T) {
	config := NewGameConfig()

	board, err := config.CreateBoard()
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if board.Size() != DefaultBoardSize {
		t.Errorf("expected size %d, got %d", DefaultBoardSize, board.Size())
	}
	if field, _ := board.FieldAt(hex.New(-4, 0)); field.State() != Player1 {
		t.Errorf("expected the classic layout, got %v", field)
	}

	config.EmptyBoard = true
	board, err = config.CreateBoard()
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if field, _ := board.FieldAt(hex.New(-4, 0)); field.State() != Empty {
		t.Errorf("expected an empty board, got %v", field)
	}
}

func TestCreateBoardPrefersSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.Size = 9
	config.Snapshot = &BoardSnapshot{
		Size:   2,
		Fields: []FieldSnapshot{{X: 0, Y: 0, State: Player2}},
	}

	board, err := config.CreateBoard()
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if board.FieldCount() != 7 {
		t.Fatalf("expected the snapshot's 7 fields, got %d", board.FieldCount())
	}
}

func TestCreateBoardInvalidSize(t *testing.T) {
	config := NewGameConfig()
	config.Size = 0

	if _, err := config.CreateBoard(); !errors.Is(err, ErrInvalidBoardSize) {
		t.Fatalf("expected ErrInvalidBoardSize, got %v", err)
	}
}

func TestSaveSnapshotWithoutDirectory(t *testing.T) {
	// must not panic or write anywhere
	NewGameConfig().SaveSnapshot(mustBoard(t, 2, nil))
}
