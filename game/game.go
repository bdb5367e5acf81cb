package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	// Number of rings, including the center field
	Size int

	// Snapshot to load the board layout from. Takes precedence over Size.
	Snapshot *BoardSnapshot
	// Whether to start without the classic Hexxagon layout
	EmptyBoard bool

	// Fields closer than this to a selected piece are move options
	MoveRange int

	WindowWidth, WindowHeight float64

	// Transparency of annotations while current
	AnnotationBaseAlpha float64
	// Time a retired annotation takes to fade out
	AnnotationDuration time.Duration

	// Path to directory where snapshots of the board are saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:                DefaultBoardSize,
		Snapshot:            nil,
		EmptyBoard:          false,
		MoveRange:           DefaultMoveRange,
		WindowWidth:         640,
		WindowHeight:        480,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  200 * time.Millisecond,
	}
}

// CreateBoard builds the board the game starts with
func (config GameConfig) CreateBoard() (*Board, error) {
	switch {
	case config.Snapshot != nil:
		return config.Snapshot.CreateBoard()
	case config.EmptyBoard:
		return NewBoard(config.Size, nil)
	default:
		return NewBoard(config.Size, ClassicLayout(config.Size))
	}
}

// SaveSnapshot saves the board into SavedSnapshotsDir, logging the outcome
func (config GameConfig) SaveSnapshot(board *Board) {
	if config.SavedSnapshotsDir == "" {
		logrus.Info("no snapshot directory configured; not saving")
		return
	}

	path, err := SaveSnapshot(config.SavedSnapshotsDir, board, time.Now())
	if err != nil {
		logrus.WithError(err).Error("saving board snapshot")
		return
	}
	logrus.WithField("path", path).Info("saved board snapshot")
}
