package game

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/they4kman/hexxagon/hex"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot describes a board layout: its size and every field whose
// state differs from Empty
type BoardSnapshot struct {
	Size   int             `yaml:"size"`
	Fields []FieldSnapshot `yaml:"fields"`
}

type FieldSnapshot struct {
	X     int           `yaml:"x"`
	Y     int           `yaml:"y"`
	State HexFieldState `yaml:"state"`
}

func (field FieldSnapshot) Coordinate() hex.Coordinate {
	return hex.New(field.X, field.Y)
}

func (board *Board) Snapshot() *BoardSnapshot {
	snapshot := BoardSnapshot{Size: board.size}
	for _, field := range board.fields {
		if field.state != Empty {
			snapshot.Fields = append(snapshot.Fields, FieldSnapshot{
				X:     field.coordinate.X(),
				Y:     field.coordinate.Y(),
				State: field.state,
			})
		}
	}

	sort.Slice(snapshot.Fields, func(i, j int) bool {
		return snapshot.Fields[i].Coordinate().Less(snapshot.Fields[j].Coordinate())
	})
	return &snapshot
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing board snapshot")
	}
	return string(out), nil
}

// InitialStates returns the snapshot's fields as a map for NewBoard
func (snapshot *BoardSnapshot) InitialStates() map[hex.Coordinate]HexFieldState {
	states := make(map[hex.Coordinate]HexFieldState, len(snapshot.Fields))
	for _, field := range snapshot.Fields {
		states[field.Coordinate()] = field.State
	}
	return states
}

func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	board, err := NewBoard(snapshot.Size, nil)
	if err != nil {
		return nil, err
	}

	for _, field := range snapshot.Fields {
		if !board.Contains(field.Coordinate()) {
			return nil, errors.Errorf("field %v lies outside a board of size %d", field.Coordinate(), snapshot.Size)
		}
	}

	return NewBoard(snapshot.Size, snapshot.InitialStates())
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.UnmarshalStrict([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading board snapshot")
	}

	snapshot, err := LoadSnapshot(string(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return snapshot, nil
}

// SaveSnapshot writes the board's snapshot into dir, creating it if needed,
// and returns the path of the written file
func SaveSnapshot(dir string, board *Board, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "inspecting snapshot directory")
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", errors.Wrap(err, "creating snapshot directory")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, snapshotFilename(t))
	// TODO: prevent duplicate filenames when saving twice within a second
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", errors.Wrap(err, "writing board snapshot")
	}
	return path, nil
}

func snapshotFilename(t time.Time) string {
	return t.Format("20060102_150405_") + "board.yaml"
}
