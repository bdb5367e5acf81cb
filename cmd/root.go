package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/hexxagon/game"
	"github.com/they4kman/hexxagon/ui"
)

var gameConfig = game.NewGameConfig()
var snapshotPath string
var logLevel = logrus.InfoLevel

var rootCmd = &cobra.Command{
	Use:   "hexxagon",
	Short: "Show a Hexxagon board",
	Long: `hexxagon draws a hexagonal Hexxagon board and lets you pick up
pieces to see where they could move.

Run with no arguments for the classic layout
	hexxagon

Load a layout saved earlier
	hexxagon --snapshot snapshots/20260101_120000_board.yaml
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetLevel(logLevel)

		if snapshotPath != "" {
			snapshot, err := game.LoadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		if gameConfig.Snapshot == nil && gameConfig.Size < 1 {
			return fmt.Errorf("board size must be at least 1, got %d", gameConfig.Size)
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = ui.Run(gameConfig)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("hexxagon failed")
		os.Exit(1)
	}
}

type logLevelValue logrus.Level

var _ pflag.Value = (*logLevelValue)(nil)

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return fmt.Errorf("invalid log level %q", value)
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Size, "size", "s", game.DefaultBoardSize, "Number of rings of the board, counting the center field")
	rootCmd.Flags().IntVarP(&gameConfig.MoveRange, "range", "r", game.DefaultMoveRange, "Fields closer than this to a selected piece are move options")
	rootCmd.Flags().BoolVar(&gameConfig.EmptyBoard, "empty", false, "Start with every field empty instead of the classic layout")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board layout from a YAML snapshot")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-dir", "", "Directory where snapshots are saved when pressing S")
	rootCmd.Flags().Float64VarP(&gameConfig.WindowWidth, "width", "w", 640, "Width of the window, in pixels")
	rootCmd.Flags().Float64VarP(&gameConfig.WindowHeight, "height", "h", 480, "Height of the window, in pixels")
	rootCmd.Flags().Var(newLogLevelValue(logrus.InfoLevel, &logLevel), "log-level", `Logging verbosity.
one of: panic, fatal, error, warn, info, debug`)
}
