package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shape"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "shapefit",
	Short: "place rectangles into bezier shapes",
	Long: `This is the command-line application accompanying the shape package:
	- describe free and blocking bezier paths in YAML scene files,
	- query collisionless placements and horizontal ranges,
	- render the decomposed shape group to a PNG for debugging.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging of the decomposition")
}
