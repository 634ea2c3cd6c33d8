package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/shape"
)

var bandVal string

// rangesCmd represents the ranges command.
var rangesCmd = &cobra.Command{
	Use:   "ranges SCENE",
	Short: "list the free horizontal ranges of a vertical band",
	Long: `List the maximal horizontal intervals that lie entirely inside the
scene's allowed area throughout the given vertical band.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := loadScene(args[0])
		if err != nil {
			return err
		}

		y0, y1, err := parsePair(bandVal)
		if err != nil {
			return fmt.Errorf("invalid --band: %w", err)
		}

		ranges := group.Ranges(shape.Rg(y0, y1))
		if len(ranges) == 0 {
			fmt.Println("no ranges")
			return nil
		}
		for _, r := range ranges {
			fmt.Printf("%g %g\n", r.Start, r.End)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rangesCmd)

	rangesCmd.Flags().StringVar(&bandVal, "band", "", "vertical band 'y0,y1' (required)")
	rangesCmd.MarkFlagRequired("band")
}
