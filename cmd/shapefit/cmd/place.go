package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/shape"
)

var (
	minVal  string
	sizeVal string
)

// placeCmd represents the place command.
var placeCmd = &cobra.Command{
	Use:   "place SCENE",
	Short: "find the top-left-most placement for a rectangle",
	Long: `Find the top-most and then left-most position inside the scene's
allowed area at which a rectangle of the given size fits without
colliding with any shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := loadScene(args[0])
		if err != nil {
			return err
		}

		minX, minY, err := parsePair(minVal)
		if err != nil {
			return fmt.Errorf("invalid --min: %w", err)
		}
		w, h, err := parsePair(sizeVal)
		if err != nil {
			return fmt.Errorf("invalid --size: %w", err)
		}

		p, ok := group.Place(shape.Pt(minX, minY), shape.Sz(w, h))
		if !ok {
			fmt.Println("no fit")
			return nil
		}

		fmt.Printf("%g %g\n", p.X, p.Y)
		return nil
	},
}

// parsePair parses "a,b" into two floats.
func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 'a,b', got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func init() {
	RootCmd.AddCommand(placeCmd)

	placeCmd.Flags().StringVar(&minVal, "min", "0,0", "minimum point 'x,y'")
	placeCmd.Flags().StringVar(&sizeVal, "size", "", "rectangle size 'width,height' (required)")
	placeCmd.MarkFlagRequired("size")
}
