package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/vector"

	"github.com/gogpu/shape"
)

var scaleVal float64

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render SCENE OUTFILE",
	Short: "render the decomposed shape group to a PNG",
	Long: `Render the scene's region decomposition to a PNG image. Useful for
debugging which area of a scene is considered free.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := loadScene(args[0])
		if err != nil {
			return err
		}

		path := group.RenderablePath()
		if path.IsEmpty() {
			return fmt.Errorf("scene has no free area to render")
		}

		img := rasterize(path, scaleVal)

		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding %s: %w", args[1], err)
		}
		fmt.Printf("rendered %s\n", args[1])
		return nil
	},
}

// rasterize fills the path in blue on a white image.
func rasterize(path *shape.Path, scale float64) *image.RGBA {
	const margin = 8.0

	bbox := path.BoundingBox()
	moved := path.Translated(shape.V2(margin/scale-bbox.X0, margin/scale-bbox.Y0))

	w := int(math.Ceil(scale*bbox.Width() + 2*margin))
	h := int(math.Ceil(scale*bbox.Height() + 2*margin))

	ras := vector.NewRasterizer(w, h)
	for _, elem := range moved.Elements() {
		switch e := elem.(type) {
		case shape.MoveTo:
			ras.MoveTo(float32(scale*e.Point.X), float32(scale*e.Point.Y))
		case shape.LineTo:
			ras.LineTo(float32(scale*e.Point.X), float32(scale*e.Point.Y))
		case shape.QuadTo:
			ras.QuadTo(
				float32(scale*e.Control.X), float32(scale*e.Control.Y),
				float32(scale*e.Point.X), float32(scale*e.Point.Y),
			)
		case shape.CubicTo:
			ras.CubeTo(
				float32(scale*e.Control1.X), float32(scale*e.Control1.Y),
				float32(scale*e.Control2.X), float32(scale*e.Control2.Y),
				float32(scale*e.Point.X), float32(scale*e.Point.Y),
			)
		case shape.Close:
			ras.ClosePath()
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	ras.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0x34, G: 0x65, B: 0xa4, A: 0xff}), image.Point{})
	return img
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64Var(&scaleVal, "scale", 4, "pixels per path unit")
}
