package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/gogpu/shape"
)

// Scene describes a shape group as free and blocking paths.
type Scene struct {
	// Accuracy drives all approximate comparisons, in path units.
	Accuracy float64 `yaml:"accuracy"`
	// Paths are added to the group in order.
	Paths []ScenePath `yaml:"paths"`
}

// ScenePath is one path of a scene, as SVG path data.
type ScenePath struct {
	D      string `yaml:"d"`
	Blocks bool   `yaml:"blocks,omitempty"`
}

// defaultScene is the template written by the scene command.
var defaultScene = Scene{
	Accuracy: 1e-2,
	Paths: []ScenePath{
		{D: "M20 100 L40 20 H80 L100 100 Z"},
	},
}

// loadScene reads a scene file and builds the shape group it describes.
func loadScene(path string) (*shape.Group, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(buf, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	if scene.Accuracy <= 0 {
		return nil, fmt.Errorf("scene %s: accuracy must be positive", path)
	}

	group := shape.NewGroup(scene.Accuracy)
	for i, sp := range scene.Paths {
		p, err := shape.ParsePath(sp.D)
		if err != nil {
			return nil, fmt.Errorf("scene %s, path %d: %w", path, i, err)
		}
		group.Add(p, sp.Blocks)
	}
	return group, nil
}

// sceneCmd represents the scene command.
var sceneCmd = &cobra.Command{
	Use:   "scene FILE",
	Short: "create a scene file",
	Long: `Create a scene file in YAML format, prefilled with a simple example.

If FILE is not provided, 'scene.yml' is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scene.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file %s already exists", path)
		}

		buf, err := yaml.Marshal(&defaultScene)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return err
		}

		fmt.Printf("scene written to '%s'\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sceneCmd)
}
