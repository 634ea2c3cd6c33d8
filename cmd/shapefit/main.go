package main

import "github.com/gogpu/shape/cmd/shapefit/cmd"

func main() {
	cmd.Execute()
}
