package main

import "github.com/jcy9503/Tetris3D/cmd/tetris3d"

func main() {
	tetris3d.Execute()
}
