package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// directionKeys maps steering keys to grid directions. Arrow keys and
// WASD are equivalent.
var directionKeys = []struct {
	key glfw.Key
	dir Dir
}{
	{glfw.KeyUp, DirUp},
	{glfw.KeyW, DirUp},
	{glfw.KeyDown, DirDown},
	{glfw.KeyS, DirDown},
	{glfw.KeyLeft, DirLeft},
	{glfw.KeyA, DirLeft},
	{glfw.KeyRight, DirRight},
	{glfw.KeyD, DirRight},
}

// PressedDirections returns the directions whose keys went down this
// frame, in binding order.
func (in *Input) PressedDirections(window *glfw.Window) []Dir {
	var dirs []Dir
	for _, b := range directionKeys {
		if in.JustPressed(window, b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}
