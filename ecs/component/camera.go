package component

import "github.com/jakecoffman/cp"

// Camera is the view rectangle wave spawns are placed around. It eases
// toward the entity it follows.
type Camera struct {
	Center     cp.Vector
	Width      float64
	Height     float64
	Smoothness float64
	Target     uint64
}

var CameraComponent = NewComponent[Camera]()
