package component

import "github.com/jakecoffman/cp"

// Transform places an entity in world units. Facing is 1 or -1 along X;
// Rotation is a heading in degrees, set for projectiles.
type Transform struct {
	Position cp.Vector
	Facing   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
