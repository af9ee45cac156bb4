package component

import "github.com/jakecoffman/cp"

// PhysicsBody is an entity's presence in the spatial index. Disabling it
// removes the entity from radius queries without destroying it.
type PhysicsBody struct {
	Radius  float64
	Enabled bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Motion is the last observed velocity, read for predictive aiming.
type Motion struct {
	Velocity cp.Vector
}

var MotionComponent = NewComponent[Motion]()
