package ecs

import (
	"github.com/jakecoffman/cp"
)

// PhysicsWorld is the spatial index behind radius queries. It owns a
// Chipmunk space holding one kinematic circle per registered entity and
// static segments for walls. Nothing is ever stepped; bodies are moved
// directly from transforms.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*cp.Body
	shapes map[Entity]*cp.Shape
	walls  []*cp.Shape
}

// NewPhysicsWorld creates an empty index.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Register adds or replaces the circle for e. categories is a bit set that
// query masks are tested against.
func (pw *PhysicsWorld) Register(e Entity, pos cp.Vector, radius float64, categories uint) {
	if pw == nil || !e.Valid() {
		return
	}
	pw.Unregister(e)
	if radius <= 0 {
		radius = 0.1
	}
	body := pw.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categories, Mask: cp.ALL_CATEGORIES})
	shape.UserData = e
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
}

// Registered reports whether e currently has a body.
func (pw *PhysicsWorld) Registered(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[e]
	return ok
}

// Move repositions e's body and reindexes it.
func (pw *PhysicsWorld) Move(e Entity, pos cp.Vector) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	body.SetPosition(pos)
	pw.space.ReindexShapesForBody(body)
}

// Unregister removes e's body. Unknown entities are ignored.
func (pw *PhysicsWorld) Unregister(e Entity) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	if shape := pw.shapes[e]; shape != nil {
		pw.space.RemoveShape(shape)
	}
	pw.space.RemoveBody(body)
	delete(pw.bodies, e)
	delete(pw.shapes, e)
}

// AddWall adds a static segment from a to b with the given thickness.
func (pw *PhysicsWorld) AddWall(a, b cp.Vector, radius float64, categories uint) *cp.Shape {
	if pw == nil {
		return nil
	}
	shape := cp.NewSegment(pw.space.StaticBody, a, b, radius)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categories, Mask: cp.ALL_CATEGORIES})
	pw.space.AddShape(shape)
	pw.walls = append(pw.walls, shape)
	return shape
}

// Walls returns the static wall shapes.
func (pw *PhysicsWorld) Walls() []*cp.Shape {
	if pw == nil {
		return nil
	}
	return pw.walls
}

// QueryRadius returns the entities whose circle overlaps the disc of the
// given radius around center and whose categories intersect mask. Results
// are ordered by slot id.
func (pw *PhysicsWorld) QueryRadius(center cp.Vector, radius float64, mask uint) []Entity {
	if pw == nil || mask == 0 {
		return nil
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}
	var out []Entity
	seen := make(map[Entity]struct{})
	pw.space.PointQuery(center, radius, filter, func(shape *cp.Shape, _ cp.Vector, _ float64, _ cp.Vector, _ interface{}) {
		e, ok := shape.UserData.(Entity)
		if !ok {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}, nil)
	SortEntities(out)
	return out
}

// SegmentBlocked reports whether a wall lies between a and b.
func (pw *PhysicsWorld) SegmentBlocked(a, b cp.Vector, wallMask uint) bool {
	if pw == nil {
		return false
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: wallMask}
	info := pw.space.SegmentQueryFirst(a, b, 0, filter)
	return info.Shape != nil
}
