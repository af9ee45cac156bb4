package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
	"github.com/milk9111/vanguard/prefabs"
	"github.com/milk9111/vanguard/waves"
)

// NewWall adds a static wall segment. Walls block projectiles but are not
// entities the combat systems target, so they only carry tags.
func NewWall(w *ecs.World, a, b cp.Vector, radius float64) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("wall: world has no physics world")
	}
	bld := newBuild(w, "wall")
	add(bld, "tags", component.TagsComponent.Kind(), &component.Tags{Mask: combat.TagWall})
	e, err := bld.done()
	if err != nil {
		return 0, err
	}
	pw.AddWall(a, b, radius, uint(combat.TagWall))
	return e, nil
}

// NewBorderWalls encloses r with four walls.
func NewBorderWalls(w *ecs.World, r common.Rect, radius float64) error {
	lo, hi := r.Min(), r.Max()
	corners := []cp.Vector{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
	for i := range corners {
		if _, err := NewWall(w, corners[i], corners[(i+1)%len(corners)], radius); err != nil {
			return err
		}
	}
	return nil
}

func NewArenaBounds(w *ecs.World, r common.Rect) (ecs.Entity, error) {
	b := newBuild(w, "arena bounds")
	add(b, "bounds", component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	})
	return b.done()
}

// NewCamera builds the view rect wave spawns are placed around. target may
// be zero; the camera then follows the first living hero.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, center cp.Vector, target ecs.Entity) (ecs.Entity, error) {
	b := newBuild(w, "camera")
	add(b, "camera", component.CameraComponent.Kind(), &component.Camera{
		Center:     center,
		Width:      spec.Width,
		Height:     spec.Height,
		Smoothness: spec.Smoothness,
		Target:     target.Ref(),
	})
	return b.done()
}

func NewWaveDirector(w *ecs.World, d *waves.Director) (ecs.Entity, error) {
	if d == nil {
		return 0, fmt.Errorf("wave director: director is nil")
	}
	b := newBuild(w, "wave director")
	add(b, "director", component.WaveDirectorComponent.Kind(), &component.WaveDirector{Director: d})
	return b.done()
}
