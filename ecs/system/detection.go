package system

import (
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// DetectionSystem turns radius queries into candidate enter, stay and exit
// notifications on each detector's target state.
//
// Exits are applied first. When an exit clears the current target the
// replacement waits for the owner's next decision instead of being picked
// here.
type DetectionSystem struct {
	ctx *Context
}

func NewDetectionSystem(ctx *Context) *DetectionSystem {
	return &DetectionSystem{ctx: ctx}
}

func (s *DetectionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	alive := aliveFunc(w)
	now := w.Now()

	ecs.ForEach2(w, component.DetectionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, d *component.Detection, t *component.Transform) {
		if !d.Enabled {
			return
		}

		type seen struct {
			e    ecs.Entity
			tags combat.Tag
			dist float64
		}
		var present []seen
		inRange := make(map[uint64]bool)
		for _, other := range s.ctx.query(t.Position, d.Radius, d.Mask) {
			if other == e || !alive(other.Ref()) || hiddenFrom(w, e, other, now) {
				continue
			}
			pos, ok := position(w, other)
			if !ok {
				continue
			}
			present = append(present, seen{e: other, tags: tagsOf(w, other), dist: t.Position.Distance(pos)})
			inRange[other.Ref()] = true
		}

		cleared := false
		for _, id := range d.Targets.Candidates() {
			if !inRange[id] && d.Targets.OnCandidateExit(id) {
				cleared = true
			}
		}

		for _, c := range present {
			switch {
			case d.Policy == component.PolicyNearest || cleared:
				d.Targets.OnCandidateEnter(c.e.Ref(), c.tags, c.dist)
			default:
				d.Priority.Observe(&d.Targets, c.e.Ref(), c.tags, c.dist)
			}
		}

		if d.Policy == component.PolicyNearest {
			combat.NearestPolicy{}.Select(&d.Targets, alive)
		}
	})
}

// hiddenFrom reports whether an invisible hero should be ignored by an
// enemy detector.
func hiddenFrom(w *ecs.World, observer, other ecs.Entity, now float64) bool {
	if !tagsOf(w, observer).Has(combat.TagEnemy) {
		return false
	}
	hero, ok := ecs.Get(w, other, component.HeroComponent.Kind())
	return ok && hero.Invisible(now)
}
