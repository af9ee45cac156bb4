package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/component"
)

// wanderArrival is how close a wandering enemy must get before it picks a
// new point.
const wanderArrival = 0.5

// EnemySystem runs enemy brains: targeting, movement mode and the attack
// pattern cycle. It is frozen by time stop.
type EnemySystem struct {
	ctx *Context
}

func NewEnemySystem(ctx *Context) *EnemySystem {
	return &EnemySystem{ctx: ctx}
}

func (s *EnemySystem) Pausable() bool { return true }

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	alive := aliveFunc(w)
	dt := w.Delta()

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.DetectionComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform, d *component.Detection) {
		if en.Dead {
			return
		}

		d.Targets.Purge(alive)
		d.Priority.Reacquire(&d.Targets, alive)

		var target ecs.Entity
		var targetPos cp.Vector
		dist := math.Inf(1)
		if ref := d.Targets.Current(); ref != 0 {
			if pos, ok := position(w, ecs.Entity(ref)); ok {
				target = ecs.Entity(ref)
				targetPos = pos
				dist = t.Position.Distance(pos)
			}
		}
		hasTarget := target != 0

		s.stepActivity(w, e, en, t, dt, alive)

		if en.Mode == combat.MoveWander && en.HasWanderTarget {
			if s.ctx.Nav.IsPathComplete(e) || t.Position.Distance(en.WanderTarget) < wanderArrival {
				en.HasWanderTarget = false
			}
		}

		en.PathTimer -= dt
		if en.PathTimer <= 0 {
			s.move(e, en, t.Position, target, targetPos, dist)
			en.PathTimer = en.PathUpdateInterval
		}

		if hasTarget && dist <= en.Stats.AttackRange {
			en.AttackTimer -= dt
			if en.AttackTimer <= 0 && len(en.Patterns) > 0 {
				s.attack(w, e, en, t.Position, target, targetPos)
			}
		}
	})
}

// move issues one movement order for the enemy's mode.
func (s *EnemySystem) move(e ecs.Entity, en *component.Enemy, self cp.Vector, target ecs.Entity, targetPos cp.Vector, dist float64) {
	nav := s.ctx.Nav
	engaged := target != 0 && dist <= en.Stats.DetectionRange

	switch en.Mode {
	case combat.MoveStationary:
		nav.Stop(e)

	case combat.MoveChase:
		if !engaged {
			nav.Stop(e)
			return
		}
		nav.RequestMoveTo(e, targetPos)

	case combat.MoveKeepDistance:
		if !engaged {
			nav.Stop(e)
			return
		}
		switch combat.KeepDistance(dist, en.Stats.AttackRange) {
		case combat.SpacingRetreat:
			p := combat.RetreatPoint(self, targetPos, combat.RetreatDistance)
			if sampled, ok := nav.SampleNearestWalkable(p, combat.RetreatDistance); ok {
				nav.RequestMoveTo(e, sampled)
			} else {
				nav.Stop(e)
			}
		case combat.SpacingAdvance:
			nav.RequestMoveTo(e, targetPos)
		default:
			nav.Stop(e)
		}

	case combat.MoveWander:
		if en.HasWanderTarget {
			return
		}
		p := en.Origin.Add(common.RandomInRadius(s.ctx.RNG, en.WanderRadius))
		sampled, ok := nav.SampleNearestWalkable(p, en.WanderRadius)
		if !ok || !nav.RequestMoveTo(e, sampled) {
			return
		}
		en.WanderTarget = sampled
		en.HasWanderTarget = true

	case combat.MoveOrbit:
		if !engaged {
			nav.Stop(e)
			return
		}
		p := combat.OrbitPoint(self, targetPos, en.OrbitRadius)
		if sampled, ok := nav.SampleNearestWalkable(p, en.OrbitRadius); ok {
			nav.RequestMoveTo(e, sampled)
		} else {
			nav.RequestMoveTo(e, targetPos)
		}
	}
}

// attack fires the current pattern and advances the cycle. A busy activity
// slot holds the cycle on the same pattern until it frees up.
func (s *EnemySystem) attack(w *ecs.World, e ecs.Entity, en *component.Enemy, self cp.Vector, target ecs.Entity, targetPos cp.Vector) {
	if en.Activity.Busy() {
		return
	}
	idx := en.PatternIndex % len(en.Patterns)
	p := en.Patterns[idx]
	en.PatternIndex = (idx + 1) % len(en.Patterns)

	if !p.Usable() {
		s.ctx.logger().Warn("attack pattern has no usable projectile", "entity", e, "index", idx)
		if p != nil {
			en.AttackTimer = p.Cooldown
		}
		return
	}
	en.AttackTimer = p.Cooldown

	switch p.Kind {
	case combat.PatternSingle:
		s.fire(w, e, self, combat.SingleDirection(self, targetPos), p)
	case combat.PatternCircle:
		for _, dir := range combat.CircleDirections(p.ProjectileCount) {
			s.fire(w, e, self, dir, p)
		}
	case combat.PatternPredictive:
		var vel cp.Vector
		if s.ctx.Velocity != nil {
			vel, _ = s.ctx.Velocity.Velocity(target)
		}
		s.fire(w, e, self, combat.PredictiveDirection(self, targetPos, vel, p.ProjectileSpeed), p)
	case combat.PatternBurst:
		s.begin(w, e, en, self, combat.NewBurst(p, target.Ref(), combat.SingleDirection(self, targetPos)))
	case combat.PatternSpiral:
		s.begin(w, e, en, self, combat.NewSpiral(p, target.Ref()))
	}
}

// begin starts a multi-tick sequence and emits its first shot now.
func (s *EnemySystem) begin(w *ecs.World, e ecs.Entity, en *component.Enemy, self cp.Vector, a *combat.Activity) {
	if err := en.Activity.Begin(a); err != nil {
		return
	}
	for _, dir := range a.StepFire(0, true) {
		s.fire(w, e, self, dir, a.Pattern)
	}
	if a.Done {
		en.Activity.Cancel()
	}
}

func (s *EnemySystem) stepActivity(w *ecs.World, e ecs.Entity, en *component.Enemy, t *component.Transform, dt float64, alive combat.AliveFunc) {
	a := en.Activity.Active()
	if a == nil {
		return
	}
	for _, dir := range a.StepFire(dt, alive(a.Target)) {
		s.fire(w, e, t.Position, dir, a.Pattern)
	}
	if a.Done {
		en.Activity.Cancel()
	}
}

// fire spawns one projectile. Spawn failures are logged and skipped.
func (s *EnemySystem) fire(w *ecs.World, owner ecs.Entity, origin, dir cp.Vector, p *combat.AttackPattern) {
	if s.ctx.Spawner == nil {
		return
	}
	ent, err := s.ctx.Spawner.Spawn(p.Projectile, origin)
	if err != nil {
		s.ctx.logger().Warn("projectile spawn failed", "prefab", p.Projectile, "err", err)
		return
	}

	proj := combat.NewProjectile(origin, dir, p, combat.TagHero|combat.TagPlayer)
	proj.Owner = owner.Ref()
	if prefab, ok := ecs.Get(w, ent, component.ProjectileComponent.Kind()); ok {
		proj.Radius = prefab.Radius
	}
	if err := ecs.Add(w, ent, component.ProjectileComponent.Kind(), &proj); err != nil {
		s.ctx.logger().Warn("projectile setup failed", "err", err)
		ecs.DestroyEntity(w, ent)
		return
	}
	if t, ok := ecs.Get(w, ent, component.TransformComponent.Kind()); ok {
		t.Position = origin
		t.Rotation = common.BearingDeg(proj.Velocity)
	}
	s.ctx.cue(CueFire, owner)
}
