package combat

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/common"
)

// ErrActivityBusy is returned when an agent already has an activity in flight.
var ErrActivityBusy = errors.New("combat: activity already in progress")

// ActivityKind identifies a multi-tick routine.
type ActivityKind int

const (
	ActivityNone ActivityKind = iota
	ActivityBurst
	ActivitySpiral
	ActivityRush
	ActivityWhirl
)

func (k ActivityKind) String() string {
	switch k {
	case ActivityBurst:
		return "burst"
	case ActivitySpiral:
		return "spiral"
	case ActivityRush:
		return "rush"
	case ActivityWhirl:
		return "whirl"
	}
	return "none"
}

const (
	phaseEntry = iota
	phaseSustain
)

// Activity is a resumable multi-tick routine. A step function advances it
// once per tick; cancelling it is dropping the record.
type Activity struct {
	Kind    ActivityKind
	Target  uint64
	Elapsed float64
	Phase   int
	Done    bool
	Aborted bool

	// Fire sequences.
	Pattern *AttackPattern
	BaseDir cp.Vector
	Emitted int
	Timer   float64

	// Hero movement.
	Start  cp.Vector
	End    cp.Vector
	Center cp.Vector
	Angle  float64
	Params MoveParams
}

// MoveParams are the authored timings for rush and whirl.
type MoveParams struct {
	Duration     float64
	EntryTime    float64
	Radius       float64
	AngularSpeed float64 // degrees per second
	TickInterval float64
}

// Slot holds at most one activity.
type Slot struct {
	cur *Activity
}

// Begin occupies the slot. A busy slot rejects the new activity.
func (s *Slot) Begin(a *Activity) error {
	if s.cur != nil && !s.cur.Done {
		return ErrActivityBusy
	}
	s.cur = a
	return nil
}

// Active returns the in-flight activity, or nil.
func (s *Slot) Active() *Activity {
	if s.cur == nil || s.cur.Done {
		return nil
	}
	return s.cur
}

func (s *Slot) Busy() bool { return s.Active() != nil }

// Cancel drops the in-flight activity and returns it.
func (s *Slot) Cancel() *Activity {
	a := s.cur
	s.cur = nil
	return a
}

// NewBurst starts a burst along base. The first shot is due immediately.
func NewBurst(p *AttackPattern, target uint64, base cp.Vector) *Activity {
	return &Activity{Kind: ActivityBurst, Pattern: p, Target: target, BaseDir: base}
}

// NewSpiral starts a spiral. The first wave is due immediately.
func NewSpiral(p *AttackPattern, target uint64) *Activity {
	return &Activity{Kind: ActivitySpiral, Pattern: p, Target: target}
}

func (a *Activity) total() int {
	if a.Pattern == nil {
		return 0
	}
	return a.Pattern.ProjectileCount
}

// StepFire advances a burst or spiral and returns the directions to fire
// this tick. At most one shot (burst) or wave (spiral) is emitted per tick.
// The target is checked before each emission; an invalid target ends the
// sequence with nothing fired.
func (a *Activity) StepFire(dt float64, targetValid bool) []cp.Vector {
	if a == nil || a.Done {
		return nil
	}
	if a.Emitted > 0 {
		a.Timer -= dt
		a.Elapsed += dt
	}
	if a.Timer > 0 {
		return nil
	}
	if a.Emitted >= a.total() {
		a.Done = true
		return nil
	}
	if !targetValid {
		a.Done = true
		a.Aborted = true
		return nil
	}

	var dirs []cp.Vector
	switch a.Kind {
	case ActivityBurst:
		dirs = []cp.Vector{BurstDirection(a.BaseDir, a.Emitted, a.total(), a.Pattern.SpreadDegrees)}
	case ActivitySpiral:
		dirs = SpiralWave(a.Emitted)
	default:
		a.Done = true
		return nil
	}
	a.Emitted++
	a.Timer = a.Pattern.BurstDelay
	if a.Emitted >= a.total() {
		a.Done = true
	}
	return dirs
}

// NewRush captures a dash from start to end.
func NewRush(target uint64, start, end cp.Vector, duration float64) *Activity {
	return &Activity{
		Kind:   ActivityRush,
		Target: target,
		Start:  start,
		End:    end,
		Params: MoveParams{Duration: duration},
	}
}

// StepRush eases the position toward End. It finishes at End when the
// duration elapses or, early, when the target stops being valid.
func (a *Activity) StepRush(dt float64, targetValid bool) cp.Vector {
	if a == nil {
		return cp.Vector{}
	}
	if a.Done {
		return a.End
	}
	if !targetValid {
		a.Done = true
		a.Aborted = true
		return a.End
	}
	a.Elapsed += dt
	if a.Params.Duration <= 0 || a.Elapsed >= a.Params.Duration {
		a.Done = true
		return a.End
	}
	t := common.SmoothStep(0, 1, a.Elapsed/a.Params.Duration)
	return a.Start.Lerp(a.End, t)
}

// NewWhirl captures the orbit center for the whole attack.
func NewWhirl(target uint64, center cp.Vector, params MoveParams) *Activity {
	return &Activity{
		Kind:   ActivityWhirl,
		Target: target,
		Center: center,
		Params: params,
	}
}

// WhirlStep is the outcome of one whirl tick.
type WhirlStep struct {
	Position cp.Vector
	Damage   bool
	Moved    bool
}

// StepWhirl orbits Center. During the entry phase the radius eases from 0
// to full; the sustain phase keeps full radius and requests damage every
// TickInterval, starting with its first tick.
func (a *Activity) StepWhirl(dt float64, targetValid bool) WhirlStep {
	if a == nil || a.Done {
		return WhirlStep{}
	}
	if !targetValid {
		a.Done = true
		a.Aborted = true
		return WhirlStep{}
	}
	p := a.Params
	a.Elapsed += dt
	a.Angle += p.AngularSpeed * dt

	if a.Phase == phaseEntry {
		radius := p.Radius
		if p.EntryTime > 0 {
			radius = common.SmoothStep(0, p.Radius, a.Elapsed/p.EntryTime)
		}
		pos := a.Center.Add(common.DirFromDeg(a.Angle).Mult(radius))
		if a.Elapsed >= p.EntryTime {
			a.Phase = phaseSustain
			a.Elapsed = 0
			a.Timer = 0
		}
		return WhirlStep{Position: pos, Moved: true}
	}

	pos := a.Center.Add(common.DirFromDeg(a.Angle).Mult(p.Radius))
	step := WhirlStep{Position: pos, Moved: true}
	a.Timer -= dt
	if a.Timer <= 0 {
		step.Damage = true
		a.Timer = p.TickInterval
	}
	if a.Elapsed >= p.Duration {
		a.Done = true
	}
	return step
}
