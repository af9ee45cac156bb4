package ecs

// Pausable systems are skipped while the world is paused.
type Pausable interface {
	Pausable() bool
}

// Scheduler runs a fixed list of systems in order, one pass per tick.
type Scheduler struct {
	systems []System
	// MaxDelta clamps a single step. Zero disables the clamp.
	MaxDelta float64
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

// Step advances the world clock by dt and runs one tick. Negative steps
// are treated as zero.
func (s *Scheduler) Step(w *World, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if s.MaxDelta > 0 && dt > s.MaxDelta {
		dt = s.MaxDelta
	}
	w.advance(dt)
	s.Update(w)
}

// Update runs every system once without touching the clock.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		if p, ok := system.(Pausable); ok && w.paused && p.Pausable() {
			continue
		}
		system.Update(w)
	}
}

func (s *Scheduler) Len() int { return len(s.systems) }
