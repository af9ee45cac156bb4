package combat

import "math"

// AliveFunc reports whether an entity handle still refers to a live entity.
type AliveFunc func(id uint64) bool

type candidate struct {
	id       uint64
	tags     Tag
	distance float64
}

// TargetState is an observer's view of who is in range and who it is
// currently aiming at. Handles are weak: the state never keeps an entity
// alive, and every read goes through an AliveFunc first.
//
// Candidates keep insertion order so tie breaks are stable.
type TargetState struct {
	candidates []candidate
	current    uint64
	distance   float64

	// remembered is the last secondary-tier candidate seen. It survives the
	// candidate leaving range.
	remembered uint64
}

// Current returns the current target handle, or 0.
func (s *TargetState) Current() uint64 {
	if s == nil {
		return 0
	}
	return s.current
}

// Distance is the distance to the current target as last observed.
func (s *TargetState) Distance() float64 {
	if s == nil || s.current == 0 {
		return math.Inf(1)
	}
	return s.distance
}

func (s *TargetState) HasTarget() bool {
	return s != nil && s.current != 0
}

// Candidates returns a copy of the in-range handles in insertion order.
func (s *TargetState) Candidates() []uint64 {
	if s == nil {
		return nil
	}
	out := make([]uint64, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c.id)
	}
	return out
}

func (s *TargetState) Contains(id uint64) bool {
	return s.index(id) >= 0
}

func (s *TargetState) index(id uint64) int {
	if s == nil {
		return -1
	}
	for i, c := range s.candidates {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (s *TargetState) tagsOf(id uint64) Tag {
	if i := s.index(id); i >= 0 {
		return s.candidates[i].tags
	}
	return TagNone
}

// OnCandidateEnter records id as in range, or refreshes its distance.
func (s *TargetState) OnCandidateEnter(id uint64, tags Tag, distance float64) {
	if s == nil || id == 0 {
		return
	}
	if i := s.index(id); i >= 0 {
		s.candidates[i].tags = tags
		s.candidates[i].distance = distance
	} else {
		s.candidates = append(s.candidates, candidate{id: id, tags: tags, distance: distance})
	}
	if id == s.current {
		s.distance = distance
	}
}

// OnCandidateExit removes id. It reports true when id was the current
// target, which is cleared rather than replaced.
func (s *TargetState) OnCandidateExit(id uint64) bool {
	i := s.index(id)
	if i >= 0 {
		s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
	}
	if s != nil && id != 0 && s.current == id {
		s.current = 0
		s.distance = math.Inf(1)
		return true
	}
	return false
}

// Purge drops candidates that are no longer alive. It reports true when
// the current target was among them.
func (s *TargetState) Purge(alive AliveFunc) bool {
	if s == nil || alive == nil {
		return false
	}
	kept := s.candidates[:0]
	for _, c := range s.candidates {
		if alive(c.id) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(s.candidates); i++ {
		s.candidates[i] = candidate{}
	}
	s.candidates = kept
	if s.remembered != 0 && !alive(s.remembered) {
		s.remembered = 0
	}
	if s.current != 0 && !alive(s.current) {
		s.current = 0
		s.distance = math.Inf(1)
		return true
	}
	return false
}

// Clear forgets everything, including the remembered reference.
func (s *TargetState) Clear() {
	if s == nil {
		return
	}
	s.candidates = nil
	s.current = 0
	s.distance = math.Inf(1)
	s.remembered = 0
}

func (s *TargetState) setCurrent(id uint64) {
	s.current = id
	s.distance = math.Inf(1)
	if i := s.index(id); i >= 0 {
		s.distance = s.candidates[i].distance
	}
}

// PriorityPolicy prefers Primary-tagged candidates and accepts Secondary
// only while no primary is targeted. Within a tier the first candidate
// seen is kept.
type PriorityPolicy struct {
	Primary   Tag
	Secondary Tag
}

// EnemyPriority targets heroes first, then players.
var EnemyPriority = PriorityPolicy{Primary: TagHero, Secondary: TagPlayer}

// Observe applies the tier rules for a candidate that entered or stayed in
// range this tick.
func (p PriorityPolicy) Observe(s *TargetState, id uint64, tags Tag, distance float64) {
	if s == nil || id == 0 {
		return
	}
	s.OnCandidateEnter(id, tags, distance)
	switch {
	case tags.Has(p.Primary):
		if s.current == 0 || !s.tagsOf(s.current).Has(p.Primary) {
			s.setCurrent(id)
		}
	case tags.Has(p.Secondary):
		s.remembered = id
		if s.current == 0 {
			s.setCurrent(id)
		}
	}
}

// Reacquire fills an empty target slot: a present primary candidate wins,
// then the remembered secondary if it is still alive. It reports whether a
// target is held afterwards.
func (p PriorityPolicy) Reacquire(s *TargetState, alive AliveFunc) bool {
	if s == nil {
		return false
	}
	if s.current != 0 {
		return true
	}
	for _, c := range s.candidates {
		if c.tags.Has(p.Primary) && (alive == nil || alive(c.id)) {
			s.setCurrent(c.id)
			return true
		}
	}
	if s.remembered != 0 && (alive == nil || alive(s.remembered)) {
		s.setCurrent(s.remembered)
		return true
	}
	return false
}

// Remembered returns the remembered secondary handle, or 0.
func (s *TargetState) Remembered() uint64 {
	if s == nil {
		return 0
	}
	return s.remembered
}

// NearestPolicy always targets the closest live candidate. Ties go to the
// candidate that entered first.
type NearestPolicy struct{}

// Select recomputes the nearest candidate. It returns the new target and
// whether it differs from the previous one.
func (NearestPolicy) Select(s *TargetState, alive AliveFunc) (uint64, bool) {
	if s == nil {
		return 0, false
	}
	s.Purge(alive)
	prev := s.current
	best := uint64(0)
	bestDist := math.Inf(1)
	for _, c := range s.candidates {
		if c.distance < bestDist {
			best = c.id
			bestDist = c.distance
		}
	}
	s.current = best
	s.distance = bestDist
	return best, best != prev
}
