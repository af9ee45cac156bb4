package combat

import "testing"

func allAlive(uint64) bool { return true }

func TestPriorityPolicyPrefersHero(t *testing.T) {
	cases := []struct {
		name  string
		enter []struct {
			id   uint64
			tags Tag
		}
		want uint64
	}{
		{
			name: "player_then_hero",
			enter: []struct {
				id   uint64
				tags Tag
			}{{1, TagPlayer}, {2, TagHero}},
			want: 2,
		},
		{
			name: "hero_then_player",
			enter: []struct {
				id   uint64
				tags Tag
			}{{2, TagHero}, {1, TagPlayer}},
			want: 2,
		},
		{
			name: "first_hero_kept",
			enter: []struct {
				id   uint64
				tags Tag
			}{{3, TagHero}, {4, TagHero}},
			want: 3,
		},
		{
			name: "player_only",
			enter: []struct {
				id   uint64
				tags Tag
			}{{1, TagPlayer}},
			want: 1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s TargetState
			for _, e := range c.enter {
				EnemyPriority.Observe(&s, e.id, e.tags, 1)
			}
			if got := s.Current(); got != c.want {
				t.Fatalf("current = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPriorityExitClearsThenReacquires(t *testing.T) {
	var s TargetState
	EnemyPriority.Observe(&s, 1, TagPlayer, 3)
	EnemyPriority.Observe(&s, 2, TagHero, 4)
	EnemyPriority.Observe(&s, 5, TagHero, 2)

	if !s.OnCandidateExit(2) {
		t.Fatalf("exiting the current target should report true")
	}
	if s.HasTarget() {
		t.Fatalf("exit must clear the target, got %d", s.Current())
	}

	if !EnemyPriority.Reacquire(&s, allAlive) {
		t.Fatalf("expected reacquire to find a target")
	}
	if s.Current() != 5 {
		t.Fatalf("reacquire should prefer the present hero, got %d", s.Current())
	}

	s.OnCandidateExit(5)
	EnemyPriority.Reacquire(&s, allAlive)
	if s.Current() != 1 {
		t.Fatalf("expected fallback to remembered player, got %d", s.Current())
	}
}

func TestPriorityRememberedPlayerMustBeAlive(t *testing.T) {
	var s TargetState
	EnemyPriority.Observe(&s, 1, TagPlayer, 3)
	s.OnCandidateExit(1)
	dead := func(id uint64) bool { return id != 1 }
	if EnemyPriority.Reacquire(&s, dead) {
		t.Fatalf("dead remembered player should not be reacquired")
	}
}

func TestNearestPolicy(t *testing.T) {
	var s TargetState
	s.OnCandidateEnter(10, TagEnemy, 5)
	s.OnCandidateEnter(11, TagEnemy, 3)
	s.OnCandidateEnter(12, TagEnemy, 3)

	got, changed := NearestPolicy{}.Select(&s, allAlive)
	if got != 11 || !changed {
		t.Fatalf("expected 11 (first of tie), got %d changed=%v", got, changed)
	}

	dead := func(id uint64) bool { return id != 11 }
	got, _ = NearestPolicy{}.Select(&s, dead)
	if got != 12 {
		t.Fatalf("destroyed candidate must be purged, got %d", got)
	}
	if s.Contains(11) {
		t.Fatalf("purged candidate still present")
	}

	s.Clear()
	got, _ = NearestPolicy{}.Select(&s, allAlive)
	if got != 0 {
		t.Fatalf("empty set should have no target, got %d", got)
	}
}
