package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			e := ents[c.destroyIndex]
			if !DestroyEntity(w, e) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, e) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, e) {
				t.Fatalf("second destroy should report false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestRecycledSlotInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s and %s", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ by generation")
	}
	if IsAlive(w, old) || !IsAlive(w, fresh) {
		t.Fatalf("stale handle should be dead and new one alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("components must not leak into a recycled slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), str("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), str("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "nil_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, h1.Kind(), nil); err == nil {
					t.Fatalf("expected nil component error")
				}
			},
			teardown: func() bool { return !Has(w, e1, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	var visited []int
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited = append(visited, *v)
		if *v == 0 {
			DestroyEntity(w, ents[2])
			spawned := CreateEntity(w)
			_ = Add(w, spawned, h.Kind(), intPtr(99))
		}
	})
	want := []int{0, 1, 3}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, visited)
		}
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *World, ka, kb, kc component.ComponentKind[int]) []Entity
		want  int
	}{
		{
			name: "intersection",
			build: func(w *World, ka, kb, kc component.ComponentKind[int]) []Entity {
				e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))
				_ = Add(w, e3, kb, intPtr(4))
				return []Entity{e2}
			},
			want: 1,
		},
		{
			name: "ignores_dead_entities",
			build: func(w *World, ka, kb, kc component.ComponentKind[int]) []Entity {
				e := CreateEntity(w)
				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))
				DestroyEntity(w, e)
				return nil
			},
		},
		{
			name: "missing_store",
			build: func(w *World, ka, kb, kc component.ComponentKind[int]) []Entity {
				e := CreateEntity(w)
				_ = Add(w, e, ka, intPtr(1))
				return nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			ka := component.NewComponentKind[int]()
			kb := component.NewComponentKind[int]()
			kc := component.NewComponentKind[int]()
			expect := tc.build(w, ka, kb, kc)

			var res []Entity
			ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
			if len(res) != len(expect) {
				t.Fatalf("expected %v, got %v", expect, res)
			}
			for i := range expect {
				if res[i] != expect[i] {
					t.Fatalf("expected %v, got %v", expect, res)
				}
			}
		})
	}
}

func TestFirstPicksLowestSlot(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	a, b := CreateEntity(w), CreateEntity(w)
	_ = Add(w, b, h.Kind(), intPtr(2))
	_ = Add(w, a, h.Kind(), intPtr(1))

	got, ok := First(w, h.Kind())
	if !ok || got != a {
		t.Fatalf("expected %s, got %s ok=%v", a, got, ok)
	}
	DestroyEntity(w, a)
	got, ok = First(w, h.Kind())
	if !ok || got != b {
		t.Fatalf("expected %s, got %s ok=%v", b, got, ok)
	}
}

type countingSystem struct {
	calls    int
	pausable bool
}

func (s *countingSystem) Update(*World) { s.calls++ }
func (s *countingSystem) Pausable() bool { return s.pausable }

func TestSchedulerPauseAndClock(t *testing.T) {
	w := NewWorld()
	always := &countingSystem{}
	frozen := &countingSystem{pausable: true}
	s := NewScheduler(always, frozen)

	s.Step(w, 0.5)
	w.SetPaused(true)
	s.Step(w, 0.25)
	w.SetPaused(false)
	s.Step(w, 0.25)

	if always.calls != 3 || frozen.calls != 2 {
		t.Fatalf("expected 3/2 calls, got %d/%d", always.calls, frozen.calls)
	}
	if w.Now() != 1 || w.Delta() != 0.25 {
		t.Fatalf("unexpected clock now=%v dt=%v", w.Now(), w.Delta())
	}
}

func TestSchedulerClampsDelta(t *testing.T) {
	w := NewWorld()
	s := NewScheduler()
	s.MaxDelta = 0.1

	s.Step(w, 2)
	s.Step(w, -1)
	if w.Delta() != 0 || w.Now() != 0.1 {
		t.Fatalf("unexpected clock now=%v dt=%v", w.Now(), w.Delta())
	}
	if w.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", w.Ticks())
	}
}

func TestEmitStampsTime(t *testing.T) {
	w := NewWorld()
	s := NewScheduler()
	s.Step(w, 0.5)
	w.Emit("a", 1)
	s.Step(w, 0.5)
	w.Emit("b", 2)
	w.Emit("a", 3)

	events := w.Events().Drain()
	if len(events) != 3 || events[0].Time != 0.5 || events[1].Time != 1 {
		t.Fatalf("unexpected events %+v", events)
	}
	only := Filter(events, "a")
	if len(only) != 2 || only[1].Data != 3 {
		t.Fatalf("unexpected filter result %+v", only)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue not drained")
	}
}

func TestPhysicsWorldQueryRadius(t *testing.T) {
	const (
		catHero  uint = 1 << 0
		catEnemy uint = 1 << 2
	)
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	hero := CreateEntity(w)
	near := CreateEntity(w)
	far := CreateEntity(w)
	pw.Register(hero, cp.Vector{}, 0.4, catHero)
	pw.Register(near, cp.Vector{X: 3}, 0.4, catEnemy)
	pw.Register(far, cp.Vector{X: 20}, 0.4, catEnemy)

	got := pw.QueryRadius(cp.Vector{}, 5, catEnemy)
	if len(got) != 1 || got[0] != near {
		t.Fatalf("expected only near enemy, got %v", got)
	}

	got = pw.QueryRadius(cp.Vector{}, 5, catEnemy|catHero)
	if len(got) != 2 || got[0] != hero || got[1] != near {
		t.Fatalf("expected hero and near enemy in slot order, got %v", got)
	}

	pw.Move(far, cp.Vector{X: 1, Y: 1})
	if got = pw.QueryRadius(cp.Vector{}, 5, catEnemy); len(got) != 2 {
		t.Fatalf("expected moved enemy to be found, got %v", got)
	}

	DestroyEntity(w, near)
	if pw.Registered(near) {
		t.Fatalf("destroying an entity should drop its body")
	}
	if got = pw.QueryRadius(cp.Vector{}, 5, catEnemy); len(got) != 1 || got[0] != far {
		t.Fatalf("expected only the moved enemy, got %v", got)
	}
}
