package entity

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/prefabs"
)

var ErrUnknownPrefab = errors.New("entity: unknown prefab kind")

// Factory builds entities from prefab files and caches the parsed specs.
// It satisfies the spawner the combat systems call.
type Factory struct {
	World *ecs.World
	Log   *slog.Logger

	headers  map[string]prefabs.Header
	specs    map[string]any
	patterns map[string]map[string]*combat.AttackPattern
	resolved map[string][]*combat.AttackPattern
}

func NewFactory(w *ecs.World, log *slog.Logger) *Factory {
	if log == nil {
		log = common.Logger
	}
	f := &Factory{World: w, Log: log}
	f.Invalidate()
	return f
}

// Invalidate drops every cached spec so the next spawn rereads the files.
func (f *Factory) Invalidate() {
	f.headers = make(map[string]prefabs.Header)
	f.specs = make(map[string]any)
	f.patterns = make(map[string]map[string]*combat.AttackPattern)
	f.resolved = make(map[string][]*combat.AttackPattern)
}

// Spawn builds the prefab at pos. The prefab's kind field picks the builder.
func (f *Factory) Spawn(prefab string, pos cp.Vector) (ecs.Entity, error) {
	if f.World == nil {
		return 0, fmt.Errorf("spawn %s: world is nil", prefab)
	}
	header, err := f.header(prefab)
	if err != nil {
		return 0, err
	}

	switch header.Kind {
	case prefabs.KindHero:
		spec, err := cached(f, prefab, prefabs.LoadHeroSpec)
		if err != nil {
			return 0, err
		}
		return NewHero(f.World, prefab, spec, pos)
	case prefabs.KindPlayer:
		spec, err := cached(f, prefab, prefabs.LoadPlayerSpec)
		if err != nil {
			return 0, err
		}
		support, err := cached(f, spec.Support, prefabs.LoadSupportSpec)
		if err != nil {
			return 0, err
		}
		return NewPlayer(f.World, prefab, spec, support, pos)
	case prefabs.KindEnemy:
		spec, err := cached(f, prefab, prefabs.LoadEnemySpec)
		if err != nil {
			return 0, err
		}
		patterns, err := f.resolvePatterns(prefab, spec)
		if err != nil {
			return 0, err
		}
		return NewEnemy(f.World, prefab, spec, patterns, pos)
	case prefabs.KindProjectile:
		spec, err := cached(f, prefab, prefabs.LoadProjectileSpec)
		if err != nil {
			return 0, err
		}
		return NewProjectile(f.World, prefab, spec, pos)
	}
	return 0, fmt.Errorf("%w: %s has kind %q", ErrUnknownPrefab, prefab, header.Kind)
}

func (f *Factory) header(prefab string) (prefabs.Header, error) {
	if h, ok := f.headers[prefab]; ok {
		return h, nil
	}
	h, err := prefabs.LoadHeader(prefab)
	if err != nil {
		return h, err
	}
	f.headers[prefab] = h
	return h, nil
}

// resolvePatterns maps pattern names to the shared records. Unknown names
// stay in the cycle as nil so the enemy warns and waits out a cooldown
// when it reaches them. The result is shared by every enemy of the prefab.
func (f *Factory) resolvePatterns(prefab string, spec prefabs.EnemySpec) ([]*combat.AttackPattern, error) {
	if out, ok := f.resolved[prefab]; ok {
		return out, nil
	}
	book, ok := f.patterns[spec.PatternFile]
	if !ok {
		var err error
		book, err = prefabs.LoadPatterns(spec.PatternFile)
		if err != nil {
			return nil, err
		}
		f.patterns[spec.PatternFile] = book
	}
	out := make([]*combat.AttackPattern, 0, len(spec.Patterns))
	for _, name := range spec.Patterns {
		p, ok := book[name]
		if !ok {
			f.Log.Warn("unknown attack pattern", "prefab", prefab, "pattern", name)
		}
		out = append(out, p)
	}
	f.resolved[prefab] = out
	return out, nil
}

func cached[T any](f *Factory, name string, load func(string) (T, error)) (T, error) {
	if v, ok := f.specs[name].(T); ok {
		return v, nil
	}
	v, err := load(name)
	if err != nil {
		return v, err
	}
	f.specs[name] = v
	return v, nil
}
