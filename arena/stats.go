package arena

import (
	"github.com/milk9111/vanguard/combat"
	"github.com/milk9111/vanguard/ecs"
	"github.com/milk9111/vanguard/ecs/system"
	"github.com/milk9111/vanguard/waves"
)

// Stats tallies what happened since the world was built.
type Stats struct {
	Waves      int
	Spawned    int
	Capped     int
	Kills      int
	HeroDeaths int
	Heals      int
	Buffs      int
	Abilities  int
	Denied     int
	LastWave   waves.Report
}

func (s *Stats) observe(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Type {
		case system.EventWaveSpawned:
			r, ok := evt.Data.(waves.Report)
			if !ok {
				continue
			}
			s.Waves++
			s.Spawned += r.Spawned
			if r.Capped {
				s.Capped++
			}
			s.LastWave = r
		case system.EventEnemyDied:
			s.Kills++
		case system.EventHeroDied:
			s.HeroDeaths++
		case system.EventHealed:
			s.Heals++
		case system.EventBuffApplied:
			if e, ok := evt.Data.(system.EffectEvent); ok && e.Effect != combat.EffectHeal {
				s.Buffs++
			}
		case system.EventAbilityUsed:
			s.Abilities++
		case system.EventSupportDenied:
			s.Denied++
		}
	}
}
