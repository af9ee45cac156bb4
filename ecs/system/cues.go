package system

import (
	"log/slog"
	"sync"

	"github.com/milk9111/vanguard/ecs"
)

// LogCues writes every cue to a logger at debug level.
type LogCues struct {
	Log *slog.Logger
}

func (c LogCues) PlayCue(name string, e ecs.Entity) {
	if c.Log == nil {
		return
	}
	c.Log.Debug("cue", "name", name, "entity", e)
}

// RecordingCues keeps every cue it is asked to play.
type RecordingCues struct {
	mu    sync.Mutex
	Names []string
}

func (c *RecordingCues) PlayCue(name string, _ ecs.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Names = append(c.Names, name)
}

// Count returns how many times name was played.
func (c *RecordingCues) Count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, got := range c.Names {
		if got == name {
			n++
		}
	}
	return n
}
