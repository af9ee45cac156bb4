package combat

import (
	"fmt"
	"strings"
)

// Tag classifies an entity for detection, damage and collision filtering.
// Tags are bit flags so a single value can serve as a query mask.
type Tag uint

const (
	TagHero Tag = 1 << iota
	TagPlayer
	TagEnemy
	TagWall
	TagProjectile

	TagNone Tag = 0
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{TagHero, "hero"},
	{TagPlayer, "player"},
	{TagEnemy, "enemy"},
	{TagWall, "wall"},
	{TagProjectile, "projectile"},
}

// Has reports whether t shares any bit with other.
func (t Tag) Has(other Tag) bool {
	return t&other != 0
}

func (t Tag) String() string {
	if t == TagNone {
		return "none"
	}
	parts := make([]string, 0, 2)
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseTags parses names like "hero" or "hero|player" into a mask.
func ParseTags(s string) (Tag, error) {
	var out Tag
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == ' ' }) {
		found := false
		for _, tn := range tagNames {
			if strings.EqualFold(part, tn.name) {
				out |= tn.tag
				found = true
				break
			}
		}
		if !found {
			return TagNone, fmt.Errorf("combat: unknown tag %q", part)
		}
	}
	return out, nil
}
