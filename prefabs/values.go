package prefabs

import (
	"github.com/milk9111/vanguard/combat"
	"gopkg.in/yaml.v3"
)

// Mode decodes a movement mode name such as "keep_distance".
type Mode combat.MovementMode

func (m *Mode) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := combat.ParseMovementMode(s)
	if err != nil {
		return err
	}
	*m = Mode(v)
	return nil
}

// PatternKind decodes an attack pattern kind such as "spiral".
type PatternKind combat.PatternKind

func (k *PatternKind) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := combat.ParsePatternKind(s)
	if err != nil {
		return err
	}
	*k = PatternKind(v)
	return nil
}

type DamageKind combat.DamageKind

func (k *DamageKind) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := combat.ParseDamageKind(s)
	if err != nil {
		return err
	}
	*k = DamageKind(v)
	return nil
}

// TagMask decodes either "hero|player" or a sequence of tag names.
type TagMask combat.Tag

func (t *TagMask) UnmarshalYAML(n *yaml.Node) error {
	var names []string
	if n.Kind == yaml.SequenceNode {
		if err := n.Decode(&names); err != nil {
			return err
		}
	} else {
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		names = []string{s}
	}
	var mask combat.Tag
	for _, name := range names {
		v, err := combat.ParseTags(name)
		if err != nil {
			return err
		}
		mask |= v
	}
	*t = TagMask(mask)
	return nil
}
