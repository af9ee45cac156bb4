package component

import "github.com/milk9111/vanguard/combat"

// Tags classifies an entity for detection, damage and spatial queries.
type Tags struct {
	Mask combat.Tag
}

var TagsComponent = NewComponent[Tags]()

// Name records the prefab an entity was built from.
type Name struct {
	Prefab string
}

var NameComponent = NewComponent[Name]()
