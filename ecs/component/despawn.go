package component

// Despawn destroys its entity once Remaining seconds have passed.
type Despawn struct {
	Remaining float64
}

var DespawnComponent = NewComponent[Despawn]()
