package component

// ArenaBounds stores the world-space rect of the playable arena, Y up.
type ArenaBounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
