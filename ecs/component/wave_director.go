package component

import "github.com/milk9111/vanguard/waves"

// WaveDirector owns the arena's spawn director.
type WaveDirector struct {
	Director *waves.Director
}

var WaveDirectorComponent = NewComponent[WaveDirector]()
