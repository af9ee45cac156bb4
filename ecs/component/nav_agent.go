package component

import "github.com/jakecoffman/cp"

// NavAgent follows grid paths handed out by the navigator.
type NavAgent struct {
	Speed          float64
	ArriveDistance float64

	Destination    cp.Vector
	HasDestination bool
	Path           []cp.Vector
	// Suspended agents keep their path but do not move; an activity is
	// driving the transform directly.
	Suspended bool
}

var NavAgentComponent = NewComponent[NavAgent]()
