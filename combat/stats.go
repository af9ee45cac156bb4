package combat

// Stats is the movement and range tuning shared by heroes and enemies.
type Stats struct {
	MoveSpeed       float64
	DetectionRange  float64
	AttackRange     float64
	EngagementRange float64
}
