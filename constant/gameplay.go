package constant

// Scoring
const (
	// LineClearReward is added per cleared row, no multi-line bonus
	LineClearReward = 100
)

// Fall Speed (in driver ticks, smaller is faster)
const (
	// BaseFallSpeed is the threshold at score 0
	BaseFallSpeed = 100

	// FallSpeedStep is subtracted once per ScorePerSpeedStep points
	FallSpeedStep = 10

	// ScorePerSpeedStep is the score band width of one speed step (integer division)
	ScorePerSpeedStep = 5000

	// MinFallSpeed is the floor of the fall speed threshold
	MinFallSpeed = 20
)

// Fall Multiplier
const (
	// NormalFallMultiplier applies when soft drop is not asserted
	NormalFallMultiplier = 1.0

	// SoftDropFallMultiplier applies for each tick soft drop is asserted
	SoftDropFallMultiplier = 0.2
)
