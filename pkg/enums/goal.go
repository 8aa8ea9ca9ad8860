package enums

import "fmt"

// Goal is the training objective attached to a booking.
type Goal string

const (
	GoalWeightLoss     Goal = "weight-loss"
	GoalMuscleGain     Goal = "muscle-gain"
	GoalFitness        Goal = "fitness"
	GoalPerformance    Goal = "performance"
	GoalRehabilitation Goal = "rehabilitation"
	GoalWellness       Goal = "wellness"
)

var validGoals = []Goal{
	GoalWeightLoss,
	GoalMuscleGain,
	GoalFitness,
	GoalPerformance,
	GoalRehabilitation,
	GoalWellness,
}

// String implements fmt.Stringer.
func (g Goal) String() string {
	return string(g)
}

// IsValid reports whether the value is a known Goal.
func (g Goal) IsValid() bool {
	for _, candidate := range validGoals {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGoal converts raw input into a Goal.
func ParseGoal(value string) (Goal, error) {
	for _, candidate := range validGoals {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid goal %q", value)
}
