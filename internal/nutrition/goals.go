package nutrition

import (
	"math"

	"github.com/gymello/gymello/internal/profile"
)

// Goals is the daily nutrient target derived from a profile. Calories are
// kcal, the rest are grams.
type Goals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
}

// CalculateGoals derives daily nutrient targets from the profile.
//
// Basal metabolic rate uses the Mifflin-St Jeor equation, with the female
// variant as the baseline for other genders. The activity multiplier buckets
// on weekly workout frequency, the calorie goal shifts the resulting energy
// expenditure by the fitness goal, and macros split 30/40/30 across
// protein, carbs and fat. Fiber follows the 14 g per 1000 kcal guideline.
//
// The calculation is deterministic, so goals are derived on demand rather
// than stored. Changing weight, frequency or goal changes the targets
// immediately.
func CalculateGoals(p profile.Profile) Goals {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == profile.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	var multiplier float64
	switch {
	case p.WorkoutFrequency <= 3:
		multiplier = 1.375
	case p.WorkoutFrequency <= 5:
		multiplier = 1.55
	default:
		multiplier = 1.725
	}
	tdee := bmr * multiplier

	calories := tdee
	switch p.Goal {
	case profile.GoalLoseFat:
		calories -= 400
	case profile.GoalBuildMuscle:
		calories += 300
	}

	// Macros derive from the unrounded calorie goal, calories round last.
	return Goals{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(calories * 0.30 / 4)),
		Carbs:    int(math.Round(calories * 0.40 / 4)),
		Fat:      int(math.Round(calories * 0.30 / 9)),
		Fiber:    int(math.Round(calories / 1000 * 14)),
	}
}
