package nutrition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/profile"
)

func TestCalculateGoals(t *testing.T) {
	tests := []struct {
		name    string
		profile profile.Profile
		want    nutrition.Goals
	}{
		{
			// BMR 1780, moderate activity, surplus of 300.
			name: "male building muscle",
			profile: profile.Profile{
				Age: 30, Gender: profile.GenderMale,
				HeightCm: 180, WeightKg: 80,
				WorkoutFrequency: 4, Goal: profile.GoalBuildMuscle,
			},
			want: nutrition.Goals{Calories: 3059, Protein: 229, Carbs: 306, Fat: 102, Fiber: 43},
		},
		{
			// BMR 1345.25, light activity, deficit of 400.
			name: "female losing fat",
			profile: profile.Profile{
				Age: 25, Gender: profile.GenderFemale,
				HeightCm: 165, WeightKg: 60,
				WorkoutFrequency: 3, Goal: profile.GoalLoseFat,
			},
			want: nutrition.Goals{Calories: 1450, Protein: 109, Carbs: 145, Fat: 48, Fiber: 20},
		},
		{
			// Other gender uses the female baseline; recomposition keeps
			// maintenance calories.
			name: "recomposition at high frequency",
			profile: profile.Profile{
				Age: 40, Gender: profile.GenderOther,
				HeightCm: 175, WeightKg: 70,
				WorkoutFrequency: 6, Goal: profile.GoalRecomposition,
			},
			want: nutrition.Goals{Calories: 2471, Protein: 185, Carbs: 247, Fat: 82, Fiber: 35},
		},
		{
			// Frequency 5 shares the moderate multiplier with 4.
			name: "moderate bucket upper bound",
			profile: profile.Profile{
				Age: 30, Gender: profile.GenderMale,
				HeightCm: 180, WeightKg: 80,
				WorkoutFrequency: 5, Goal: profile.GoalBuildMuscle,
			},
			want: nutrition.Goals{Calories: 3059, Protein: 229, Carbs: 306, Fat: 102, Fiber: 43},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nutrition.CalculateGoals(tt.profile)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalculateGoals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateGoalsRespondsToProfileChanges(t *testing.T) {
	p := profile.Profile{
		Age: 30, Gender: profile.GenderMale,
		HeightCm: 180, WeightKg: 80,
		WorkoutFrequency: 4, Goal: profile.GoalRecomposition,
	}
	before := nutrition.CalculateGoals(p)

	p.WeightKg = 85
	after := nutrition.CalculateGoals(p)
	if after.Calories <= before.Calories {
		t.Errorf("calories after weight gain = %d, want > %d", after.Calories, before.Calories)
	}

	p.Goal = profile.GoalLoseFat
	cutting := nutrition.CalculateGoals(p)
	if cutting.Calories >= after.Calories {
		t.Errorf("cutting calories = %d, want < maintenance %d", cutting.Calories, after.Calories)
	}
}
