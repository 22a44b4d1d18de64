// Package profile defines the user profile and its invariants.
package profile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gymello/gymello/internal/errors"
)

// Gender is used to pick the BMR baseline formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal is the user's primary fitness goal. It drives both the calorie target
// and the rep/rest tuning of generated workout sessions.
type Goal string

const (
	GoalBuildMuscle   Goal = "build_muscle"
	GoalLoseFat       Goal = "lose_fat"
	GoalRecomposition Goal = "recomposition"
)

const (
	minWorkoutDays = 3
	maxWorkoutDays = 7
)

// Validation sentinels surfaced to the user as messages.
var (
	ErrUsernameMissing = errors.NewSentinel("username is required")
	ErrWorkoutDayCount = errors.NewSentinel("select between 3 and 7 workout days")
	ErrUnknownWeekday  = errors.NewSentinel("unknown weekday name")
	ErrUnknownGender   = errors.NewSentinel("unknown gender")
	ErrUnknownGoal     = errors.NewSentinel("unknown fitness goal")
)

//nolint:gochecknoglobals // fixed weekday reference data.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Profile holds the identity-independent attributes of a user. The JSON field
// names match what the browser client persists.
//
// WorkoutFrequency always equals len(WorkoutDays); use SetWorkoutDays to keep
// the two in sync.
type Profile struct {
	Username         string   `json:"username"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           Gender   `json:"gender"`
	HeightCm         float64  `json:"height"`
	WeightKg         float64  `json:"weight"`
	WorkoutFrequency int      `json:"workoutFrequency"`
	WorkoutDays      []string `json:"workoutDays"`
	Goal             Goal     `json:"fitnessGoal"`
	ProfilePicture   string   `json:"profilePicture,omitempty"`
}

// SetWorkoutDays replaces the selected workout days and keeps
// WorkoutFrequency equal to the number of days. Days are de-duplicated
// preserving the order given; the order is meaningful because plan templates
// are assigned positionally.
func (p *Profile) SetWorkoutDays(days []string) error {
	cleaned := make([]string, 0, len(days))
	for _, day := range days {
		canonical, err := canonicalWeekday(day)
		if err != nil {
			return err
		}
		if !slices.Contains(cleaned, canonical) {
			cleaned = append(cleaned, canonical)
		}
	}
	if len(cleaned) < minWorkoutDays || len(cleaned) > maxWorkoutDays {
		return fmt.Errorf("%w: got %d", ErrWorkoutDayCount, len(cleaned))
	}
	p.WorkoutDays = cleaned
	p.WorkoutFrequency = len(cleaned)
	return nil
}

// SetWeight updates the body weight in kilograms.
func (p *Profile) SetWeight(kg float64) { p.WeightKg = kg }

// SetHeight updates the height in centimeters.
func (p *Profile) SetHeight(cm float64) { p.HeightCm = cm }

// SetAge updates the age in years.
func (p *Profile) SetAge(years int) { p.Age = years }

// SetGoal updates the fitness goal.
func (p *Profile) SetGoal(goal Goal) error {
	switch goal {
	case GoalBuildMuscle, GoalLoseFat, GoalRecomposition:
		p.Goal = goal
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}
}

// Validate checks the categorical fields and the workout-day invariant.
// Numeric attributes are deliberately not range-checked: degenerate values
// flow through the goal arithmetic rather than failing.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrUsernameMissing
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGender, p.Gender)
	}
	switch p.Goal {
	case GoalBuildMuscle, GoalLoseFat, GoalRecomposition:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGoal, p.Goal)
	}
	if p.WorkoutFrequency != len(p.WorkoutDays) {
		return fmt.Errorf("workout frequency %d does not match %d selected days",
			p.WorkoutFrequency, len(p.WorkoutDays))
	}
	if len(p.WorkoutDays) < minWorkoutDays || len(p.WorkoutDays) > maxWorkoutDays {
		return fmt.Errorf("%w: got %d", ErrWorkoutDayCount, len(p.WorkoutDays))
	}
	for _, day := range p.WorkoutDays {
		if _, err := canonicalWeekday(day); err != nil {
			return err
		}
	}
	return nil
}

// SameWorkoutDays reports whether two day selections contain the same days
// regardless of order. A full plan regeneration is triggered exactly when
// this returns false across a profile update.
func SameWorkoutDays(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, day := range a {
		if !slices.Contains(b, day) {
			return false
		}
	}
	return true
}

func canonicalWeekday(day string) (string, error) {
	for _, name := range weekdayNames {
		if strings.EqualFold(name, strings.TrimSpace(day)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
}
