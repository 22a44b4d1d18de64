// Package workout provides the exercise catalog and weekly plan generation.
package workout

// Category classifies the training style of an exercise.
type Category string

const (
	CategoryWeightTraining Category = "weight_training"
	CategoryCardio         Category = "cardio"
	CategoryStretching     Category = "stretching"
	CategoryHIIT           Category = "hiit"
)

// MuscleGroup tags an exercise with the body area it targets. The values
// double as the draw pools for session templates.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "Chest"
	MuscleBack       MuscleGroup = "Back"
	MuscleLegs       MuscleGroup = "Legs"
	MuscleShoulders  MuscleGroup = "Shoulders"
	MuscleArms       MuscleGroup = "Arms"
	MuscleFullBody   MuscleGroup = "Full Body"
	MuscleCardio     MuscleGroup = "Cardio"
	MuscleStretching MuscleGroup = "Stretching"
	MuscleHIIT       MuscleGroup = "HIIT"
)

// Exercise is a catalog entry or a plan entry. Catalog entries are immutable
// reference data; once placed into a session, the copy may diverge from the
// catalog default through goal tuning or manual edits.
//
// Reps is free-form text: rep ranges ("8-12"), holds ("60s hold") and
// durations ("30 min") all occur in the catalog.
type Exercise struct {
	Name        string      `json:"name"`
	Sets        int         `json:"sets"`
	Reps        string      `json:"reps"`
	RestSeconds int         `json:"rest"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Category    Category    `json:"category"`
	Equipment   string      `json:"equipment,omitempty"`
}

// RestDayTitle marks a day without a training session.
const RestDayTitle = "Rest Day"

// Session is one training day of the weekly plan.
type Session struct {
	Day       string     `json:"day"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// RestDay returns the canonical rest representation for the given day.
func RestDay(day string) Session {
	return Session{Day: day, Title: RestDayTitle, Exercises: []Exercise{}}
}

// Plan maps opaque session keys ("day1", "day2", ...) to sessions. The key
// carries no meaning; only Session.Day does. After generation, the set of
// session days equals the profile's selected workout days.
type Plan map[string]Session

// Days returns the Session.Day value of every session in the plan.
func (p Plan) Days() []string {
	days := make([]string, 0, len(p))
	for _, session := range p {
		days = append(days, session.Day)
	}
	return days
}
