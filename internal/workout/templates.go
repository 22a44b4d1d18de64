package workout

import "fmt"

// ErrScheduleSize is returned when no weekly split exists for the requested
// number of training days.
var ErrScheduleSize = fmt.Errorf("no schedule for requested number of workout days")

// sessionTemplate names a session and the muscle groups it draws from.
type sessionTemplate struct {
	title  string
	groups []MuscleGroup
}

// sessionDefinitions maps every known session title to its muscle groups.
// Regeneration of a single day looks the title up here.
var sessionDefinitions = map[string][]MuscleGroup{
	"Upper Body A":           {MuscleChest, MuscleShoulders},
	"Upper Body B":           {MuscleBack, MuscleArms},
	"Upper Body - Push":      {MuscleChest, MuscleShoulders},
	"Upper Body - Pull":      {MuscleBack, MuscleArms},
	"Lower Body":             {MuscleLegs},
	"Full Body Conditioning": {MuscleFullBody},
	"Chest & Triceps":        {MuscleChest, MuscleArms},
	"Back & Biceps":          {MuscleBack, MuscleArms},
	"Legs":                   {MuscleLegs},
	"Shoulders":              {MuscleShoulders},
	"Full Body":              {MuscleFullBody},
	"Push Day":               {MuscleChest, MuscleShoulders},
	"Pull Day":               {MuscleBack, MuscleArms},
	"Leg Day":                {MuscleLegs},
	"Push Day 2":             {MuscleChest, MuscleShoulders},
	"Pull Day 2":             {MuscleBack, MuscleArms},
	"Leg Day 2":              {MuscleLegs},
	"Active Recovery":        {MuscleStretching},
}

// scheduleFor returns the weekly split for the given training day count.
// Sessions are assigned to the user's selected days in order, so the split
// ordering is deliberate: pushing movements land on the first selected day.
func scheduleFor(days int) ([]sessionTemplate, error) {
	switch days {
	case 3:
		return []sessionTemplate{
			{"Upper Body A", sessionDefinitions["Upper Body A"]},
			{"Lower Body", sessionDefinitions["Lower Body"]},
			{"Upper Body B", sessionDefinitions["Upper Body B"]},
		}, nil
	case 4:
		return []sessionTemplate{
			{"Upper Body - Push", sessionDefinitions["Upper Body - Push"]},
			{"Lower Body", sessionDefinitions["Lower Body"]},
			{"Upper Body - Pull", sessionDefinitions["Upper Body - Pull"]},
			{"Full Body Conditioning", sessionDefinitions["Full Body Conditioning"]},
		}, nil
	case 5:
		return []sessionTemplate{
			{"Chest & Triceps", sessionDefinitions["Chest & Triceps"]},
			{"Back & Biceps", sessionDefinitions["Back & Biceps"]},
			{"Legs", sessionDefinitions["Legs"]},
			{"Shoulders", sessionDefinitions["Shoulders"]},
			{"Full Body", sessionDefinitions["Full Body"]},
		}, nil
	case 6, 7:
		templates := []sessionTemplate{
			{"Push Day", sessionDefinitions["Push Day"]},
			{"Pull Day", sessionDefinitions["Pull Day"]},
			{"Leg Day", sessionDefinitions["Leg Day"]},
			{"Push Day 2", sessionDefinitions["Push Day 2"]},
			{"Pull Day 2", sessionDefinitions["Pull Day 2"]},
			{"Leg Day 2", sessionDefinitions["Leg Day 2"]},
		}
		if days == 7 {
			templates = append(templates, sessionTemplate{"Active Recovery", sessionDefinitions["Active Recovery"]})
		}
		return templates, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrScheduleSize, days)
	}
}
