package workout

// DefaultCatalog returns the built-in exercise reference data. Callers get a
// fresh slice on every call so plan tuning never mutates the defaults.
func DefaultCatalog() []Exercise {
	catalog := make([]Exercise, len(defaultCatalog))
	copy(catalog, defaultCatalog)
	return catalog
}

var defaultCatalog = []Exercise{
	// Chest
	{Name: "Bench Press", Sets: 4, Reps: "8-12", RestSeconds: 60, MuscleGroup: MuscleChest, Category: CategoryWeightTraining, Equipment: "Barbell"},
	{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-15", RestSeconds: 60, MuscleGroup: MuscleChest, Category: CategoryWeightTraining, Equipment: "Dumbbells"},
	{Name: "Cable Crossover", Sets: 3, Reps: "12-15", RestSeconds: 45, MuscleGroup: MuscleChest, Category: CategoryWeightTraining, Equipment: "Cable Machine"},
	{Name: "Push-Ups", Sets: 3, Reps: "To Failure", RestSeconds: 60, MuscleGroup: MuscleChest, Category: CategoryWeightTraining, Equipment: "Bodyweight"},
	{Name: "Dumbbell Flyes", Sets: 3, Reps: "12-15", RestSeconds: 45, MuscleGroup: MuscleChest, Category: CategoryWeightTraining, Equipment: "Dumbbells"},

	// Back
	{Name: "Pull-Ups", Sets: 4, Reps: "To Failure", RestSeconds: 75, MuscleGroup: MuscleBack, Category: CategoryWeightTraining, Equipment: "Pull-up Bar"},
	{Name: "Bent Over Rows", Sets: 4, Reps: "8-12", RestSeconds: 60, MuscleGroup: MuscleBack, Category: CategoryWeightTraining, Equipment: "Barbell"},
	{Name: "Lat Pulldowns", Sets: 3, Reps: "10-15", RestSeconds: 60, MuscleGroup: MuscleBack, Category: CategoryWeightTraining, Equipment: "Cable Machine"},
	{Name: "T-Bar Rows", Sets: 3, Reps: "8-12", RestSeconds: 60, MuscleGroup: MuscleBack, Category: CategoryWeightTraining, Equipment: "T-Bar Row Machine"},
	{Name: "Seated Cable Rows", Sets: 3, Reps: "10-15", RestSeconds: 45, MuscleGroup: MuscleBack, Category: CategoryWeightTraining, Equipment: "Cable Machine"},

	// Legs
	{Name: "Squats", Sets: 4, Reps: "8-12", RestSeconds: 90, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Barbell"},
	{Name: "Leg Press", Sets: 4, Reps: "10-15", RestSeconds: 75, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Leg Press Machine"},
	{Name: "Romanian Deadlifts", Sets: 3, Reps: "10-12", RestSeconds: 60, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Barbell/Dumbbells"},
	{Name: "Leg Curls", Sets: 3, Reps: "12-15", RestSeconds: 45, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Leg Curl Machine"},
	{Name: "Leg Extensions", Sets: 3, Reps: "15-20", RestSeconds: 45, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Leg Extension Machine"},
	{Name: "Lunges", Sets: 3, Reps: "10-12 per leg", RestSeconds: 60, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Dumbbells/Bodyweight"},
	{Name: "Hip Thrusts", Sets: 4, Reps: "8-12", RestSeconds: 60, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Barbell"},
	{Name: "Glute Bridges", Sets: 3, Reps: "15-20", RestSeconds: 45, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Bodyweight/Dumbbell"},
	{Name: "Cable Kickbacks", Sets: 3, Reps: "12-15 per leg", RestSeconds: 45, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Cable Machine"},
	{Name: "Bulgarian Split Squats", Sets: 3, Reps: "10-12 per leg", RestSeconds: 60, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Dumbbells"},
	{Name: "Step-Ups", Sets: 3, Reps: "10-15 per leg", RestSeconds: 60, MuscleGroup: MuscleLegs, Category: CategoryWeightTraining, Equipment: "Dumbbells/Box"},

	// Shoulders
	{Name: "Overhead Press", Sets: 4, Reps: "8-12", RestSeconds: 75, MuscleGroup: MuscleShoulders, Category: CategoryWeightTraining, Equipment: "Barbell/Dumbbells"},
	{Name: "Lateral Raises", Sets: 4, Reps: "12-15", RestSeconds: 45, MuscleGroup: MuscleShoulders, Category: CategoryWeightTraining, Equipment: "Dumbbells"},
	{Name: "Face Pulls", Sets: 3, Reps: "15-20", RestSeconds: 45, MuscleGroup: MuscleShoulders, Category: CategoryWeightTraining, Equipment: "Cable Machine"},
	{Name: "Arnold Press", Sets: 3, Reps: "10-12", RestSeconds: 60, MuscleGroup: MuscleShoulders, Category: CategoryWeightTraining, Equipment: "Dumbbells"},

	// Arms
	{Name: "Bicep Curls", Sets: 3, Reps: "10-15", RestSeconds: 45, MuscleGroup: MuscleArms, Category: CategoryWeightTraining, Equipment: "Dumbbells/Barbell"},
	{Name: "Tricep Pushdowns", Sets: 3, Reps: "10-15", RestSeconds: 45, MuscleGroup: MuscleArms, Category: CategoryWeightTraining, Equipment: "Cable Machine"},
	{Name: "Hammer Curls", Sets: 3, Reps: "10-12", RestSeconds: 45, MuscleGroup: MuscleArms, Category: CategoryWeightTraining, Equipment: "Dumbbells"},
	{Name: "Skull Crushers", Sets: 3, Reps: "10-12", RestSeconds: 60, MuscleGroup: MuscleArms, Category: CategoryWeightTraining, Equipment: "EZ Bar/Dumbbells"},

	// Full body
	{Name: "Deadlifts", Sets: 4, Reps: "5-8", RestSeconds: 120, MuscleGroup: MuscleFullBody, Category: CategoryWeightTraining, Equipment: "Barbell"},
	{Name: "Kettlebell Swings", Sets: 4, Reps: "15-20", RestSeconds: 60, MuscleGroup: MuscleFullBody, Category: CategoryHIIT, Equipment: "Kettlebell"},
	{Name: "Goblet Squats", Sets: 3, Reps: "10-15", RestSeconds: 60, MuscleGroup: MuscleFullBody, Category: CategoryWeightTraining, Equipment: "Dumbbell/Kettlebell"},
	{Name: "Dumbbell Rows", Sets: 3, Reps: "10-12 per arm", RestSeconds: 60, MuscleGroup: MuscleFullBody, Category: CategoryWeightTraining, Equipment: "Dumbbells"},
	{Name: "Plank", Sets: 3, Reps: "60s hold", RestSeconds: 45, MuscleGroup: MuscleFullBody, Category: CategoryStretching, Equipment: "Bodyweight"},

	// Cardio
	{Name: "Treadmill Run", Sets: 1, Reps: "20-30 min", RestSeconds: 0, MuscleGroup: MuscleCardio, Category: CategoryCardio, Equipment: "Treadmill"},
	{Name: "Cycling", Sets: 1, Reps: "30 min", RestSeconds: 0, MuscleGroup: MuscleCardio, Category: CategoryCardio, Equipment: "Stationary Bike"},
	{Name: "Jump Rope", Sets: 5, Reps: "3 min on, 1 min off", RestSeconds: 60, MuscleGroup: MuscleCardio, Category: CategoryHIIT, Equipment: "Jump Rope"},

	// Stretching
	{Name: "Hamstring Stretch", Sets: 2, Reps: "30s hold per leg", RestSeconds: 15, MuscleGroup: MuscleStretching, Category: CategoryStretching, Equipment: "Bodyweight"},
	{Name: "Quad Stretch", Sets: 2, Reps: "30s hold per leg", RestSeconds: 15, MuscleGroup: MuscleStretching, Category: CategoryStretching, Equipment: "Bodyweight"},
	{Name: "Chest Stretch", Sets: 2, Reps: "30s hold", RestSeconds: 15, MuscleGroup: MuscleStretching, Category: CategoryStretching, Equipment: "Bodyweight"},

	// HIIT
	{Name: "Burpees", Sets: 4, Reps: "10-15", RestSeconds: 60, MuscleGroup: MuscleHIIT, Category: CategoryHIIT, Equipment: "Bodyweight"},
	{Name: "High Knees", Sets: 4, Reps: "45s on, 15s off", RestSeconds: 15, MuscleGroup: MuscleHIIT, Category: CategoryHIIT, Equipment: "Bodyweight"},
}
