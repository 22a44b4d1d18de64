package nutrition

import "time"

// Today returns the current date in the log's date format.
func Today() string {
	return time.Now().Format(time.DateOnly)
}

// EmptyDailyLog returns a fresh log for the given date with all meal slots
// present but empty.
func EmptyDailyLog(date string) DailyLog {
	return DailyLog{
		Date: date,
		Meals: Meals{
			Breakfast: []LoggedFood{},
			Lunch:     []LoggedFood{},
			Dinner:    []LoggedFood{},
			Snacks:    []LoggedFood{},
		},
		WorkoutCompleted: false,
	}
}

// TodayLog finds the log for the given date, or returns an empty one without
// modifying logs. The empty log is not persisted until something is added to
// it.
func TodayLog(logs []DailyLog, date string) DailyLog {
	for _, log := range logs {
		if log.Date == date {
			return log
		}
	}
	return EmptyDailyLog(date)
}

// TotalMacros sums the nutrients of every food in the day's meals, scaling
// each food by logged amount over serving size. Entries without a positive
// serving size contribute nothing; the scale factor would be undefined.
func TotalMacros(meals Meals) Totals {
	var totals Totals
	for _, food := range meals.All() {
		if food.ServingSize <= 0 {
			continue
		}
		factor := food.LoggedAmount / food.ServingSize
		totals.Calories += food.Calories * factor
		totals.Protein += food.Protein * factor
		totals.Carbs += food.Carbs * factor
		totals.Fat += food.Fat * factor
		totals.Fiber += food.Fiber * factor
	}
	return totals
}
