package nutrition_test

import (
	"math"
	"testing"

	"github.com/gymello/gymello/internal/nutrition"
)

func loggedOats(amount float64) nutrition.LoggedFood {
	return nutrition.LoggedFood{
		FoodItem: nutrition.FoodItem{
			Name:     "Oats",
			Calories: 200, Protein: 7, Carbs: 34, Fat: 4, Fiber: 5,
			ServingSize: 100, ServingUnit: "g",
		},
		ID:           "oats-1",
		LoggedAmount: amount,
		LoggedUnit:   "g",
	}
}

func TestTotalMacros(t *testing.T) {
	t.Run("empty meals are all zero", func(t *testing.T) {
		totals := nutrition.TotalMacros(nutrition.Meals{})
		if totals != (nutrition.Totals{}) {
			t.Errorf("TotalMacros(empty) = %+v, want zeros", totals)
		}
	})

	t.Run("scales by logged amount over serving size", func(t *testing.T) {
		meals := nutrition.Meals{Breakfast: []nutrition.LoggedFood{loggedOats(150)}}
		totals := nutrition.TotalMacros(meals)
		want := nutrition.Totals{Calories: 300, Protein: 10.5, Carbs: 51, Fat: 6, Fiber: 7.5}
		if !totalsNear(totals, want) {
			t.Errorf("TotalMacros() = %+v, want %+v", totals, want)
		}
	})

	t.Run("sums across meal slots", func(t *testing.T) {
		meals := nutrition.Meals{
			Breakfast: []nutrition.LoggedFood{loggedOats(100)},
			Dinner:    []nutrition.LoggedFood{loggedOats(100)},
		}
		totals := nutrition.TotalMacros(meals)
		if !totalsNear(totals, nutrition.Totals{Calories: 400, Protein: 14, Carbs: 68, Fat: 8, Fiber: 10}) {
			t.Errorf("TotalMacros() = %+v", totals)
		}
	})

	t.Run("zero serving size contributes nothing", func(t *testing.T) {
		broken := loggedOats(100)
		broken.ServingSize = 0
		meals := nutrition.Meals{
			Lunch:  []nutrition.LoggedFood{broken},
			Snacks: []nutrition.LoggedFood{loggedOats(100)},
		}
		totals := nutrition.TotalMacros(meals)
		if !totalsNear(totals, nutrition.Totals{Calories: 200, Protein: 7, Carbs: 34, Fat: 4, Fiber: 5}) {
			t.Errorf("TotalMacros() = %+v, want only the valid entry counted", totals)
		}
	})
}

func totalsNear(got, want nutrition.Totals) bool {
	const eps = 1e-9
	return math.Abs(got.Calories-want.Calories) < eps &&
		math.Abs(got.Protein-want.Protein) < eps &&
		math.Abs(got.Carbs-want.Carbs) < eps &&
		math.Abs(got.Fat-want.Fat) < eps &&
		math.Abs(got.Fiber-want.Fiber) < eps
}

func TestTodayLog(t *testing.T) {
	logs := []nutrition.DailyLog{
		{Date: "2026-08-30"},
		{Date: "2026-08-31", WorkoutCompleted: true},
	}

	t.Run("finds existing log", func(t *testing.T) {
		log := nutrition.TodayLog(logs, "2026-08-31")
		if !log.WorkoutCompleted {
			t.Error("expected the stored log for 2026-08-31")
		}
	})

	t.Run("returns empty log without mutating the slice", func(t *testing.T) {
		log := nutrition.TodayLog(logs, "2026-09-01")
		if log.Date != "2026-09-01" || log.WorkoutCompleted {
			t.Errorf("unexpected fresh log: %+v", log)
		}
		if log.Meals.Breakfast == nil || log.Meals.Snacks == nil {
			t.Error("fresh log must have all meal slots initialised")
		}
		if len(logs) != 2 {
			t.Errorf("TodayLog must not append, got %d logs", len(logs))
		}
	})
}

func TestParseMealType(t *testing.T) {
	for _, valid := range []string{"breakfast", "lunch", "dinner", "snacks"} {
		if _, err := nutrition.ParseMealType(valid); err != nil {
			t.Errorf("ParseMealType(%q) = %v, want nil", valid, err)
		}
	}
	if _, err := nutrition.ParseMealType("brunch"); err == nil {
		t.Error("ParseMealType(brunch) = nil, want error")
	}
}
