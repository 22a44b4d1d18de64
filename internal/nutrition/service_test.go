package nutrition_test

import (
	"context"
	"testing"
	"time"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/sqlite"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/testhelpers"
)

func newTestService(t *testing.T) *nutrition.Service {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	st := store.New(db, logger)
	if err := st.CreateAccount(ctx, "maria", "maria@example.com"); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return nutrition.NewService(st, logger)
}

func oats() nutrition.FoodItem {
	return nutrition.FoodItem{
		Name:     "Oats",
		Calories: 200, Protein: 7, Carbs: 34, Fat: 4, Fiber: 5,
		ServingSize: 100, ServingUnit: "g",
	}
}

func TestAddAndRemoveFood(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	log, err := svc.AddFood(ctx, "maria", nutrition.MealBreakfast, oats(), 150, "g")
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	if len(log.Meals.Breakfast) != 1 {
		t.Fatalf("breakfast has %d entries, want 1", len(log.Meals.Breakfast))
	}
	entry := log.Meals.Breakfast[0]
	if entry.ID == "" {
		t.Error("logged food must get an ID")
	}
	if entry.LoggedAmount != 150 || entry.LoggedUnit != "g" {
		t.Errorf("logged %v %s, want 150 g", entry.LoggedAmount, entry.LoggedUnit)
	}

	// A second identical entry gets its own ID.
	log, err = svc.AddFood(ctx, "maria", nutrition.MealBreakfast, oats(), 100, "g")
	if err != nil {
		t.Fatalf("AddFood (second): %v", err)
	}
	if len(log.Meals.Breakfast) != 2 {
		t.Fatalf("breakfast has %d entries, want 2", len(log.Meals.Breakfast))
	}
	if log.Meals.Breakfast[0].ID == log.Meals.Breakfast[1].ID {
		t.Error("log entry IDs must be unique")
	}

	log, err = svc.RemoveFood(ctx, "maria", nutrition.MealBreakfast, entry.ID)
	if err != nil {
		t.Fatalf("RemoveFood: %v", err)
	}
	if len(log.Meals.Breakfast) != 1 || log.Meals.Breakfast[0].ID == entry.ID {
		t.Errorf("unexpected breakfast after removal: %+v", log.Meals.Breakfast)
	}

	// Removing a missing ID leaves the log unchanged.
	log, err = svc.RemoveFood(ctx, "maria", nutrition.MealBreakfast, "missing")
	if err != nil {
		t.Fatalf("RemoveFood (missing): %v", err)
	}
	if len(log.Meals.Breakfast) != 1 {
		t.Errorf("breakfast has %d entries after no-op removal, want 1", len(log.Meals.Breakfast))
	}
}

func TestAddFoodRejectsInvalidServingSize(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	broken := oats()
	broken.ServingSize = 0
	if _, err := svc.AddFood(ctx, "maria", nutrition.MealLunch, broken, 100, "g"); !errors.Is(err, nutrition.ErrInvalidServingSize) {
		t.Errorf("AddFood with zero serving size = %v, want ErrInvalidServingSize", err)
	}

	logs, err := svc.Logs(ctx, "maria")
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("rejected food must not create a log, got %d logs", len(logs))
	}
}

func TestMarkWorkoutCompleted(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	log, err := svc.MarkWorkoutCompleted(ctx, "maria")
	if err != nil {
		t.Fatalf("MarkWorkoutCompleted: %v", err)
	}
	if !log.WorkoutCompleted {
		t.Error("workout not marked completed")
	}

	// Marking twice stays completed.
	log, err = svc.MarkWorkoutCompleted(ctx, "maria")
	if err != nil {
		t.Fatalf("MarkWorkoutCompleted (second): %v", err)
	}
	if !log.WorkoutCompleted {
		t.Error("workout must stay completed")
	}
}

func TestLogsOrderedByDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.SetNow(func() time.Time { return day })
	if _, err := svc.MarkWorkoutCompleted(ctx, "maria"); err != nil {
		t.Fatalf("MarkWorkoutCompleted: %v", err)
	}

	// An entry for an earlier day must sort before the existing one.
	svc.SetNow(func() time.Time { return day.AddDate(0, 0, -3) })
	if _, err := svc.AddFood(ctx, "maria", nutrition.MealDinner, oats(), 100, "g"); err != nil {
		t.Fatalf("AddFood: %v", err)
	}

	logs, err := svc.Logs(ctx, "maria")
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].Date != "2026-08-27" || logs[1].Date != "2026-08-30" {
		t.Errorf("logs out of order: %s, %s", logs[0].Date, logs[1].Date)
	}
}

func TestWeightLog(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	entries, err := svc.WeightLog(ctx, "maria")
	if err != nil {
		t.Fatalf("WeightLog: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh user has %d weight entries, want 0", len(entries))
	}

	if _, err = svc.AddWeight(ctx, "maria", 65); err != nil {
		t.Fatalf("AddWeight: %v", err)
	}
	entries, err = svc.AddWeight(ctx, "maria", 64.5)
	if err != nil {
		t.Fatalf("AddWeight (second): %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].WeightKg != 64.5 {
		t.Errorf("latest weight = %v, want 64.5", entries[1].WeightKg)
	}
	if _, err := time.Parse(time.RFC3339, entries[0].Date); err != nil {
		t.Errorf("weight entry date %q is not RFC 3339: %v", entries[0].Date, err)
	}
}

func TestCustomMeals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ingredient := nutrition.LoggedFood{FoodItem: oats(), LoggedAmount: 50, LoggedUnit: "g"}
	meal, err := svc.AddCustomMeal(ctx, "maria", "Overnight oats", []nutrition.LoggedFood{ingredient})
	if err != nil {
		t.Fatalf("AddCustomMeal: %v", err)
	}
	if meal.ID == "" || meal.Ingredients[0].ID == "" {
		t.Error("custom meal and its ingredients must get IDs")
	}
	if meal.TotalCalories != 100 {
		t.Errorf("TotalCalories = %v, want 100 for half a serving", meal.TotalCalories)
	}

	log, err := svc.LogCustomMeal(ctx, "maria", nutrition.MealSnacks, meal.ID)
	if err != nil {
		t.Fatalf("LogCustomMeal: %v", err)
	}
	if len(log.Meals.Snacks) != 1 {
		t.Fatalf("snacks has %d entries, want 1", len(log.Meals.Snacks))
	}
	if log.Meals.Snacks[0].ID == meal.Ingredients[0].ID {
		t.Error("logged ingredient must get a fresh ID, not the recipe's")
	}

	if _, err = svc.LogCustomMeal(ctx, "maria", nutrition.MealSnacks, "missing"); !errors.Is(err, nutrition.ErrMealNotFound) {
		t.Errorf("LogCustomMeal(missing) = %v, want ErrMealNotFound", err)
	}

	if err = svc.RemoveCustomMeal(ctx, "maria", meal.ID); err != nil {
		t.Fatalf("RemoveCustomMeal: %v", err)
	}
	meals, err := svc.CustomMeals(ctx, "maria")
	if err != nil {
		t.Fatalf("CustomMeals: %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("got %d custom meals after removal, want 0", len(meals))
	}

	// The logged occurrence survives recipe deletion.
	logs, err := svc.Logs(ctx, "maria")
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if len(logs) != 1 || len(logs[0].Meals.Snacks) != 1 {
		t.Error("logged custom meal must stay in the daily log after recipe deletion")
	}
}
