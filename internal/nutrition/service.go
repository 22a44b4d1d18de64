package nutrition

import (
	"context"
	cryptorand "crypto/rand"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/store"
)

var (
	// ErrInvalidServingSize rejects foods whose nutrient scaling would be
	// undefined.
	ErrInvalidServingSize = errors.NewSentinel("serving size must be greater than zero")
	// ErrMealNotFound is returned when a custom meal ID does not exist.
	ErrMealNotFound = errors.NewSentinel("custom meal not found")
)

// Service persists daily logs, custom meals and the weight log.
type Service struct {
	store  *store.Store
	logger *slog.Logger
	// now is a hook for tests; production wiring uses time.Now.
	now func() time.Time
}

// NewService wires a Service from its dependencies.
func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger, now: time.Now}
}

// Logs returns all daily logs, oldest first. A user without logs gets an
// empty slice, not an error.
func (s *Service) Logs(ctx context.Context, username string) ([]DailyLog, error) {
	var logs []DailyLog
	err := s.store.Get(ctx, username, store.KindDailyLogs, &logs)
	if errors.Is(err, store.ErrNotFound) {
		return []DailyLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	return logs, nil
}

// AddFood logs a food item into today's meal slot. The entry gets a fresh
// ID so the same food can be logged repeatedly and removed individually.
func (s *Service) AddFood(ctx context.Context, username string, meal MealType, item FoodItem, amount float64, unit string) (DailyLog, error) {
	if item.ServingSize <= 0 {
		return DailyLog{}, fmt.Errorf("%w: %v", ErrInvalidServingSize, item.ServingSize)
	}
	entry := LoggedFood{
		FoodItem:     item,
		ID:           cryptorand.Text(),
		LoggedAmount: amount,
		LoggedUnit:   unit,
	}
	return s.updateTodayLog(ctx, username, func(log *DailyLog) error {
		slot, err := log.Meals.slot(meal)
		if err != nil {
			return err
		}
		*slot = append(*slot, entry)
		return nil
	})
}

// RemoveFood deletes the entry with the given ID from today's meal slot.
// Removing an absent ID is a no-op.
func (s *Service) RemoveFood(ctx context.Context, username string, meal MealType, foodID string) (DailyLog, error) {
	return s.updateTodayLog(ctx, username, func(log *DailyLog) error {
		slot, err := log.Meals.slot(meal)
		if err != nil {
			return err
		}
		*slot = slices.DeleteFunc(*slot, func(f LoggedFood) bool { return f.ID == foodID })
		return nil
	})
}

// MarkWorkoutCompleted flags today's workout as done.
func (s *Service) MarkWorkoutCompleted(ctx context.Context, username string) (DailyLog, error) {
	return s.updateTodayLog(ctx, username, func(log *DailyLog) error {
		log.WorkoutCompleted = true
		return nil
	})
}

// updateTodayLog loads the logs, applies fn to today's log (creating it when
// absent), and stores the result with logs ordered by date.
func (s *Service) updateTodayLog(ctx context.Context, username string, fn func(*DailyLog) error) (DailyLog, error) {
	logs, err := s.Logs(ctx, username)
	if err != nil {
		return DailyLog{}, err
	}

	today := s.now().Format(time.DateOnly)
	log := TodayLog(logs, today)
	if err = fn(&log); err != nil {
		return DailyLog{}, err
	}

	idx := slices.IndexFunc(logs, func(l DailyLog) bool { return l.Date == today })
	if idx >= 0 {
		logs[idx] = log
	} else {
		logs = append(logs, log)
	}
	slices.SortFunc(logs, func(a, b DailyLog) int { return strings.Compare(a.Date, b.Date) })

	if err = s.store.Set(ctx, username, store.KindDailyLogs, logs); err != nil {
		return DailyLog{}, fmt.Errorf("save daily logs: %w", err)
	}
	return log, nil
}

// WeightLog returns all weight measurements, oldest first.
func (s *Service) WeightLog(ctx context.Context, username string) ([]WeightEntry, error) {
	var entries []WeightEntry
	err := s.store.Get(ctx, username, store.KindWeightLog, &entries)
	if errors.Is(err, store.ErrNotFound) {
		return []WeightEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load weight log: %w", err)
	}
	return entries, nil
}

// AddWeight appends a measurement stamped with the current time.
func (s *Service) AddWeight(ctx context.Context, username string, weightKg float64) ([]WeightEntry, error) {
	entries, err := s.WeightLog(ctx, username)
	if err != nil {
		return nil, err
	}
	entries = append(entries, WeightEntry{
		Date:     s.now().Format(time.RFC3339),
		WeightKg: weightKg,
	})
	if err = s.store.Set(ctx, username, store.KindWeightLog, entries); err != nil {
		return nil, fmt.Errorf("save weight log: %w", err)
	}
	return entries, nil
}

// CustomMeals returns the user's saved recipes.
func (s *Service) CustomMeals(ctx context.Context, username string) ([]CustomMeal, error) {
	var meals []CustomMeal
	err := s.store.Get(ctx, username, store.KindCustomMeals, &meals)
	if errors.Is(err, store.ErrNotFound) {
		return []CustomMeal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load custom meals: %w", err)
	}
	return meals, nil
}

// AddCustomMeal saves a recipe. Ingredient entries get fresh IDs and the
// nutrient totals are computed from the ingredients as given.
func (s *Service) AddCustomMeal(ctx context.Context, username, name string, ingredients []LoggedFood) (CustomMeal, error) {
	for i := range ingredients {
		if ingredients[i].ServingSize <= 0 {
			return CustomMeal{}, fmt.Errorf("%w: ingredient %q", ErrInvalidServingSize, ingredients[i].Name)
		}
		ingredients[i].ID = cryptorand.Text()
	}

	totals := TotalMacros(Meals{Snacks: ingredients})
	meal := CustomMeal{
		ID:            cryptorand.Text(),
		Name:          name,
		Ingredients:   ingredients,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
	}

	meals, err := s.CustomMeals(ctx, username)
	if err != nil {
		return CustomMeal{}, err
	}
	meals = append(meals, meal)
	if err = s.store.Set(ctx, username, store.KindCustomMeals, meals); err != nil {
		return CustomMeal{}, fmt.Errorf("save custom meals: %w", err)
	}
	return meal, nil
}

// RemoveCustomMeal deletes a recipe by ID. Logged occurrences of the meal
// stay in the daily logs untouched.
func (s *Service) RemoveCustomMeal(ctx context.Context, username, mealID string) error {
	meals, err := s.CustomMeals(ctx, username)
	if err != nil {
		return err
	}
	meals = slices.DeleteFunc(meals, func(m CustomMeal) bool { return m.ID == mealID })
	if err = s.store.Set(ctx, username, store.KindCustomMeals, meals); err != nil {
		return fmt.Errorf("save custom meals: %w", err)
	}
	return nil
}

// LogCustomMeal expands a recipe into today's meal slot. Every ingredient
// becomes its own log entry with a fresh ID, so single ingredients can be
// removed afterwards like any other food.
func (s *Service) LogCustomMeal(ctx context.Context, username string, meal MealType, mealID string) (DailyLog, error) {
	meals, err := s.CustomMeals(ctx, username)
	if err != nil {
		return DailyLog{}, err
	}
	idx := slices.IndexFunc(meals, func(m CustomMeal) bool { return m.ID == mealID })
	if idx < 0 {
		return DailyLog{}, fmt.Errorf("%w: %s", ErrMealNotFound, mealID)
	}

	entries := make([]LoggedFood, len(meals[idx].Ingredients))
	for i, ingredient := range meals[idx].Ingredients {
		ingredient.ID = cryptorand.Text()
		entries[i] = ingredient
	}

	return s.updateTodayLog(ctx, username, func(log *DailyLog) error {
		slot, err := log.Meals.slot(meal)
		if err != nil {
			return err
		}
		*slot = append(*slot, entries...)
		return nil
	})
}
