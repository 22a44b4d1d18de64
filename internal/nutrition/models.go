// Package nutrition tracks food intake, nutrient goals and body weight.
package nutrition

import (
	"fmt"

	"github.com/gymello/gymello/internal/errors"
)

// ErrUnknownMealType is returned for meal slots outside the four fixed ones.
var ErrUnknownMealType = errors.NewSentinel("unknown meal type")

// FoodItem is nutritional reference data per serving. Macro amounts are
// grams per serving; calories are kcal per serving.
type FoodItem struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
}

// LoggedFood is a food item as eaten: the reference data plus the actually
// consumed amount. The ID identifies this log entry, not the food.
type LoggedFood struct {
	FoodItem
	ID           string  `json:"id"`
	LoggedAmount float64 `json:"loggedAmount"`
	LoggedUnit   string  `json:"loggedUnit"`
}

// MealType selects one of the four meal slots of a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
)

// ParseMealType validates a meal slot name.
func ParseMealType(s string) (MealType, error) {
	switch t := MealType(s); t {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMealType, s)
	}
}

// Meals holds one day's food entries grouped by meal slot.
type Meals struct {
	Breakfast []LoggedFood `json:"breakfast"`
	Lunch     []LoggedFood `json:"lunch"`
	Dinner    []LoggedFood `json:"dinner"`
	Snacks    []LoggedFood `json:"snacks"`
}

// slot returns a pointer to the entries of the given meal type.
func (m *Meals) slot(t MealType) (*[]LoggedFood, error) {
	switch t {
	case MealBreakfast:
		return &m.Breakfast, nil
	case MealLunch:
		return &m.Lunch, nil
	case MealDinner:
		return &m.Dinner, nil
	case MealSnacks:
		return &m.Snacks, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMealType, t)
	}
}

// All returns every logged food of the day regardless of meal slot.
func (m Meals) All() []LoggedFood {
	all := make([]LoggedFood, 0, len(m.Breakfast)+len(m.Lunch)+len(m.Dinner)+len(m.Snacks))
	all = append(all, m.Breakfast...)
	all = append(all, m.Lunch...)
	all = append(all, m.Dinner...)
	all = append(all, m.Snacks...)
	return all
}

// DailyLog is one calendar day of tracking. Date is in time.DateOnly form.
type DailyLog struct {
	Date             string `json:"date"`
	Meals            Meals  `json:"meals"`
	WorkoutCompleted bool   `json:"workoutCompleted"`
}

// CustomMeal is a user-defined recipe of logged ingredients. Totals are
// denormalised at save time so meal pickers need no recomputation.
type CustomMeal struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Ingredients   []LoggedFood `json:"ingredients"`
	TotalCalories float64      `json:"totalCalories"`
	TotalProtein  float64      `json:"totalProtein"`
	TotalCarbs    float64      `json:"totalCarbs"`
	TotalFat      float64      `json:"totalFat"`
}

// WeightEntry is one body-weight measurement. Date is RFC 3339.
type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

// Totals is the nutrient sum over a set of logged foods.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
