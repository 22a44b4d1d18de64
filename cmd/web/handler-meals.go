package main

import (
	"net/http"
	"strings"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/nutrition"
)

func (app *application) customMealsGET(w http.ResponseWriter, r *http.Request) {
	meals, err := app.nutrition.CustomMeals(r.Context(), app.currentUsername(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, meals)
}

type customMealRequest struct {
	Name        string                 `json:"name"`
	Ingredients []nutrition.LoggedFood `json:"ingredients"`
}

func (app *application) customMealPOST(w http.ResponseWriter, r *http.Request) {
	var req customMealRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Ingredients) == 0 {
		app.clientError(w, http.StatusBadRequest, "a meal needs a name and at least one ingredient")
		return
	}

	meal, err := app.nutrition.AddCustomMeal(r.Context(), app.currentUsername(r), req.Name, req.Ingredients)
	if errors.Is(err, nutrition.ErrInvalidServingSize) {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, meal)
}

func (app *application) customMealDELETE(w http.ResponseWriter, r *http.Request) {
	if err := app.nutrition.RemoveCustomMeal(r.Context(), app.currentUsername(r), r.PathValue("mealID")); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// customMealLogPOST expands a saved recipe into today's meal slot.
func (app *application) customMealLogPOST(w http.ResponseWriter, r *http.Request) {
	meal, err := nutrition.ParseMealType(r.PathValue("mealType"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := app.nutrition.LogCustomMeal(r.Context(), app.currentUsername(r), meal, r.PathValue("mealID"))
	if errors.Is(err, nutrition.ErrMealNotFound) {
		app.clientError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}
