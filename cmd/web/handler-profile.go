package main

import (
	"net/http"

	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := app.store.Get(r.Context(), app.currentUsername(r), store.KindProfile, &p); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}

// profilePUT replaces the profile. When the set of workout days changes the
// whole plan is regenerated; other edits keep the current plan. Nutrient
// goals need no handling here since they are derived on read.
func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := app.currentUsername(r)

	var old profile.Profile
	if err := app.store.Get(ctx, username, store.KindProfile, &old); err != nil {
		app.serverError(w, r, err)
		return
	}

	var updated profile.Profile
	if err := readJSON(r, &updated); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The username is the account identity and cannot be edited.
	updated.Username = old.Username
	if err := updated.SetWorkoutDays(updated.WorkoutDays); err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := updated.Validate(); err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := app.store.Set(ctx, username, store.KindProfile, updated); err != nil {
		app.serverError(w, r, err)
		return
	}

	if !profile.SameWorkoutDays(old.WorkoutDays, updated.WorkoutDays) {
		if _, err := app.workouts.Generate(ctx, updated); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	app.writeJSON(w, r, http.StatusOK, updated)
}

// goalsGET derives the daily nutrient targets from the current profile.
func (app *application) goalsGET(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := app.store.Get(r.Context(), app.currentUsername(r), store.KindProfile, &p); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, nutrition.CalculateGoals(p))
}
