package main

import (
	"net/http"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/workout"
)

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	plan, err := app.workouts.Plan(r.Context(), app.currentUsername(r))
	if errors.Is(err, store.ErrNotFound) {
		app.clientError(w, http.StatusNotFound, "no workout plan yet")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}

// planPUT replaces the plan with a client-edited version. Manual edits are
// free-form; only the shape is validated.
func (app *application) planPUT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var plan workout.Plan
	if err := readJSON(r, &plan); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(plan) == 0 {
		app.clientError(w, http.StatusBadRequest, "plan must contain at least one session")
		return
	}

	if err := app.workouts.SavePlan(ctx, app.currentUsername(r), plan); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}

// planRegeneratePOST rerolls the exercises of one session, keeping its day
// and title.
func (app *application) planRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := app.currentUsername(r)

	var p profile.Profile
	if err := app.store.Get(ctx, username, store.KindProfile, &p); err != nil {
		app.serverError(w, r, err)
		return
	}

	plan, err := app.workouts.RegenerateDay(ctx, p, r.PathValue("sessionKey"))
	switch {
	case errors.Is(err, workout.ErrUnknownSessionKey), errors.Is(err, store.ErrNotFound):
		app.clientError(w, http.StatusNotFound, "session not found")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}
