package main

import (
	"net/http"
	"strings"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/workout"
)

type registrationRequest struct {
	Email   string          `json:"email"`
	Profile profile.Profile `json:"profile"`
}

type sessionResponse struct {
	Profile profile.Profile `json:"profile"`
	Plan    workout.Plan    `json:"plan,omitempty"`
}

// registerPOST creates the account, stores the profile, generates the first
// workout plan and seeds the weight log with the profile weight.
func (app *application) registerPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registrationRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		app.clientError(w, http.StatusBadRequest, "email is required")
		return
	}

	p := req.Profile
	if err := p.SetWorkoutDays(p.WorkoutDays); err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := app.store.CreateAccount(ctx, p.Username, req.Email)
	switch {
	case errors.Is(err, store.ErrUsernameTaken), errors.Is(err, store.ErrEmailTaken):
		app.clientError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}

	if err = app.store.Set(ctx, p.Username, store.KindProfile, p); err != nil {
		app.serverError(w, r, err)
		return
	}
	plan, err := app.workouts.Generate(ctx, p)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if _, err = app.nutrition.AddWeight(ctx, p.Username, p.WeightKg); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(ctx, sessionKeyUsername, p.Username)

	app.writeJSON(w, r, http.StatusCreated, sessionResponse{Profile: p, Plan: plan})
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// loginPOST authenticates by username and the email the account was
// registered with.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email, err := app.store.AccountEmail(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !strings.EqualFold(email, req.Email)) {
		// Same response for unknown username and wrong email.
		app.clientError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var p profile.Profile
	if err = app.store.Get(ctx, req.Username, store.KindProfile, &p); err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(ctx, sessionKeyUsername, p.Username)

	app.writeJSON(w, r, http.StatusOK, sessionResponse{Profile: p})
}

// logoutPOST ends the session. User data stays in the store for the next
// login.
func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// accountDELETE removes the account and all records it owns.
func (app *application) accountDELETE(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := app.currentUsername(r)

	if err := app.store.DeleteAccount(ctx, username); err != nil {
		app.serverError(w, r, err)
		return
	}
	if err := app.sessionManager.Destroy(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
