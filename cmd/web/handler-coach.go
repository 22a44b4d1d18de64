package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gymello/gymello/internal/ai"
	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/workout"
)

// coachFallbackMessage is served when the AI backend is unreachable so the
// chat UI always has something to show.
const coachFallbackMessage = "I'm having trouble connecting right now. Please check your connection and try again."

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// coachChatPOST answers a coaching question with the user's profile and
// current plan as context. AI failures degrade to a fallback message
// instead of an error status.
func (app *application) coachChatPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := app.currentUsername(r)

	var req chatRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		app.clientError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	// Profile and plan are best-effort context; the chat works without them.
	var p *profile.Profile
	var stored profile.Profile
	if err := app.store.Get(ctx, username, store.KindProfile, &stored); err == nil {
		p = &stored
	}
	var plan workout.Plan
	if loaded, err := app.workouts.Plan(ctx, username); err == nil {
		plan = loaded
	}

	answer, err := app.coach.Chat(ctx, req.Prompt, p, plan)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "coach chat failed", errors.SlogError(err))
		answer = coachFallbackMessage
	}
	app.writeJSON(w, r, http.StatusOK, chatResponse{Answer: answer})
}

// foodLookupGET resolves nutrition facts for the q query parameter.
func (app *application) foodLookupGET(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		app.clientError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	item, err := app.coach.LookupFood(r.Context(), query)
	if errors.Is(err, ai.ErrFoodNotFound) {
		app.clientError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, item)
}

type guidanceResponse struct {
	HTML string `json:"html"`
}

// exerciseGuidanceGET returns rendered how-to instructions for an exercise.
// Failures degrade to a static message like the chat endpoint.
func (app *application) exerciseGuidanceGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	html, err := app.coach.ExerciseGuidance(ctx, name)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "exercise guidance failed", errors.SlogError(err))
		html = "<p>Could not load exercise instructions at this time.</p>"
	}
	app.writeJSON(w, r, http.StatusOK, guidanceResponse{HTML: html})
}
