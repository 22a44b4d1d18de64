package main

import "net/http"

func (app *application) weightGET(w http.ResponseWriter, r *http.Request) {
	entries, err := app.nutrition.WeightLog(r.Context(), app.currentUsername(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, entries)
}

type weightRequest struct {
	WeightKg float64 `json:"weight"`
}

func (app *application) weightPOST(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WeightKg <= 0 {
		app.clientError(w, http.StatusBadRequest, "weight must be positive")
		return
	}

	entries, err := app.nutrition.AddWeight(r.Context(), app.currentUsername(r), req.WeightKg)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, entries)
}
