package main

import (
	"net/http"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/nutrition"
)

func (app *application) logsGET(w http.ResponseWriter, r *http.Request) {
	logs, err := app.nutrition.Logs(r.Context(), app.currentUsername(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, logs)
}

type todayLogResponse struct {
	Log    nutrition.DailyLog `json:"log"`
	Totals nutrition.Totals   `json:"totals"`
}

// todayLogGET returns today's log together with its nutrient totals. A day
// without entries comes back as an empty log, not a 404.
func (app *application) todayLogGET(w http.ResponseWriter, r *http.Request) {
	logs, err := app.nutrition.Logs(r.Context(), app.currentUsername(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	log := nutrition.TodayLog(logs, nutrition.Today())
	app.writeJSON(w, r, http.StatusOK, todayLogResponse{
		Log:    log,
		Totals: nutrition.TotalMacros(log.Meals),
	})
}

type foodRequest struct {
	Food   nutrition.FoodItem `json:"food"`
	Amount float64            `json:"amount"`
	Unit   string             `json:"unit"`
}

func (app *application) foodPOST(w http.ResponseWriter, r *http.Request) {
	meal, err := nutrition.ParseMealType(r.PathValue("mealType"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req foodRequest
	if err = readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := app.nutrition.AddFood(r.Context(), app.currentUsername(r), meal, req.Food, req.Amount, req.Unit)
	if errors.Is(err, nutrition.ErrInvalidServingSize) {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

func (app *application) foodDELETE(w http.ResponseWriter, r *http.Request) {
	meal, err := nutrition.ParseMealType(r.PathValue("mealType"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest, err.Error())
		return
	}

	log, err := app.nutrition.RemoveFood(r.Context(), app.currentUsername(r), meal, r.PathValue("foodID"))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

func (app *application) workoutCompletedPOST(w http.ResponseWriter, r *http.Request) {
	log, err := app.nutrition.MarkWorkoutCompleted(r.Context(), app.currentUsername(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}
