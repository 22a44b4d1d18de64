package main

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/workout"
)

type dashboardResponse struct {
	Profile   profile.Profile         `json:"profile"`
	Goals     nutrition.Goals         `json:"goals"`
	Plan      workout.Plan            `json:"plan,omitempty"`
	TodayLog  nutrition.DailyLog      `json:"todayLog"`
	Totals    nutrition.Totals        `json:"totals"`
	WeightLog []nutrition.WeightEntry `json:"weightLog"`
	Todos     []profile.Todo          `json:"todos"`
}

// dashboardGET aggregates everything the home screen needs in one response.
// The reads are independent, so they run concurrently against the read pool.
func (app *application) dashboardGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := app.currentUsername(r)

	var resp dashboardResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.store.Get(gctx, username, store.KindProfile, &resp.Profile); err != nil {
			return err
		}
		resp.Goals = nutrition.CalculateGoals(resp.Profile)
		return nil
	})
	g.Go(func() error {
		plan, err := app.workouts.Plan(gctx, username)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		resp.Plan = plan
		return err
	})
	g.Go(func() error {
		logs, err := app.nutrition.Logs(gctx, username)
		if err != nil {
			return err
		}
		resp.TodayLog = nutrition.TodayLog(logs, nutrition.Today())
		resp.Totals = nutrition.TotalMacros(resp.TodayLog.Meals)
		return nil
	})
	g.Go(func() error {
		entries, err := app.nutrition.WeightLog(gctx, username)
		resp.WeightLog = entries
		return err
	})
	g.Go(func() error {
		var todos []profile.Todo
		err := app.store.Get(gctx, username, store.KindTodos, &todos)
		if errors.Is(err, store.ErrNotFound) {
			err = nil
		}
		if todos == nil {
			todos = []profile.Todo{}
		}
		resp.Todos = todos
		return err
	})

	if err := g.Wait(); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}
