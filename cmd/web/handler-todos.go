package main

import (
	"net/http"
	"strings"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
)

func (app *application) todos(r *http.Request) ([]profile.Todo, error) {
	var list []profile.Todo
	err := app.store.Get(r.Context(), app.currentUsername(r), store.KindTodos, &list)
	if errors.Is(err, store.ErrNotFound) {
		return []profile.Todo{}, nil
	}
	return list, err
}

func (app *application) saveTodos(r *http.Request, list []profile.Todo) error {
	return app.store.Set(r.Context(), app.currentUsername(r), store.KindTodos, list)
}

func (app *application) todosGET(w http.ResponseWriter, r *http.Request) {
	list, err := app.todos(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, list)
}

type todoRequest struct {
	Text string `json:"text"`
}

func (app *application) todoPOST(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		app.clientError(w, http.StatusBadRequest, "todo text is required")
		return
	}

	list, err := app.todos(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	list = profile.AddTodo(list, req.Text)
	if err = app.saveTodos(r, list); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, list)
}

func (app *application) todoDELETE(w http.ResponseWriter, r *http.Request) {
	list, err := app.todos(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	list = profile.RemoveTodo(list, r.PathValue("todoID"))
	if err = app.saveTodos(r, list); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, list)
}

func (app *application) todoTogglePOST(w http.ResponseWriter, r *http.Request) {
	list, err := app.todos(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	list = profile.ToggleTodo(list, r.PathValue("todoID"))
	if err = app.saveTodos(r, list); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, list)
}
