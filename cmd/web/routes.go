package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes(corsOrigin string) http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logRequest(secureHeaders(noCache(next))))
		}
		session = func(next http.Handler) http.Handler {
			return base(app.sessionManager.LoadAndSave(next))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/register", session(http.HandlerFunc(app.registerPOST)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /api/dashboard", mustSession(http.HandlerFunc(app.dashboardGET)))
	mux.Handle("GET /api/profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", mustSession(http.HandlerFunc(app.profilePUT)))
	mux.Handle("DELETE /api/account", mustSession(http.HandlerFunc(app.accountDELETE)))
	mux.Handle("GET /api/goals", mustSession(http.HandlerFunc(app.goalsGET)))

	mux.Handle("GET /api/plan", mustSession(http.HandlerFunc(app.planGET)))
	mux.Handle("PUT /api/plan", mustSession(http.HandlerFunc(app.planPUT)))
	mux.Handle("POST /api/plan/{sessionKey}/regenerate", mustSession(http.HandlerFunc(app.planRegeneratePOST)))

	mux.Handle("GET /api/logs", mustSession(http.HandlerFunc(app.logsGET)))
	mux.Handle("GET /api/logs/today", mustSession(http.HandlerFunc(app.todayLogGET)))
	mux.Handle("POST /api/logs/today/meals/{mealType}", mustSession(http.HandlerFunc(app.foodPOST)))
	mux.Handle("DELETE /api/logs/today/meals/{mealType}/{foodID}", mustSession(http.HandlerFunc(app.foodDELETE)))
	mux.Handle("POST /api/logs/today/workout-completed", mustSession(http.HandlerFunc(app.workoutCompletedPOST)))

	mux.Handle("GET /api/weight", mustSession(http.HandlerFunc(app.weightGET)))
	mux.Handle("POST /api/weight", mustSession(http.HandlerFunc(app.weightPOST)))

	mux.Handle("GET /api/meals", mustSession(http.HandlerFunc(app.customMealsGET)))
	mux.Handle("POST /api/meals", mustSession(http.HandlerFunc(app.customMealPOST)))
	mux.Handle("DELETE /api/meals/{mealID}", mustSession(http.HandlerFunc(app.customMealDELETE)))
	mux.Handle("POST /api/meals/{mealID}/log/{mealType}", mustSession(http.HandlerFunc(app.customMealLogPOST)))

	mux.Handle("GET /api/todos", mustSession(http.HandlerFunc(app.todosGET)))
	mux.Handle("POST /api/todos", mustSession(http.HandlerFunc(app.todoPOST)))
	mux.Handle("DELETE /api/todos/{todoID}", mustSession(http.HandlerFunc(app.todoDELETE)))
	mux.Handle("POST /api/todos/{todoID}/toggle", mustSession(http.HandlerFunc(app.todoTogglePOST)))

	mux.Handle("POST /api/coach/chat", mustSession(http.HandlerFunc(app.coachChatPOST)))
	mux.Handle("GET /api/foods/lookup", mustSession(http.HandlerFunc(app.foodLookupGET)))
	mux.Handle("GET /api/exercises/{name}/guidance", mustSession(http.HandlerFunc(app.exerciseGuidanceGET)))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(mux)
}
