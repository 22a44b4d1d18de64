package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"github.com/gymello/gymello/internal/ai"
	"github.com/gymello/gymello/internal/envstruct"
	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/logging"
	"github.com/gymello/gymello/internal/nutrition"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/sqlite"
	"github.com/gymello/gymello/internal/store"
	"github.com/gymello/gymello/internal/workout"
)

// coach is the AI surface the handlers depend on. Satisfied by ai.Client in
// production and scripted fakes in tests.
type coach interface {
	Chat(ctx context.Context, prompt string, p *profile.Profile, plan workout.Plan) (string, error)
	LookupFood(ctx context.Context, query string) (nutrition.FoodItem, error)
	ExerciseGuidance(ctx context.Context, exerciseName string) (string, error)
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	store          *store.Store
	workouts       *workout.Service
	nutrition      *nutrition.Service
	coach          coach
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"GYMELLO_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"GYMELLO_SQLITE_URL" envDefault:"./gymello.sqlite3"`
	// OpenAIAPIKey authenticates the coaching and food lookup features.
	OpenAIAPIKey string `env:"GYMELLO_OPENAI_API_KEY" envDefault:""`
	// CORSOrigin is the browser client origin allowed to call the API.
	CORSOrigin string `env:"GYMELLO_CORS_ORIGIN" envDefault:"http://localhost:5173"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	st := store.New(db, logger)
	generator := workout.NewGenerator(workout.DefaultCatalog(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		store:          st,
		workouts:       workout.NewService(st, generator, logger),
		nutrition:      nutrition.NewService(st, logger),
		coach:          ai.NewClient(cfg.OpenAIAPIKey, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes(cfg.CORSOrigin)); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                               //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	// Missing .env is fine, the environment may be set by other means.
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
