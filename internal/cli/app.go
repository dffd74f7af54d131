// Package cli is the interactive front end of the marketplace: it wires the
// credential and catalog stores together and exposes them as REPL commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"mercadito/internal/config"
	"mercadito/internal/logging"
	"mercadito/internal/models"
	"mercadito/internal/seed"
	"mercadito/internal/services"
	"mercadito/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     *services.AuthService
	catalog  *services.CatalogService
	validate *validator.Validate
	reader   *bufio.Reader

	// lastView is the listing slice most recently printed, so "show <n>"
	// can resolve the user's index against what they actually saw.
	lastView []models.Listing
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := newLogger(c.LogLevel)

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	auth := services.NewAuthService(db, log.With("component", "auth"))
	auth.Restore(ctx)

	var listings []models.Listing
	if c.SeedCatalog {
		listings = seed.Listings()
	}
	catalog := services.NewCatalogService(listings)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		auth:     auth,
		catalog:  catalog,
		validate: validator.New(),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(level string) logging.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h))
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Bienvenido a Mercadito (escribe 'help' para ver los comandos)")
	if user, ok := a.auth.CurrentUser(); ok {
		printlnFn("Sesión restaurada:", user.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	s := ""
	if user, ok := a.auth.CurrentUser(); ok {
		s = "(" + user.Email + ")"
	}
	return s
}
