// Package cli is the terminal front-end of Memoria. It is the presentation
// layer the core treats as an external collaborator: all user-facing
// messaging lives here, and it depends only on the coordinator surface.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/memoria-app/memoria/internal/config"
	"github.com/memoria-app/memoria/internal/kvstore"
	"github.com/memoria-app/memoria/internal/logging"
	"github.com/memoria-app/memoria/internal/models"
	"github.com/memoria-app/memoria/internal/picker"
	"github.com/memoria-app/memoria/internal/repositories/accounts"
	"github.com/memoria-app/memoria/internal/repositories/session"
	"github.com/memoria-app/memoria/internal/services"

	_ "modernc.org/sqlite"
)

// core is the surface the front-end is allowed to depend on.
type core interface {
	Apply(ctx context.Context, email string, mutate services.Mutation) (*models.Account, error)
	Register(ctx context.Context, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Account, error)
}

// imagePicker supplies opaque URIs for new posts and profile pictures.
type imagePicker interface {
	Pick(path string) (string, error)
}

// App holds the wiring of the CLI: the coordinator, the picker, and the
// cached copy of the logged-in account used for rendering.
type App struct {
	config  *config.Config
	core    core
	picker  imagePicker
	log     logging.Logger
	reader  *bufio.Reader
	current *models.Account
}

// NewApp opens the local database, wires repositories and coordinator, and
// returns a ready-to-run App.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := kvstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := kvstore.NewSQLiteStore(db)
	coordinator := services.NewCoordinator(
		accounts.NewKVRepository(store),
		session.NewKVRepository(store),
		log,
	)

	pick, err := picker.New(cfg.MediaDir)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		core:   coordinator,
		picker: pick,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

// refresh replaces the rendered account copy with the value the coordinator
// returned after a mutation.
func (a *App) refresh(account *models.Account) {
	a.current = account
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return "(" + a.current.Email + ")"
}

// Run resumes a previous session if one is stored, then hands control to the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if account, err := a.core.Current(ctx); err == nil {
		a.refresh(account)
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
