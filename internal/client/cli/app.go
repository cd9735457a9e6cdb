package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/config"
	"github.com/dmitrijs2005/hostctl/internal/client/services"
	"github.com/dmitrijs2005/hostctl/internal/client/storage"
	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
	"github.com/dmitrijs2005/hostctl/internal/logging"
	"github.com/sethvargo/go-retry"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	apiClient api.Client

	session   services.SessionService
	instances services.InstanceService
	billing   services.BillingService
	tickets   services.TicketService

	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.Default())

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	app := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}

	store := tokens.NewStore(db)
	client := api.NewHTTPClient(store, api.Options{
		BaseURL:          c.APIBaseURL,
		Timeout:          c.RequestTimeout,
		RefreshLookahead: c.RefreshLookahead,
		OnSessionExpired: app.onSessionExpired,
		Logger:           log,
	})

	app.apiClient = client
	app.session = services.NewSessionService(client, store, log)
	app.instances = services.NewInstanceService(client)
	app.billing = services.NewBillingService(client)
	app.tickets = services.NewTicketService(client)

	return app, nil
}

// onSessionExpired fires after a terminal authentication failure has cleared
// the stored session. The REPL prompt is the CLI's "login entry point".
func (a *App) onSessionExpired() {
	fmt.Println("Session expired, please log in again.")
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.session.Close(ctx)
		_ = a.db.Close()
	}()

	if err := a.waitForBackend(ctx); err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}

	a.Root(ctx)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		fmt.Printf("Switched to %s mode\n", mode)
	}
}

// waitForBackend probes the API with fibonacci backoff for a few seconds so a
// freshly started backend does not greet the user with an error.
func (a *App) waitForBackend(ctx context.Context) error {
	b := retry.WithMaxDuration(5*time.Second, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := a.apiClient.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// StartOnlineStatusWatcher periodically pings the backend and flips the
// online/offline indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
