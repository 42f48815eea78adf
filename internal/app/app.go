package app

import (
	"context"

	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/tui"
	"github.com/MKhiriev/go-feed-reader/models"
)

// Screens are the consumer screens of one App.
type Screens struct {
	Login *tui.LoginScreen
	Feed  *tui.FeedScreen
}

// Wire builds fresh screens bound to ctx and assigns each slot from caps.
func Wire(ctx context.Context, caps Capabilities) Screens {
	loginScreen := tui.NewLoginScreen(ctx)
	loginScreen.Login = caps.Login

	feedScreen := tui.NewFeedScreen(ctx)
	feedScreen.LoadFeeds = caps.LoadFeeds
	feedScreen.Logout = caps.Logout

	return Screens{Login: loginScreen, Feed: feedScreen}
}

// App is the reader process: wired screens plus the program running them.
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	screens Screens
	ui      *tui.TUI

	logger *logger.Logger
}

// NewApp wires caps into a new set of screens.
func NewApp(caps Capabilities, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	log = logger.OrNop(log).Component("app")

	ctx, cancel := context.WithCancel(context.Background())
	screens := Wire(ctx, caps)

	log.Debug().
		Bool("login", caps.Login != nil).
		Bool("load_feeds", caps.LoadFeeds != nil).
		Bool("logout", caps.Logout != nil).
		Msg("capabilities assigned")

	return &App{
		ctx:     ctx,
		cancel:  cancel,
		screens: screens,
		ui:      tui.New(screens.Login, screens.Feed, buildInfo, log),
		logger:  log,
	}
}

// Screens returns the screens wired by NewApp.
func (a *App) Screens() Screens {
	return a.screens
}

// Run shows the program until the user quits or ctx is done. Requests still
// in flight are cancelled when Run returns. Run may be called once.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, a.cancel)
	defer stop()
	defer a.cancel()

	a.logger.Info().Msg("reader started")
	if err := a.ui.Run(ctx); err != nil {
		return err
	}
	a.logger.Info().Msg("reader stopped")
	return nil
}
