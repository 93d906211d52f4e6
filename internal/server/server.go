package server

import (
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"libdash/internal/api"
	"libdash/internal/assets"
	"libdash/internal/config"
	"libdash/internal/handlers"
	"libdash/internal/logging"
	"libdash/internal/middleware"
	"libdash/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config
	API *api.Client

	dashboardHandler    *handlers.DashboardHandler
	booksHandler        *handlers.BooksHandler
	usersHandler        *handlers.UsersHandler
	transactionsHandler *handlers.TransactionsHandler
	analyticsHandler    *handlers.AnalyticsHandler
	page                *handlers.Page
}

// New creates a new Server instance.
func New() *Server {
	logging.New()
	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	return NewWithClient(cfg, client)
}

// NewWithClient wires a Server around an existing API client. Tests use this
// to point the dashboard at a stub backend.
func NewWithClient(cfg *config.Config, client *api.Client) *Server {
	logo := assets.NewLogoLoader(afero.NewOsFs(), cfg.LogoPath)
	page := handlers.NewPage(client, logo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Static("/static", "web/static")
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:                   e,
		Cfg:                 cfg,
		API:                 client,
		dashboardHandler:    handlers.NewDashboardHandler(page),
		booksHandler:        handlers.NewBooksHandler(page),
		usersHandler:        handlers.NewUsersHandler(page),
		transactionsHandler: handlers.NewTransactionsHandler(page),
		analyticsHandler:    handlers.NewAnalyticsHandler(page),
		page:                page,
	}
}

// setupErrorHandling installs an HTTP error handler that logs unhandled
// errors with a stack trace before delegating to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
