// Package server exposes the schedule lookup, presence map, weather viewer
// and login endpoints over HTTP.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mfiguera/torn"
	"github.com/mfiguera/torn/internal/logging"
	"github.com/mfiguera/torn/weather"
)

// Application holds the dependencies shared by the HTTP handlers.
type Application struct {
	logger   *slog.Logger
	store    *torn.Store
	shifts   torn.Source
	calendar torn.Source
	presence string
	stations *weather.Directory
	weather  *weather.Client
	users    map[string]string
	env      string
}

// Options configures an Application. Logger and Store are required; the
// rest may be zero, which disables the corresponding endpoint gracefully.
type Options struct {
	Logger   *slog.Logger
	Store    *torn.Store
	Shifts   torn.Source
	Calendar torn.Source
	// Presence is the raw markdown of the presence map.
	Presence string
	Stations *weather.Directory
	Weather  *weather.Client
	// Users maps user names to passwords for the login endpoint.
	Users map[string]string
	Env   string
}

func New(opts Options) *Application {
	return &Application{
		logger:   opts.Logger,
		store:    opts.Store,
		shifts:   opts.Shifts,
		calendar: opts.Calendar,
		presence: opts.Presence,
		stations: opts.Stations,
		weather:  opts.Weather,
		users:    opts.Users,
		env:      opts.Env,
	}
}

// Routes builds the router with request logging applied.
func (app *Application) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/health", app.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/schedule", app.scheduleHandler)
	router.HandlerFunc(http.MethodGet, "/api/presence/:torn", app.presenceHandler)
	router.HandlerFunc(http.MethodGet, "/api/stations", app.stationsHandler)
	router.HandlerFunc(http.MethodGet, "/api/weather/:station", app.weatherHandler)
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginHandler)
	router.HandlerFunc(http.MethodPost, "/api/reload", app.reloadHandler)
	return app.logRequests(router)
}

// Serve runs the HTTP server until it fails.
func (app *Application) Serve(port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}
	app.logger.Info("starting server", "addr", srv.Addr, "env", app.env)
	return srv.ListenAndServe()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (app *Application) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logging.HTTPRequest(app.logger, r.Method, r.URL.Path, recorder.status,
			float64(time.Since(start).Microseconds())/1000)
	})
}
