package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mfiguera/torn"
)

type healthData struct {
	Status string `json:"status"`
	Loaded bool   `json:"data_loaded"`
	Env    string `json:"env"`
}

func (app *Application) healthHandler(w http.ResponseWriter, r *http.Request) {
	app.sendJSON(w, http.StatusOK, healthData{
		Status: "ok",
		Loaded: app.store.Loaded(),
		Env:    app.env,
	})
}

type scheduleData struct {
	Date string `json:"data"`
	// Servei is the day's service code as resolved from the calendar,
	// before any line substitution.
	Servei    string        `json:"servei"`
	Torn      string        `json:"torn"`
	Resultats []torn.Result `json:"resultats"`
}

func (app *Application) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	dataset := app.store.Dataset()
	if dataset == nil {
		app.sendError(w, http.StatusServiceUnavailable, "schedule data not loaded")
		return
	}
	shiftID := r.URL.Query().Get("torn")
	if shiftID == "" {
		app.sendError(w, http.StatusBadRequest, "missing torn parameter")
		return
	}
	date := r.URL.Query().Get("data")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	results, dayService := dataset.Lookup(date, shiftID)
	if results == nil {
		// Absence is an expected outcome; keep the JSON array non-null.
		results = []torn.Result{}
	}
	app.sendJSON(w, http.StatusOK, scheduleData{
		Date:      torn.NormalizeDate(date),
		Servei:    strings.TrimSpace(dayService),
		Torn:      strings.ToUpper(strings.TrimSpace(shiftID)),
		Resultats: results,
	})
}

type presenceData struct {
	Torn    string `json:"torn"`
	Section string `json:"section"`
}

func (app *Application) presenceHandler(w http.ResponseWriter, r *http.Request) {
	if app.presence == "" {
		app.sendError(w, http.StatusServiceUnavailable, "presence map not loaded")
		return
	}
	params := httprouter.ParamsFromContext(r.Context())
	shiftID := params.ByName("torn")
	app.sendJSON(w, http.StatusOK, presenceData{
		Torn:    strings.ToUpper(shiftID),
		Section: torn.ExtractSection(app.presence, shiftID),
	})
}

func (app *Application) stationsHandler(w http.ResponseWriter, r *http.Request) {
	if app.stations == nil {
		app.sendError(w, http.StatusServiceUnavailable, "station directory not loaded")
		return
	}
	matches := app.stations.Search(r.URL.Query().Get("q"), 10)
	app.sendJSON(w, http.StatusOK, matches)
}

func (app *Application) weatherHandler(w http.ResponseWriter, r *http.Request) {
	if app.weather == nil {
		app.sendError(w, http.StatusServiceUnavailable, "weather client not configured")
		return
	}
	params := httprouter.ParamsFromContext(r.Context())
	observation, err := app.weather.Fetch(r.Context(), params.ByName("station"))
	if err != nil {
		app.sendError(w, http.StatusBadGateway, err.Error())
		return
	}
	app.sendJSON(w, http.StatusOK, observation)
}

type reloadData struct {
	Loaded   bool `json:"loaded"`
	Warnings int  `json:"warnings"`
}

func (app *Application) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if app.shifts == nil || app.calendar == nil {
		app.sendError(w, http.StatusServiceUnavailable, "data sources not configured")
		return
	}
	warns, err := app.store.Reload(r.Context(), app.shifts, app.calendar)
	if err != nil {
		// The previous dataset, if any, is still being served.
		app.sendError(w, http.StatusBadGateway, err.Error())
		return
	}
	for _, warn := range warns {
		app.logger.Warn("skipped row", "table", warn.Table(), "reason", warn.Error())
	}
	app.sendJSON(w, http.StatusOK, reloadData{Loaded: true, Warnings: len(warns)})
}
