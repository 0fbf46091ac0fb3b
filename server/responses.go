package server

import (
	"encoding/json"
	"net/http"

	"github.com/mfiguera/torn/internal/logging"
)

func (app *Application) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(app.logger, "failed to encode response", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *Application) sendError(w http.ResponseWriter, status int, message string) {
	app.sendJSON(w, status, errorResponse{Error: message})
}

func (app *Application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Error(app.logger, "handler failed", err)
	app.sendError(w, http.StatusInternalServerError, "internal server error")
}
