package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// loginHandler checks credentials against the configured user map and hands
// out an opaque session token. There is no session store: the client keeps
// the token and the server never inspects it again.
func (app *Application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.sendJSON(w, http.StatusBadRequest, loginResponse{Success: false, Message: "invalid request body"})
		return
	}
	password, ok := app.users[req.User]
	if !ok || subtle.ConstantTimeCompare([]byte(password), []byte(req.Password)) != 1 {
		app.sendJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Message: "incorrect credentials"})
		return
	}
	token, err := newToken()
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sendJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
