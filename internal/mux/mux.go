package mux

import (
	"boerenbridge-server/pkg/game"
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxGameKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	this.Methods(http.MethodGet).Path("/player").Handler(this.getPlayer())
	this.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())

	this.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
	this.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := this.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.gameMiddleware)

	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodGet).Path("/scoreboard").Handler(this.getGameUUIDScoreboard())
	gr.Methods(http.MethodPost).Path("/round").Handler(this.postGameUUIDRound())
	gr.Methods(http.MethodPost).Path("/abandon").Handler(this.postGameUUIDAbandon())

	return this
}

func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		g, err := game.GetGameByUUID(r.Context(), uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxGameKey, g)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
