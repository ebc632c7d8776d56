package mux

import (
	"boerenbridge-server/pkg/game"
	"errors"
	"net/http"
	"regexp"
)

type playerPayload struct {
	Name string `json:"name"`
}

var validPlayerNameRx = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]{0,99}\z`)

func (m *Mux) postPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !validPlayerNameRx.MatchString(pp.Name) {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must only contain letters, numbers, and spaces, and be 100 characters or less"))
			return
		}

		player, err := game.CreatePlayer(r.Context(), pp.Name)
		if err != nil {
			if err == game.ErrDuplicateKey {
				writeJSONError(w, http.StatusBadRequest, errors.New("player name is already taken"))
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, player)
	}
}

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		players, err := game.GetPlayers(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, players)
	}
}
