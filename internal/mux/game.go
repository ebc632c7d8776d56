package mux

import (
	"boerenbridge-server/pkg/game"
	"boerenbridge-server/pkg/scoring"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// game size limits; a standard deck must cover the peak round for every player
const (
	minPlayers  = 3
	maxPlayers  = 10
	minMaxCards = 5
	maxMaxCards = 17
	deckSize    = 52
)

type postGamePayload struct {
	PlayerIDs []int64 `json:"playerIds"`
	MaxCards  int     `json:"maxCards"`
}

type gameResponse struct {
	*game.Game
	Players []*game.GamePlayer `json:"players"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if len(pp.PlayerIDs) < minPlayers || len(pp.PlayerIDs) > maxPlayers {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("a game requires %d to %d players", minPlayers, maxPlayers))
			return
		}

		if pp.MaxCards < minMaxCards || pp.MaxCards > maxMaxCards {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("max cards must be between %d and %d", minMaxCards, maxMaxCards))
			return
		}

		if pp.MaxCards > deckSize/len(pp.PlayerIDs) {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("max cards (%d) exceeds limit for %d players (%d)", pp.MaxCards, len(pp.PlayerIDs), deckSize/len(pp.PlayerIDs)))
			return
		}

		seen := make(map[int64]bool)
		for _, id := range pp.PlayerIDs {
			if seen[id] {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("player %d is seated more than once", id))
				return
			}
			seen[id] = true

			if _, err := game.GetPlayerByID(r.Context(), id); err != nil {
				if err == sql.ErrNoRows {
					writeJSONError(w, http.StatusBadRequest, fmt.Errorf("player %d not found", id))
					return
				}

				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		g, err := game.CreateGame(r.Context(), pp.MaxCards, pp.PlayerIDs)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		players, err := g.GetPlayers(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse{Game: g, Players: players})
	}
}

type gameSummary struct {
	*game.Game
	Players     []*game.GamePlayer `json:"players"`
	FinalScores []int              `json:"finalScores,omitempty"`
	WinnerID    *int64             `json:"winnerId,omitempty"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		games, err := game.GetGames(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		summaries := make([]*gameSummary, len(games))
		for i, g := range games {
			players, err := g.GetPlayers(r.Context())
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			summary := &gameSummary{Game: g, Players: players}

			if g.Status == scoring.StatusCompleted {
				rounds, err := g.GetRounds(r.Context())
				if err != nil {
					writeJSONError(w, http.StatusInternalServerError, err)
					return
				}

				board := scoring.BuildScoreboard(g.Scoring(players), rounds)
				if board.IsComplete {
					finalScores := make([]int, len(board.Players))
					for j, p := range board.Players {
						finalScores[j] = p.FinalTotal
					}

					summary.FinalScores = finalScores
					summary.WinnerID = board.WinnerID
				}
			}

			summaries[i] = summary
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

func (m *Mux) getGameUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g := r.Context().Value(ctxGameKey).(*game.Game)
		players, err := g.GetPlayers(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{Game: g, Players: players})
	})
}

func (m *Mux) postGameUUIDAbandon() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g := r.Context().Value(ctxGameKey).(*game.Game)

		if err := g.SetStatus(r.Context(), scoring.StatusAbandoned); err != nil {
			var ue game.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, g)
	})
}
