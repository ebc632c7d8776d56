package mux

import (
	"boerenbridge-server/pkg/game"
	"boerenbridge-server/pkg/scoring"
	"errors"
	"fmt"
	"net/http"
)

// checkSubmissionFields rejects values that are nonsense regardless of the
// game the round was submitted to. Cross-checks against the game are the
// scoring engine's job.
func checkSubmissionFields(s scoring.Submission) error {
	if s.RoundNumber < 1 {
		return errors.New("round number must be 1 or greater")
	}

	if s.CardsCount < 1 || s.CardsCount > maxMaxCards {
		return fmt.Errorf("cards count must be between 1 and %d", maxMaxCards)
	}

	if s.DealerPosition < 0 {
		return errors.New("dealer position cannot be negative")
	}

	for _, score := range s.Scores {
		if score.Bid < 0 || score.TricksWon < 0 {
			return fmt.Errorf("bid and tricks won cannot be negative for player %d", score.PlayerID)
		}
	}

	return nil
}

func (m *Mux) postGameUUIDRound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g := r.Context().Value(ctxGameKey).(*game.Game)

		var sub scoring.Submission
		if !decodeRequest(w, r, &sub) {
			return
		}

		if err := checkSubmissionFields(sub); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		players, err := g.GetPlayers(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		rounds, err := g.GetRounds(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		accepted, err := scoring.AcceptRound(g.Scoring(players), rounds, sub)
		if err != nil {
			var ve scoring.ValidationError
			if errors.As(err, &ve) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		if err := g.SaveRound(r.Context(), accepted); err != nil {
			var ve scoring.ValidationError
			switch {
			case err == game.ErrDuplicateRound:
				writeJSONError(w, http.StatusConflict, err)
			case errors.As(err, &ve):
				writeJSONError(w, http.StatusBadRequest, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, accepted)
	})
}

type scoreboardResponse struct {
	GameUUID string `json:"gameUuid"`
	scoring.Scoreboard
}

func (m *Mux) getGameUUIDScoreboard() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g := r.Context().Value(ctxGameKey).(*game.Game)

		players, err := g.GetPlayers(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		rounds, err := g.GetRounds(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, scoreboardResponse{
			GameUUID:   g.UUID,
			Scoreboard: scoring.BuildScoreboard(g.Scoring(players), rounds),
		})
	})
}
