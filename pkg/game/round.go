package game

import (
	"boerenbridge-server/pkg/db"
	"boerenbridge-server/pkg/scoring"
	"context"

	"github.com/lib/pq"
)

// GetRounds returns the game's accepted rounds in ascending round-number
// order, each with its scores, in the shape the scoring engine consumes
func (g *Game) GetRounds(ctx context.Context) ([]scoring.Round, error) {
	const query = `
SELECT rounds.round_number,
       rounds.cards_count,
       rounds.dealer_position,
       round_scores.player_id,
       round_scores.bid,
       round_scores.tricks_won,
       round_scores.score,
       round_scores.running_total
FROM rounds
INNER JOIN round_scores ON round_scores.round_id = rounds.id
WHERE rounds.game_uuid = $1
ORDER BY rounds.round_number ASC, round_scores.id ASC`

	rows, err := db.Instance().QueryContext(ctx, query, g.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := make([]scoring.Round, 0)
	for rows.Next() {
		var round scoring.Round
		var score scoring.RoundScore
		if err := rows.Scan(&round.RoundNumber, &round.CardsCount, &round.DealerPosition,
			&score.PlayerID, &score.Bid, &score.TricksWon, &score.Score, &score.RunningTotal); err != nil {
			return nil, err
		}

		if n := len(rounds); n > 0 && rounds[n-1].RoundNumber == round.RoundNumber {
			rounds[n-1].Scores = append(rounds[n-1].Scores, score)
			continue
		}

		round.Scores = []scoring.RoundScore{score}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

// SaveRound persists an accepted round and, if it was the final round, marks
// the game completed, all in one transaction. The game row is locked for the
// duration so concurrent submissions for the same game serialize here; a
// duplicate round number returns ErrDuplicateRound.
func (g *Game) SaveRound(ctx context.Context, accepted *scoring.AcceptedRound) error {
	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const lockQuery = `
SELECT status
FROM games
WHERE uuid = $1
FOR UPDATE`

	var status scoring.Status
	if err := tx.QueryRowContext(ctx, lockQuery, g.UUID).Scan(&status); err != nil {
		rollback(tx)
		return err
	}

	if status != scoring.StatusActive {
		rollback(tx)
		return scoring.ErrGameNotActive
	}

	const roundQuery = `
INSERT INTO rounds (game_uuid, round_number, cards_count, dealer_position)
VALUES ($1, $2, $3, $4)
RETURNING id`

	round := accepted.Round
	var roundID int64
	row := tx.QueryRowContext(ctx, roundQuery, g.UUID, round.RoundNumber, round.CardsCount, round.DealerPosition)
	if err := row.Scan(&roundID); err != nil {
		rollback(tx)
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateRound
		}

		return err
	}

	const scoreQuery = `
INSERT INTO round_scores (round_id, player_id, bid, tricks_won, score, running_total)
VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := tx.PrepareContext(ctx, scoreQuery)
	if err != nil {
		rollback(tx)
		return err
	}

	for _, score := range round.Scores {
		if _, err := stmt.ExecContext(ctx, roundID, score.PlayerID, score.Bid, score.TricksWon, score.Score, score.RunningTotal); err != nil {
			rollback(tx)
			return err
		}
	}

	if accepted.IsFinalRound {
		const completeQuery = `
UPDATE games
SET status = $1
WHERE uuid = $2`

		if _, err := tx.ExecContext(ctx, completeQuery, scoring.StatusCompleted, g.UUID); err != nil {
			rollback(tx)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if accepted.IsFinalRound {
		g.Status = scoring.StatusCompleted
	}

	return nil
}
