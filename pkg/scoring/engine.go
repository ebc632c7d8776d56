package scoring

// AcceptRound turns a submission into an accepted round. It validates the
// submission, scores every player, and carries each player's running total
// forward from the prior rounds. It either fully succeeds or fails with a
// ValidationError; nothing is persisted.
//
// priorRounds must hold the game's already accepted rounds. Callers are
// responsible for issuing one round at a time with dense ascending round
// numbers, and for serializing concurrent submissions per game.
func AcceptRound(g Game, priorRounds []Round, s Submission) (*AcceptedRound, error) {
	if err := ValidateRound(g, s); err != nil {
		return nil, err
	}

	priorTotals := RunningTotals(priorRounds, s.RoundNumber-1)

	scores := make([]RoundScore, len(s.Scores))
	for i, submitted := range s.Scores {
		score := Score(submitted.Bid, submitted.TricksWon)
		scores[i] = RoundScore{
			PlayerID:     submitted.PlayerID,
			Bid:          submitted.Bid,
			TricksWon:    submitted.TricksWon,
			Score:        score,
			RunningTotal: priorTotals[submitted.PlayerID] + score,
		}
	}

	return &AcceptedRound{
		Round: Round{
			RoundNumber:    s.RoundNumber,
			CardsCount:     s.CardsCount,
			DealerPosition: s.DealerPosition,
			Scores:         scores,
		},
		IsFinalRound: s.RoundNumber == g.TotalRounds(),
	}, nil
}
