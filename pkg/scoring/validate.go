package scoring

// ValidateRound checks a submission for internal consistency against the game
// it was submitted to. It returns nil if the round can be accepted, or the
// first failing check as a ValidationError.
//
// Only tricks are balance-checked. There is deliberately no constraint on the
// sum of bids.
func ValidateRound(g Game, s Submission) error {
	if g.Status != StatusActive {
		return ErrGameNotActive
	}

	if !playerSetMatches(g.Participants, s.Scores) {
		return ErrPlayerSetMismatch
	}

	if s.DealerPosition < 0 || s.DealerPosition >= len(g.Participants) {
		return ErrDealerOutOfRange
	}

	tricks := 0
	for _, score := range s.Scores {
		tricks += score.TricksWon
	}

	if tricks != s.CardsCount {
		return ErrTrickImbalance
	}

	return nil
}

// playerSetMatches reports whether the submitted scores cover the game's
// participants exactly: no missing players, no foreign players, no duplicates
func playerSetMatches(participants []Participant, scores []SubmittedScore) bool {
	if len(scores) != len(participants) {
		return false
	}

	seen := make(map[int64]bool, len(participants))
	for _, p := range participants {
		seen[p.PlayerID] = false
	}

	for _, s := range scores {
		done, ok := seen[s.PlayerID]
		if !ok || done {
			return false
		}

		seen[s.PlayerID] = true
	}

	return true
}
