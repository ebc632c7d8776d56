package scoring

// RunningTotals returns each player's cumulative score through the most recent
// round with a number <= throughRound, keyed by player ID. Players with no
// round at or before the cutoff are absent from the map (total 0).
//
// Totals are read from the RunningTotal already carried on each RoundScore,
// never re-summed from scratch.
func RunningTotals(rounds []Round, throughRound int) map[int64]int {
	totals := make(map[int64]int)
	if throughRound <= 0 {
		return totals
	}

	latest := make(map[int64]int)
	for _, round := range rounds {
		if round.RoundNumber > throughRound {
			continue
		}

		for _, score := range round.Scores {
			if at, ok := latest[score.PlayerID]; ok && at > round.RoundNumber {
				continue
			}

			latest[score.PlayerID] = round.RoundNumber
			totals[score.PlayerID] = score.RunningTotal
		}
	}

	return totals
}
