package scoring

// PlayerStanding is one player's row on the scoreboard. Rounds always has
// TotalRounds slots; a nil slot is a round that hasn't been played yet.
type PlayerStanding struct {
	PlayerID   int64         `json:"playerId"`
	Position   int           `json:"position"`
	Rounds     []*RoundScore `json:"rounds"`
	FinalTotal int           `json:"finalTotal"`
}

// Scoreboard is the full per-player, per-round view of a game
type Scoreboard struct {
	MaxCards     int              `json:"maxCards"`
	TotalRounds  int              `json:"totalRounds"`
	CurrentRound int              `json:"currentRound"`
	Players      []PlayerStanding `json:"players"`
	IsComplete   bool             `json:"isComplete"`
	WinnerID     *int64           `json:"winnerId,omitempty"`
}

// BuildScoreboard assembles the scoreboard for a game from its accepted
// rounds. The winner is only determined once every round has been played; on
// a tied final total the player with the lowest seat position wins.
func BuildScoreboard(g Game, rounds []Round) Scoreboard {
	totalRounds := g.TotalRounds()

	currentRound := len(rounds) + 1
	if currentRound > totalRounds {
		currentRound = totalRounds
	}

	players := make([]PlayerStanding, len(g.Participants))
	for i, participant := range g.Participants {
		slots := make([]*RoundScore, totalRounds)
		finalTotal := 0

		for _, round := range rounds {
			index := round.RoundNumber - 1
			if index < 0 || index >= totalRounds {
				continue
			}

			for j, score := range round.Scores {
				if score.PlayerID != participant.PlayerID {
					continue
				}

				slots[index] = &round.Scores[j]
				finalTotal = score.RunningTotal
				break
			}
		}

		players[i] = PlayerStanding{
			PlayerID:   participant.PlayerID,
			Position:   participant.Position,
			Rounds:     slots,
			FinalTotal: finalTotal,
		}
	}

	board := Scoreboard{
		MaxCards:     g.MaxCards,
		TotalRounds:  totalRounds,
		CurrentRound: currentRound,
		Players:      players,
		IsComplete:   len(rounds) == totalRounds,
	}

	if board.IsComplete && len(players) > 0 {
		winner := players[0]
		for _, p := range players[1:] {
			if p.FinalTotal > winner.FinalTotal {
				winner = p
			}
		}

		winnerID := winner.PlayerID
		board.WinnerID = &winnerID
	}

	return board
}
