package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threePlayerGame(status Status) Game {
	return Game{
		MaxCards: 5,
		Status:   status,
		Participants: []Participant{
			{PlayerID: 1, Position: 0},
			{PlayerID: 2, Position: 1},
			{PlayerID: 3, Position: 2},
		},
	}
}

func validSubmission() Submission {
	return Submission{
		RoundNumber:    1,
		CardsCount:     1,
		DealerPosition: 0,
		Scores: []SubmittedScore{
			{PlayerID: 1, Bid: 1, TricksWon: 1},
			{PlayerID: 2, Bid: 0, TricksWon: 0},
			{PlayerID: 3, Bid: 0, TricksWon: 0},
		},
	}
}

func TestValidateRound(t *testing.T) {
	assert.NoError(t, ValidateRound(threePlayerGame(StatusActive), validSubmission()))
}

func TestValidateRound_gameNotActive(t *testing.T) {
	assert.Equal(t, ErrGameNotActive, ValidateRound(threePlayerGame(StatusCompleted), validSubmission()))
	assert.Equal(t, ErrGameNotActive, ValidateRound(threePlayerGame(StatusAbandoned), validSubmission()))
}

func TestValidateRound_playerSetMismatch(t *testing.T) {
	a := assert.New(t)
	g := threePlayerGame(StatusActive)

	// missing player
	s := validSubmission()
	s.Scores = s.Scores[:2]
	a.Equal(ErrPlayerSetMismatch, ValidateRound(g, s))

	// foreign player
	s = validSubmission()
	s.Scores[2].PlayerID = 99
	a.Equal(ErrPlayerSetMismatch, ValidateRound(g, s))

	// duplicate player
	s = validSubmission()
	s.Scores[2].PlayerID = 1
	a.Equal(ErrPlayerSetMismatch, ValidateRound(g, s))

	// extra player
	s = validSubmission()
	s.Scores = append(s.Scores, SubmittedScore{PlayerID: 4})
	a.Equal(ErrPlayerSetMismatch, ValidateRound(g, s))
}

func TestValidateRound_dealerOutOfRange(t *testing.T) {
	a := assert.New(t)
	g := threePlayerGame(StatusActive)

	s := validSubmission()
	s.DealerPosition = 3
	a.Equal(ErrDealerOutOfRange, ValidateRound(g, s))

	s.DealerPosition = -1
	a.Equal(ErrDealerOutOfRange, ValidateRound(g, s))

	s.DealerPosition = 2
	a.NoError(ValidateRound(g, s))
}

func TestValidateRound_trickImbalance(t *testing.T) {
	a := assert.New(t)
	g := threePlayerGame(StatusActive)

	// one trick short of cardsCount
	s := validSubmission()
	s.CardsCount = 2
	a.Equal(ErrTrickImbalance, ValidateRound(g, s))

	// too many tricks
	s = validSubmission()
	s.Scores[1].TricksWon = 1
	a.Equal(ErrTrickImbalance, ValidateRound(g, s))

	// bids are never balance-checked
	s = validSubmission()
	s.Scores[0].Bid = 17
	s.Scores[1].Bid = 17
	a.NoError(ValidateRound(g, s))
}

func TestValidateRound_checkOrder(t *testing.T) {
	// a submission failing every check reports the status first
	g := threePlayerGame(StatusCompleted)
	s := Submission{RoundNumber: 1, CardsCount: 5, DealerPosition: 10}
	assert.Equal(t, ErrGameNotActive, ValidateRound(g, s))

	// with an active game, the player set is reported before the dealer
	g.Status = StatusActive
	assert.Equal(t, ErrPlayerSetMismatch, ValidateRound(g, s))
}
