package mux

import (
	"testing"

	"boerenbridge-server/pkg/scoring"

	"github.com/stretchr/testify/assert"
)

func Test_checkSubmissionFields(t *testing.T) {
	valid := scoring.Submission{
		RoundNumber:    1,
		CardsCount:     1,
		DealerPosition: 0,
		Scores: []scoring.SubmittedScore{
			{PlayerID: 1, Bid: 0, TricksWon: 1},
			{PlayerID: 2, Bid: 0, TricksWon: 0},
		},
	}

	assert.NoError(t, checkSubmissionFields(valid))

	s := valid
	s.RoundNumber = 0
	assert.EqualError(t, checkSubmissionFields(s), "round number must be 1 or greater")

	s = valid
	s.CardsCount = 0
	assert.EqualError(t, checkSubmissionFields(s), "cards count must be between 1 and 17")

	s = valid
	s.CardsCount = 18
	assert.EqualError(t, checkSubmissionFields(s), "cards count must be between 1 and 17")

	s = valid
	s.DealerPosition = -1
	assert.EqualError(t, checkSubmissionFields(s), "dealer position cannot be negative")

	s = valid
	s.Scores = []scoring.SubmittedScore{{PlayerID: 7, Bid: -1, TricksWon: 1}}
	assert.EqualError(t, checkSubmissionFields(s), "bid and tricks won cannot be negative for player 7")

	s = valid
	s.Scores = []scoring.SubmittedScore{{PlayerID: 8, Bid: 1, TricksWon: -1}}
	assert.EqualError(t, checkSubmissionFields(s), "bid and tricks won cannot be negative for player 8")
}
