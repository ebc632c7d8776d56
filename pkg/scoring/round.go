package scoring

// Participant is a player seated in a game
// Position is the zero-based clockwise seat order
type Participant struct {
	PlayerID int64 `json:"playerId"`
	Position int   `json:"position"`
}

// Game is the configuration the engine needs to score rounds
// Participants must be ordered by position
type Game struct {
	MaxCards     int           `json:"maxCards"`
	Status       Status        `json:"status"`
	Participants []Participant `json:"participants"`
}

// TotalRounds returns the number of rounds in the game
// The card count climbs from 1 to MaxCards and back down to 1
func (g Game) TotalRounds() int {
	return g.MaxCards*2 - 1
}

// CardsForRound returns the canonical number of cards dealt in round n (1-based)
// Submissions are not checked against this sequence; it exists for callers that
// want to pre-fill or verify a round
func (g Game) CardsForRound(n int) int {
	if n <= g.MaxCards {
		return n
	}

	return g.MaxCards - (n - g.MaxCards)
}

// SubmittedScore is one player's bid and result in a round submission
type SubmittedScore struct {
	PlayerID  int64 `json:"playerId"`
	Bid       int   `json:"bid"`
	TricksWon int   `json:"tricksWon"`
}

// Submission is a candidate round before it has been accepted
type Submission struct {
	RoundNumber    int              `json:"roundNumber"`
	CardsCount     int              `json:"cardsCount"`
	DealerPosition int              `json:"dealerPosition"`
	Scores         []SubmittedScore `json:"scores"`
}

// RoundScore is a player's accepted result for a single round
type RoundScore struct {
	PlayerID     int64 `json:"playerId"`
	Bid          int   `json:"bid"`
	TricksWon    int   `json:"tricksWon"`
	Score        int   `json:"score"`
	RunningTotal int   `json:"runningTotal"`
}

// Round is an accepted round with one score per participant
type Round struct {
	RoundNumber    int          `json:"roundNumber"`
	CardsCount     int          `json:"cardsCount"`
	DealerPosition int          `json:"dealerPosition"`
	Scores         []RoundScore `json:"scores"`
}

// AcceptedRound is the result of accepting a submission
// IsFinalRound tells the caller the game is now complete
type AcceptedRound struct {
	Round        Round `json:"round"`
	IsFinalRound bool  `json:"isFinalRound"`
}
