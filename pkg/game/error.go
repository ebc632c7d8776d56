package game

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrDuplicateKey happens if an insert violates a unique constraint
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// ErrDuplicateRound happens if a round number was already recorded for the game
var ErrDuplicateRound = UserError("round has already been recorded")
