package scoring

// ValidationError is a round rejection that is safe to return in a response
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

// reasons a round submission can be rejected
var (
	ErrGameNotActive     = ValidationError("game is not active")
	ErrPlayerSetMismatch = ValidationError("round scores must include every game player exactly once")
	ErrDealerOutOfRange  = ValidationError("dealer position is out of range")
	ErrTrickImbalance    = ValidationError("tricks won must sum to the cards dealt")
)
