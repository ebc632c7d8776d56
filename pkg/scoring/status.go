package scoring

// Status is the lifecycle state of a game
type Status string

// game statuses
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// IsValid returns true if the status is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return true
	}

	return false
}

// IsTerminal returns true if no further transition is allowed out of the status
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// CanTransitionTo returns true if the status may move to next
// Completed and abandoned are terminal
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}

	return s == StatusActive && next != StatusActive
}
