// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the floor.
	StateExplore State = iota
	// StateDead is entered when the player runs out of HP.
	StateDead
	// StateEscaped is entered when the player leaves the last floor by its entrance.
	StateEscaped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDead:
		return "dead"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}
