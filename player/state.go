package player

// State is the lifecycle stage of a Player
type State int

const (
	Idle State = iota
	Initializing
	Playing
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initializing:
		return "initializing"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
